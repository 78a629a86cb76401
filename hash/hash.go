// Copyright 2025 Google LLC. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package hash contains the streaming SHA-256 discipline shared by every
// commitment in the tree: a node's content hash, its subtree hash, and the
// recomputation a proof verifier performs.
package hash

import "crypto/sha256"

// Size is the width, in bytes, of every digest this package produces.
const Size = sha256.Size

// Sum returns the SHA-256 digest of b.
func Sum(b []byte) []byte {
	h := sha256.Sum256(b)
	return h[:]
}

// Concat feeds each element of parts as a successive update into a single
// SHA-256 state and returns its finalization. This is not the hash of a
// length-prefixed encoding: the same byte stream produced by different
// splits of parts yields the same digest. An absent child's hash therefore
// contributes no bytes whether it is left out of parts or passed as a
// zero-length slice; feeding any non-empty placeholder in its place changes
// the digest.
func Concat(parts ...[]byte) []byte {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p) //nolint:errcheck // hash.Hash.Write never returns an error.
	}
	return h.Sum(nil)
}
