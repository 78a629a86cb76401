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

package proof

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/transparency-dev/avltree/hash"
)

// ErrKeyValueMismatch is returned by Verify when the proof's own (Key,
// Value) does not match the (key, value) pair the caller asked to verify.
var ErrKeyValueMismatch = errors.New("proof: key or value does not match the proof")

// RootMismatchError is an error occurring when a proof's recomputed root
// does not equal the root it was checked against.
type RootMismatchError struct {
	Computed []byte // The root hash recomputed by walking the proof.
	Want     []byte // The trusted root hash the caller supplied.
}

// Error returns the error string for RootMismatchError.
func (e *RootMismatchError) Error() string {
	return fmt.Sprintf("root hash mismatch: computed %x, want %x", e.Computed, e.Want)
}

func verifyMatch(computed, want []byte) error {
	if !bytes.Equal(computed, want) {
		return &RootMismatchError{Computed: computed, Want: want}
	}
	return nil
}

// Verify recomputes the root hash implied by proof for the given (key,
// value) pair, and compares it against the trusted root hash. It replays
// proof.Path in order (leaf-adjacent first), folding each step's Prefix and
// Suffix bytes around the running hash with the same streaming-update
// discipline used to build the tree in the first place — see hash.Concat's
// doc comment on how the bytes are fed.
//
// Returns ErrKeyValueMismatch if proof does not claim the given key and
// value, or a *RootMismatchError if the recomputed root does not match.
func Verify(key, value []byte, p *Proof, root []byte) error {
	if !bytes.Equal(p.Key, key) || !bytes.Equal(p.Value, value) {
		return ErrKeyValueMismatch
	}

	h := hash.Concat(key, value)
	for _, step := range p.Path {
		h = hash.Concat(step.Prefix, h, step.Suffix)
	}
	return verifyMatch(h, root)
}
