// Copyright 2025 The Tessera authors. All Rights Reserved.
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

// Package checkpoint lets a tree owner publish its root hash as a signed,
// transferable commitment, and lets a verifier that only trusts a public
// key recover that root hash without maintaining a live connection to the
// tree, formatted the same way a c2sp tlog-checkpoint is.
package checkpoint

import (
	"crypto/sha256"
	"fmt"

	"github.com/transparency-dev/formats/log"
	"golang.org/x/mod/sumdb/note"
)

// Sign produces a signed checkpoint committing to rootHash as the state of
// the tree identified by origin after size insertions. size is an opaque,
// monotonically increasing sequence number the caller maintains (e.g. a
// count of completed Insert calls); the tree core itself has no notion of
// "version" or "size", so callers that want one track it themselves and
// pass it here.
func Sign(origin string, size uint64, rootHash []byte, signer note.Signer) ([]byte, error) {
	if len(rootHash) != sha256.Size {
		return nil, fmt.Errorf("checkpoint: root hash must be %d bytes, got %d", sha256.Size, len(rootHash))
	}
	cp := log.Checkpoint{
		Origin: origin,
		Size:   size,
		Hash:   rootHash,
	}
	signed, err := note.Sign(&note.Note{Text: string(cp.Marshal())}, signer)
	if err != nil {
		return nil, fmt.Errorf("checkpoint: sign: %w", err)
	}
	return signed, nil
}

// Verify checks checkpoint's signature against verifier and the checkpoint
// body against origin, and returns the size and root hash it commits to.
// The returned root hash can be passed straight to avltree.Tree's
// VerifyExistence as the trusted root, without the caller ever having
// called RootHash on a live tree itself.
func Verify(checkpoint []byte, origin string, verifier note.Verifier) (size uint64, rootHash []byte, err error) {
	cp, _, _, err := log.ParseCheckpoint(checkpoint, origin, verifier)
	if err != nil {
		return 0, nil, fmt.Errorf("checkpoint: verify: %w", err)
	}
	return cp.Size, cp.Hash, nil
}
