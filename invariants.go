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

package avltree

import (
	"bytes"
	"fmt"

	"github.com/transparency-dev/avltree/hash"
)

// CheckInvariants walks the whole tree and checks BST ordering, the AVL
// balance bound, the height formula, and subtree-hash consistency. It
// returns the first violation found, or nil. It is exported so external
// test tooling (see the testonly package) can use it without reaching into
// unexported node fields.
func (t *Tree) CheckInvariants() error {
	_, err := checkNode(t.root, nil, nil)
	return err
}

// checkNode validates the subtree rooted at n, whose keys must all fall
// strictly between lo (exclusive, nil means unbounded) and hi (exclusive,
// nil means unbounded). It returns n's height for the caller's own height
// check.
func checkNode(n *node, lo, hi []byte) (int, error) {
	if n == nil {
		return -1, nil
	}

	if lo != nil && bytes.Compare(n.key, lo) <= 0 {
		return 0, fmt.Errorf("avltree: key %x is not strictly greater than lower bound %x", n.key, lo)
	}
	if hi != nil && bytes.Compare(n.key, hi) >= 0 {
		return 0, fmt.Errorf("avltree: key %x is not strictly less than upper bound %x", n.key, hi)
	}

	lh, err := checkNode(n.left, lo, n.key)
	if err != nil {
		return 0, err
	}
	rh, err := checkNode(n.right, n.key, hi)
	if err != nil {
		return 0, err
	}

	if bf := lh - rh; bf > 1 || bf < -1 {
		return 0, fmt.Errorf("avltree: key %x has balance factor %d, want |bf| <= 1", n.key, bf)
	}

	wantHeight := lh
	if rh > wantHeight {
		wantHeight = rh
	}
	wantHeight++
	if n.height != wantHeight {
		return 0, fmt.Errorf("avltree: key %x has stored height %d, want %d", n.key, n.height, wantHeight)
	}

	wantContentHash := hash.Concat(n.key, n.value)
	if !bytes.Equal(n.contentHash, wantContentHash) {
		return 0, fmt.Errorf("avltree: key %x has stale content hash", n.key)
	}

	parts := make([][]byte, 0, 3)
	if n.left != nil {
		parts = append(parts, n.left.subtreeHash)
	}
	parts = append(parts, n.contentHash)
	if n.right != nil {
		parts = append(parts, n.right.subtreeHash)
	}
	wantSubtreeHash := hash.Concat(parts...)
	if !bytes.Equal(n.subtreeHash, wantSubtreeHash) {
		return 0, fmt.Errorf("avltree: key %x has stale subtree hash", n.key)
	}

	return n.height, nil
}
