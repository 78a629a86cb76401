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

// Package avltree implements an authenticated ordered key-value index: a
// self-balancing AVL binary search tree in which every node commits to the
// subtree rooted at it, so a succinct inclusion proof can be produced for
// any key and independently verified against a previously-published root
// hash. See the proof package for the verification side of that contract.
//
// A Tree is not safe for concurrent use. Lookups and proof extraction are
// pure reads; Insert is the sole mutator. Wrap a Tree in an external
// reader-writer coordinator if it must be shared across goroutines.
package avltree

import (
	"bytes"
	"errors"

	"github.com/transparency-dev/avltree/proof"
)

// Tree is a single optional root link that exclusively owns its node graph:
// no parent pointers, no cross-links, and no deletion support.
type Tree struct {
	root *node
}

// New returns an empty Tree.
func New() *Tree {
	return &Tree{}
}

// RootHash returns the Merkle commitment of the whole tree, or nil if the
// tree is empty.
func (t *Tree) RootHash() []byte {
	if t.root == nil {
		return nil
	}
	return t.root.subtreeHash
}

// Height returns the height of the tree's root, or -1 if the tree is empty.
func (t *Tree) Height() int {
	return nodeHeight(t.root)
}

// Get returns the value stored under key, and whether key is present.
func (t *Tree) Get(key []byte) ([]byte, bool) {
	n := t.root
	for n != nil {
		switch bytes.Compare(key, n.key) {
		case -1:
			n = n.left
		case 1:
			n = n.right
		default:
			return n.value, true
		}
	}
	return nil, false
}

// Insert stores value under key, creating key if absent or overwriting it
// in place if present, rebalancing the tree as needed. It returns the prior
// value if key was already present. key must be non-empty; calling Insert
// with an empty key is a programming error.
func (t *Tree) Insert(key, value []byte) (previous []byte, hadPrevious bool) {
	if len(key) == 0 {
		panic("avltree: insert called with empty key")
	}
	return insertRecursive(&t.root, key, value)
}

func insertRecursive(np **node, key, value []byte) (previous []byte, hadPrevious bool) {
	n := *np
	if n == nil {
		*np = newLeaf(key, value)
		return nil, false
	}

	switch bytes.Compare(key, n.key) {
	case -1:
		previous, hadPrevious = insertRecursive(&n.left, key, value)
		n.refresh()
		rebalance(np)
	case 1:
		previous, hadPrevious = insertRecursive(&n.right, key, value)
		n.refresh()
		rebalance(np)
	default:
		previous = n.overwriteValue(value)
		hadPrevious = true
		// Shape and height are unchanged by an overwrite, so no rebalance
		// is needed here, but the content hash did change, which means
		// this node's subtreeHash — and every ancestor's, as the
		// recursion unwinds — must be refreshed to keep RootHash()
		// reflecting the new value.
		n.refresh()
	}
	return previous, hadPrevious
}

// rebalance restores the AVL property at *np, which is assumed to already
// be height/hash-consistent with its children, performing at most one
// single or double rotation.
func rebalance(np **node) {
	n := *np
	switch bf := n.balanceFactor(); {
	case bf >= 2:
		if n.left.balanceFactor() < 1 {
			rotateLeft(&n.left)
		}
		rotateRight(np)
	case bf <= -2:
		if n.right.balanceFactor() > -1 {
			rotateRight(&n.right)
		}
		rotateLeft(np)
	}
}

// rotateRight rotates *np right around its left child: the left child
// becomes the new subtree root, the old root becomes its right child, and
// the left child's former right subtree becomes the old root's left
// subtree. The old root is refreshed before the new one, so the new root's
// subtreeHash is computed from an already-consistent child.
func rotateRight(np **node) {
	x := *np
	if x == nil || x.left == nil {
		panic("avltree: rotate-right requires a left child")
	}
	l := x.left
	x.left = l.right
	x.refresh()
	l.right = x
	l.refresh()
	*np = l
}

// rotateLeft is the mirror image of rotateRight.
func rotateLeft(np **node) {
	x := *np
	if x == nil || x.right == nil {
		panic("avltree: rotate-left requires a right child")
	}
	r := x.right
	x.right = r.left
	x.refresh()
	r.left = x
	r.refresh()
	*np = r
}

// GetProof returns an inclusion proof for key, and whether key is present.
func (t *Tree) GetProof(key []byte) (*proof.Proof, bool) {
	return getProofRecursive(t.root, key)
}

func getProofRecursive(n *node, key []byte) (*proof.Proof, bool) {
	if n == nil {
		return nil, false
	}

	switch bytes.Compare(key, n.key) {
	case -1:
		p, ok := getProofRecursive(n.left, key)
		if !ok {
			return nil, false
		}
		suffix := append(append([]byte{}, n.contentHash...), n.rightHash()...)
		p.Path = append(p.Path, proof.Step{Suffix: suffix})
		return p, true
	case 1:
		p, ok := getProofRecursive(n.right, key)
		if !ok {
			return nil, false
		}
		prefix := append(append([]byte{}, n.leftHash()...), n.contentHash...)
		p.Path = append(p.Path, proof.Step{Prefix: prefix})
		return p, true
	default:
		p := &proof.Proof{Key: n.key, Value: n.value}
		p.Path = append(p.Path, proof.Step{Prefix: n.leftHash(), Suffix: n.rightHash()})
		return p, true
	}
}

// VerifyExistence checks that p is a valid inclusion proof for (key, value)
// against this tree's own current root hash. It returns ErrRootHashNotFound
// if the tree is empty, or a *ValueNonExistenceError if p claims a
// different key or value (Computed is then nil) or does not recompute to
// the root. Independent verifiers that only hold a trusted
// root hash — not a live Tree — should call proof.Verify directly instead.
func (t *Tree) VerifyExistence(key, value []byte, p *proof.Proof) error {
	root := t.RootHash()
	if root == nil {
		return ErrRootHashNotFound
	}

	if err := proof.Verify(key, value, p, root); err != nil {
		ve := &ValueNonExistenceError{Key: key, Value: value, Want: root}
		var mismatch *proof.RootMismatchError
		if errors.As(err, &mismatch) {
			ve.Computed = mismatch.Computed
		}
		return ve
	}
	return nil
}
