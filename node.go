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

import "github.com/transparency-dev/avltree/hash"

// node is a single entry in the tree's node graph. The tree exclusively
// owns its node graph: a node is reachable from exactly one parent link (or
// from the tree's root link), never from two places at once.
type node struct {
	key   []byte
	value []byte

	// contentHash is H(key ‖ value).
	contentHash []byte
	// subtreeHash is H(leftSubtreeHash ‖ contentHash ‖ rightSubtreeHash),
	// with an absent child's hash omitted entirely rather than fed as an
	// empty placeholder.
	subtreeHash []byte

	height int
	left   *node
	right  *node
}

// newLeaf constructs a height-0 node with no children.
func newLeaf(key, value []byte) *node {
	n := &node{key: key, value: value}
	n.contentHash = hash.Concat(n.key, n.value)
	n.subtreeHash = hash.Concat(n.contentHash)
	return n
}

// nodeHeight treats an absent child as height -1, so a leaf's height formula
// (1 + max(-1, -1) = 0) and its balance factor (-1 - -1 = 0) both fall out
// of the same convention without a special case.
func nodeHeight(n *node) int {
	if n == nil {
		return -1
	}
	return n.height
}

func (n *node) leftHash() []byte {
	if n.left == nil {
		return nil
	}
	return n.left.subtreeHash
}

func (n *node) rightHash() []byte {
	if n.right == nil {
		return nil
	}
	return n.right.subtreeHash
}

// balanceFactor is height(left) - height(right), absent child as -1.
func (n *node) balanceFactor() int {
	return nodeHeight(n.left) - nodeHeight(n.right)
}

func (n *node) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// overwriteValue replaces the node's value and recomputes contentHash,
// returning the prior value. The caller is responsible for refreshing
// subtreeHash/height afterwards: an overwrite changes contentHash, so every
// ancestor up to the root must be refreshed, never skipped.
func (n *node) overwriteValue(value []byte) []byte {
	old := n.value
	n.value = value
	n.contentHash = hash.Concat(n.key, value)
	return old
}

// refresh recomputes height and subtreeHash from the current children. It
// must only be called once both children (if any) are themselves already
// consistent — i.e. strictly bottom-up.
func (n *node) refresh() {
	lh, rh := nodeHeight(n.left), nodeHeight(n.right)
	if lh > rh {
		n.height = lh + 1
	} else {
		n.height = rh + 1
	}

	parts := make([][]byte, 0, 3)
	if n.left != nil {
		parts = append(parts, n.left.subtreeHash)
	}
	parts = append(parts, n.contentHash)
	if n.right != nil {
		parts = append(parts, n.right.subtreeHash)
	}
	n.subtreeHash = hash.Concat(parts...)
}
