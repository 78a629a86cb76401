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

// Package testonly provides fixture generation and invariant validation
// shared by the avltree package's own tests and fuzz targets, and by
// anything built on top of it that wants the same checks.
package testonly

import (
	"bytes"
	"fmt"
	"math/rand"

	"github.com/transparency-dev/avltree"
	"github.com/transparency-dev/avltree/hash"
)

// Entry is a single key-value pair, as generated by RandomEntries.
type Entry struct {
	Key   []byte
	Value []byte
}

// RandomEntries returns n entries with distinct 8-byte keys, seeded so
// repeated calls with the same seed reproduce the same entries.
func RandomEntries(seed int64, n int) []Entry {
	r := rand.New(rand.NewSource(seed))
	seen := make(map[string]bool, n)
	entries := make([]Entry, 0, n)
	for len(entries) < n {
		k := make([]byte, 8)
		r.Read(k)
		if seen[string(k)] {
			continue
		}
		seen[string(k)] = true
		v := make([]byte, 8)
		r.Read(v)
		entries = append(entries, Entry{Key: k, Value: v})
	}
	return entries
}

// BuildTree inserts every entry into a fresh Tree and returns it.
func BuildTree(entries []Entry) *avltree.Tree {
	tree := avltree.New()
	for _, e := range entries {
		tree.Insert(e.Key, e.Value)
	}
	return tree
}

// Validate walks tree and checks its internal invariants: BST ordering, the
// AVL balance bound, the height formula, and subtree-hash consistency. It
// returns the first violation found, or nil if tree is internally
// consistent. The check itself lives on Tree, since it needs access to
// unexported node fields that this package, living outside avltree, cannot
// reach.
func Validate(tree *avltree.Tree) error {
	return tree.CheckInvariants()
}

// ValidateEntries checks that every inserted entry's proof verifies against
// tree's root hash ("proof soundness"), and that Get(key) returns the
// inserted value for each of them.
func ValidateEntries(tree *avltree.Tree, entries []Entry) error {
	root := tree.RootHash()
	if root == nil && len(entries) > 0 {
		return fmt.Errorf("testonly: tree has no root but %d entries were inserted", len(entries))
	}
	for _, e := range entries {
		v, ok := tree.Get(e.Key)
		if !ok {
			return fmt.Errorf("testonly: Get(%x) not found after insertion", e.Key)
		}
		if !bytes.Equal(v, e.Value) {
			return fmt.Errorf("testonly: Get(%x) = %x, want %x (most recent insert wins)", e.Key, v, e.Value)
		}
		p, ok := tree.GetProof(e.Key)
		if !ok {
			return fmt.Errorf("testonly: GetProof(%x) not found after insertion", e.Key)
		}
		if err := tree.VerifyExistence(e.Key, v, p); err != nil {
			return fmt.Errorf("testonly: VerifyExistence(%x): %w", e.Key, err)
		}
	}
	return nil
}

// RootDeterminism reports whether inserting the same entries in every given
// order yields the same root hash. orders is a slice of permutations of
// indices into entries.
func RootDeterminism(entries []Entry, orders [][]int) (bool, error) {
	var first []byte
	for i, order := range orders {
		if len(order) != len(entries) {
			return false, fmt.Errorf("testonly: order %d has length %d, want %d", i, len(order), len(entries))
		}
		tree := avltree.New()
		for _, idx := range order {
			tree.Insert(entries[idx].Key, entries[idx].Value)
		}
		root := tree.RootHash()
		if i == 0 {
			first = root
			continue
		}
		if !bytes.Equal(first, root) {
			return false, nil
		}
	}
	return true, nil
}

// LeafContentHash recomputes H(key ‖ value) the same way the tree does,
// for tests that want to assert against a node's content hash without
// reaching into unexported fields.
func LeafContentHash(key, value []byte) []byte {
	return hash.Concat(key, value)
}

// RandomBytes returns n pseudo-random bytes from a seeded source, for tests
// that need filler values rather than tracked entries.
func RandomBytes(seed int64, n int) []byte {
	r := rand.New(rand.NewSource(seed))
	b := make([]byte, n)
	r.Read(b)
	return b
}
