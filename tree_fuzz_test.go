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

package avltree_test

import (
	"testing"

	"github.com/transparency-dev/avltree/testonly"
)

// FuzzInsertMaintainsInvariants drives random-length insertion sequences
// through a fresh Tree and checks its internal invariants after each run.
func FuzzInsertMaintainsInvariants(f *testing.F) {
	f.Add(int64(0), 0)
	f.Add(int64(1), 1)
	f.Add(int64(2), 16)
	f.Add(int64(3), 257)

	f.Fuzz(func(t *testing.T, seed int64, n int) {
		if n < 0 || n > 2000 {
			return
		}
		entries := testonly.RandomEntries(seed, n)
		tree := testonly.BuildTree(entries)
		if err := testonly.Validate(tree); err != nil {
			t.Fatalf("Validate: %v", err)
		}
		if err := testonly.ValidateEntries(tree, entries); err != nil {
			t.Fatalf("ValidateEntries: %v", err)
		}
	})
}

// FuzzOverwriteRefreshesRoot drives a sequence of insertions, then
// overwrites one of the inserted keys and checks the root hash moved and
// the new value is provable.
func FuzzOverwriteRefreshesRoot(f *testing.F) {
	f.Add(int64(0), 4, int64(99))
	f.Add(int64(1), 50, int64(7))

	f.Fuzz(func(t *testing.T, seed int64, n int, valueSeed int64) {
		if n < 1 || n > 500 {
			return
		}
		entries := testonly.RandomEntries(seed, n)
		tree := testonly.BuildTree(entries)
		before := append([]byte{}, tree.RootHash()...)

		target := entries[0]
		newValue := testonly.RandomBytes(valueSeed, 8)

		prev, had := tree.Insert(target.Key, newValue)
		if !had || string(prev) != string(target.Value) {
			t.Fatalf("overwrite returned (%x, %v), want (%x, true)", prev, had, target.Value)
		}

		if err := testonly.Validate(tree); err != nil {
			t.Fatalf("Validate after overwrite: %v", err)
		}

		after := tree.RootHash()
		if string(before) == string(after) {
			t.Errorf("root hash unchanged after overwriting %x with a new value", target.Key)
		}

		p, ok := tree.GetProof(target.Key)
		if !ok {
			t.Fatalf("GetProof(%x) not found after overwrite", target.Key)
		}
		if err := tree.VerifyExistence(target.Key, newValue, p); err != nil {
			t.Errorf("VerifyExistence after overwrite: %v", err)
		}
	})
}
