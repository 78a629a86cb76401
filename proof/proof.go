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

// Package proof contains the inclusion-proof data type for the authenticated
// AVL tree, and the logic to verify one against a trusted root hash,
// independent of any particular Tree instance.
package proof

// Step is one level of an inclusion proof: the sibling-side bytes a
// verifier folds in on its way from a leaf commitment up to the root. A
// step produced by a left descent carries only a Suffix (the node's own
// content hash followed by its right child's subtree hash, if any); a step
// produced by a right descent carries only a Prefix (symmetric); the
// terminal step, for the matched node itself, may carry both.
type Step struct {
	Prefix []byte
	Suffix []byte
}

// Proof is the evidence that (Key, Value) is a member of the tree committed
// to by some root hash. Path is ordered leaf-adjacent-first: Path[0] is the
// step produced by the node holding Key itself, and the last element is the
// step produced by the root.
type Proof struct {
	Key   []byte
	Value []byte
	Path  []Step
}
