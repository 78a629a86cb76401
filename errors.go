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
	"errors"
	"fmt"
)

// ErrRootHashNotFound is returned by VerifyExistence when called against a
// tree that has no root, i.e. one into which nothing has been inserted yet.
var ErrRootHashNotFound = errors.New("avltree: root hash not found")

// ValueNonExistenceError reports that a proof did not verify: either it
// claims a different key or value than the one checked (Computed is nil),
// or it did not recompute to the trusted root hash it was checked against.
type ValueNonExistenceError struct {
	Key      []byte
	Value    []byte
	Computed []byte
	Want     []byte
}

func (e *ValueNonExistenceError) Error() string {
	return fmt.Sprintf("avltree: proof for key %x did not verify: recomputed root %x, want %x", e.Key, e.Computed, e.Want)
}
