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

// Package kvstore defines the binary key-value store contract the avltree
// package assumes a collaborator provides for persisting node graphs, and
// reports errors the store surfaces back to the caller unchanged. The core
// tree never calls any of this itself; it exists so that a persistence
// layer built on top of the tree (e.g. one that serializes each node keyed
// by its subtree hash) has a common interface, and so that more than one
// backing engine (in-memory, Badger, ...) can sit behind it.
package kvstore

import (
	"errors"
	"fmt"
)

// ErrEmptyKey is returned by Get, Has, Set, SetSync, Delete and DeleteSync
// when called with an empty key.
var ErrEmptyKey = errors.New("kvstore: empty key")

// ErrEmptyValue is returned by Set and SetSync when called with an empty
// value.
var ErrEmptyValue = errors.New("kvstore: empty value")

// ErrDownCast is returned by WriteBatch and WriteBatchSync when given a
// Batch that did not originate from a New*Batch call on the same Store.
var ErrDownCast = errors.New("kvstore: batch did not originate from this store")

// WrapError wraps an underlying storage-engine error with op, the operation
// that failed, without discarding it: errors.Unwrap still reaches the
// original error.
func WrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("kvstore: %s: %w", op, err)
}

// Store is a binary key-value store. Implementations are free to choose
// their own durability and concurrency model; a Store is not required to
// be safe for concurrent use unless its documentation says so.
type Store interface {
	// Get returns the value stored under key, or (nil, false, nil) if key
	// is absent. It returns ErrEmptyKey if key is empty.
	Get(key []byte) (value []byte, ok bool, err error)

	// Has reports whether key is present. Implementations may answer with
	// a probabilistic "may exist" check; callers that need exactness must
	// follow up with Get. It returns ErrEmptyKey if key is empty.
	Has(key []byte) (bool, error)

	// Set stores value under key, returning ErrEmptyKey or ErrEmptyValue
	// if either is empty. It need not be durable before returning; use
	// SetSync for that guarantee.
	Set(key, value []byte) error

	// SetSync is Set, but does not return until value is committed to
	// durable media.
	SetSync(key, value []byte) error

	// Delete removes key, if present. It is not an error to delete an
	// absent key.
	Delete(key []byte) error

	// DeleteSync is Delete, but does not return until the deletion is
	// committed to durable media.
	DeleteSync(key []byte) error

	// NewBatch returns an empty Batch tied to this Store. A Batch created
	// by one Store must not be passed to another Store's WriteBatch.
	NewBatch() Batch

	// WriteBatch commits every operation recorded in b as a single
	// all-or-nothing group. It returns ErrDownCast if b did not originate
	// from this Store's NewBatch.
	WriteBatch(b Batch) error

	// WriteBatchSync is WriteBatch, but does not return until the group
	// commit is durable.
	WriteBatchSync(b Batch) error

	// Close releases any resources held by the store, best-effort
	// flushing buffered writes to durable media first.
	Close() error
}

// Batch accumulates Set/Delete operations for an all-or-nothing group
// commit via Store.WriteBatch. A Batch is single-use: once written, its
// behavior on reuse is up to the implementation.
type Batch interface {
	// Set records a write of value under key, to take effect when the
	// batch is written.
	Set(key, value []byte) error

	// Delete records a deletion of key, to take effect when the batch is
	// written.
	Delete(key []byte) error
}
