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

// Package badgerstore implements kvstore.Store on top of Badger, an
// embedded LSM-tree key-value engine. It is a durable collaborator for the
// interface kvstore defines, which the core tree itself never implements.
package badgerstore

import (
	"errors"

	"github.com/dgraph-io/badger/v2"
	"github.com/rs/zerolog"

	"github.com/transparency-dev/avltree/kvstore"
)

// Options configures a Store.
type Options struct {
	// Dir is the directory Badger persists its log and value files under.
	// Ignored if InMemory is true.
	Dir string
	// InMemory runs Badger with no on-disk footprint, for tests.
	InMemory bool
	// SyncWrites makes every Set/Delete (not just the _sync variants)
	// durable before Badger's write returns, trading throughput for not
	// needing to call SetSync/DeleteSync explicitly.
	SyncWrites bool
	// Logger receives Badger's own internal log lines. The zero value
	// discards them.
	Logger zerolog.Logger
}

// Store is a kvstore.Store backed by a single Badger database.
type Store struct {
	db  *badger.DB
	log zerolog.Logger
}

// Open opens (creating if necessary) a Badger database per opts.
func Open(opts Options) (*Store, error) {
	badgerOpts := badger.DefaultOptions(opts.Dir).
		WithInMemory(opts.InMemory).
		WithSyncWrites(opts.SyncWrites).
		WithLogger(badgerLogger{opts.Logger})

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, kvstore.WrapError("open", err)
	}
	return &Store{db: db, log: opts.Logger}, nil
}

func (s *Store) Get(key []byte) ([]byte, bool, error) {
	if len(key) == 0 {
		return nil, false, kvstore.ErrEmptyKey
	}
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, kvstore.WrapError("get", err)
	}
	return value, true, nil
}

func (s *Store) Has(key []byte) (bool, error) {
	if len(key) == 0 {
		return false, kvstore.ErrEmptyKey
	}
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, kvstore.WrapError("has", err)
	}
	return true, nil
}

func (s *Store) Set(key, value []byte) error {
	if len(key) == 0 {
		return kvstore.ErrEmptyKey
	}
	if len(value) == 0 {
		return kvstore.ErrEmptyValue
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	return kvstore.WrapError("set", err)
}

// SetSync is Set followed by an explicit sync of Badger's value log, so the
// write is durable before returning.
func (s *Store) SetSync(key, value []byte) error {
	if err := s.Set(key, value); err != nil {
		return err
	}
	return kvstore.WrapError("set_sync", s.db.Sync())
}

func (s *Store) Delete(key []byte) error {
	if len(key) == 0 {
		return kvstore.ErrEmptyKey
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	return kvstore.WrapError("delete", err)
}

// DeleteSync is Delete followed by an explicit sync.
func (s *Store) DeleteSync(key []byte) error {
	if err := s.Delete(key); err != nil {
		return err
	}
	return kvstore.WrapError("delete_sync", s.db.Sync())
}

func (s *Store) NewBatch() kvstore.Batch {
	return &batch{store: s, wb: s.db.NewWriteBatch()}
}

func (s *Store) WriteBatch(b kvstore.Batch) error {
	bb, ok := b.(*batch)
	if !ok || bb.store != s {
		return kvstore.ErrDownCast
	}
	return kvstore.WrapError("write_batch", bb.wb.Flush())
}

// WriteBatchSync is WriteBatch followed by an explicit sync.
func (s *Store) WriteBatchSync(b kvstore.Batch) error {
	if err := s.WriteBatch(b); err != nil {
		return err
	}
	return kvstore.WrapError("write_batch_sync", s.db.Sync())
}

// Close flushes and releases the underlying Badger database.
func (s *Store) Close() error {
	return kvstore.WrapError("close", s.db.Close())
}

type batch struct {
	store *Store
	wb    *badger.WriteBatch
}

func (b *batch) Set(key, value []byte) error {
	if len(key) == 0 {
		return kvstore.ErrEmptyKey
	}
	if len(value) == 0 {
		return kvstore.ErrEmptyValue
	}
	return kvstore.WrapError("batch_set", b.wb.Set(key, value))
}

func (b *batch) Delete(key []byte) error {
	if len(key) == 0 {
		return kvstore.ErrEmptyKey
	}
	return kvstore.WrapError("batch_delete", b.wb.Delete(key))
}

// badgerLogger adapts a zerolog.Logger to Badger's own minimal Logger
// interface (Errorf/Warningf/Infof/Debugf).
type badgerLogger struct {
	log zerolog.Logger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Error().Msgf(format, args...)
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Warn().Msgf(format, args...)
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.log.Info().Msgf(format, args...)
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug().Msgf(format, args...)
}
