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

package badgerstore_test

import (
	"errors"
	"testing"

	"github.com/transparency-dev/avltree/kvstore"
	"github.com/transparency-dev/avltree/kvstore/badgerstore"
)

func openTestStore(t *testing.T) *badgerstore.Store {
	t.Helper()
	s, err := badgerstore.Open(badgerstore.Options{InMemory: true})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return s
}

func TestBadgerStoreGetSetDelete(t *testing.T) {
	s := openTestStore(t)

	if _, ok, err := s.Get([]byte("k")); ok || err != nil {
		t.Fatalf("Get on empty store = (_, %v, %v), want (_, false, nil)", ok, err)
	}

	if err := s.SetSync([]byte("k"), []byte("v1")); err != nil {
		t.Fatalf("SetSync: %v", err)
	}
	v, ok, err := s.Get([]byte("k"))
	if err != nil || !ok || string(v) != "v1" {
		t.Fatalf("Get(k) = (%q, %v, %v), want (v1, true, nil)", v, ok, err)
	}

	if err := s.DeleteSync([]byte("k")); err != nil {
		t.Fatalf("DeleteSync: %v", err)
	}
	if _, ok, _ := s.Get([]byte("k")); ok {
		t.Error("Get(k) after DeleteSync reported ok=true")
	}
}

func TestBadgerStoreRejectsEmptyKeyAndValue(t *testing.T) {
	s := openTestStore(t)

	if err := s.Set(nil, []byte("v")); !errors.Is(err, kvstore.ErrEmptyKey) {
		t.Errorf("Set(nil, v) error = %v, want ErrEmptyKey", err)
	}
	if err := s.Set([]byte("k"), nil); !errors.Is(err, kvstore.ErrEmptyValue) {
		t.Errorf("Set(k, nil) error = %v, want ErrEmptyValue", err)
	}
}

func TestBadgerStoreWriteBatch(t *testing.T) {
	s := openTestStore(t)

	b := s.NewBatch()
	if err := b.Set([]byte("a"), []byte("1")); err != nil {
		t.Fatalf("batch Set: %v", err)
	}
	if err := s.WriteBatch(b); err != nil {
		t.Fatalf("WriteBatch: %v", err)
	}

	if v, ok, _ := s.Get([]byte("a")); !ok || string(v) != "1" {
		t.Errorf("Get(a) after WriteBatch = (%q, %v), want (1, true)", v, ok)
	}
}

func TestBadgerStoreWriteBatchRejectsForeignBatch(t *testing.T) {
	s1 := openTestStore(t)
	s2 := openTestStore(t)

	b := s1.NewBatch()
	if err := s2.WriteBatch(b); !errors.Is(err, kvstore.ErrDownCast) {
		t.Errorf("WriteBatch(foreign batch) = %v, want ErrDownCast", err)
	}
}
