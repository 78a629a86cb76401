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

package kvstore_test

import (
	"errors"
	"testing"

	"github.com/transparency-dev/avltree/kvstore"
)

func TestMemStoreGetSetDelete(t *testing.T) {
	s := kvstore.NewMemStore()

	if _, ok, err := s.Get([]byte("k")); ok || err != nil {
		t.Fatalf("Get on empty store = (_, %v, %v), want (_, false, nil)", ok, err)
	}

	if err := s.Set([]byte("k"), []byte("v1")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := s.Get([]byte("k"))
	if err != nil || !ok || string(v) != "v1" {
		t.Fatalf("Get(k) = (%q, %v, %v), want (v1, true, nil)", v, ok, err)
	}

	if has, err := s.Has([]byte("k")); err != nil || !has {
		t.Fatalf("Has(k) = (%v, %v), want (true, nil)", has, err)
	}

	if err := s.Delete([]byte("k")); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := s.Get([]byte("k")); ok {
		t.Error("Get(k) after Delete reported ok=true")
	}
}

func TestMemStoreRejectsEmptyKeyAndValue(t *testing.T) {
	s := kvstore.NewMemStore()

	if _, _, err := s.Get(nil); !errors.Is(err, kvstore.ErrEmptyKey) {
		t.Errorf("Get(nil) error = %v, want ErrEmptyKey", err)
	}
	if err := s.Set(nil, []byte("v")); !errors.Is(err, kvstore.ErrEmptyKey) {
		t.Errorf("Set(nil, v) error = %v, want ErrEmptyKey", err)
	}
	if err := s.Set([]byte("k"), nil); !errors.Is(err, kvstore.ErrEmptyValue) {
		t.Errorf("Set(k, nil) error = %v, want ErrEmptyValue", err)
	}
}

func TestMemStoreWriteBatch(t *testing.T) {
	s := kvstore.NewMemStore()
	s.Set([]byte("stale"), []byte("x"))

	b := s.NewBatch()
	if err := b.Set([]byte("a"), []byte("1")); err != nil {
		t.Fatalf("batch Set: %v", err)
	}
	if err := b.Delete([]byte("stale")); err != nil {
		t.Fatalf("batch Delete: %v", err)
	}
	if err := s.WriteBatch(b); err != nil {
		t.Fatalf("WriteBatch: %v", err)
	}

	if v, ok, _ := s.Get([]byte("a")); !ok || string(v) != "1" {
		t.Errorf("Get(a) after WriteBatch = (%q, %v), want (1, true)", v, ok)
	}
	if _, ok, _ := s.Get([]byte("stale")); ok {
		t.Error("Get(stale) after WriteBatch still ok, want deleted")
	}
}

func TestMemStoreWriteBatchRejectsForeignBatch(t *testing.T) {
	s1 := kvstore.NewMemStore()
	s2 := kvstore.NewMemStore()

	b := s1.NewBatch()
	if err := s2.WriteBatch(b); !errors.Is(err, kvstore.ErrDownCast) {
		t.Errorf("WriteBatch(foreign batch) = %v, want ErrDownCast", err)
	}
}
