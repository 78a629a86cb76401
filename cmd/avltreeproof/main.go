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

// Command avltreeproof builds a small tree from a fixed set of keys and
// writes out inclusion-proof probes: one happy path per key, plus a family
// of deliberately corrupted variants, so that a verifier implementation in
// any language can be checked against the same fixtures.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	avltree "github.com/transparency-dev/avltree"
	"github.com/transparency-dev/avltree/proof"
)

// keys is a fixed insertion sequence: little endian 4-byte encodings of
// these integers, used as both key and value.
var keys = []uint32{100, 50, 150, 25, 75, 125, 175, 65, 85}

// probe is a single verification parameter set, serialized as JSON for
// cross-implementation fixtures.
type probe struct {
	Key   []byte       `json:"key"`
	Value []byte       `json:"value"`
	Root  []byte       `json:"root"`
	Path  []proof.Step `json:"path"`

	Desc      string `json:"desc"`
	WantError bool   `json:"wantErr"`
}

func le(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

func buildTree() *avltree.Tree {
	tree := avltree.New()
	for _, k := range keys {
		b := le(k)
		tree.Insert(b, b)
	}
	return tree
}

func corruptProbes(key, value, root []byte, path []proof.Step) []probe {
	ret := []probe{
		{key, append([]byte{}, value...), root, path, "happy path", false},
		{[]byte("wrong-key"), value, root, path, "wrong key", true},
		{key, []byte("wrong-value"), root, path, "wrong value", true},
		{key, value, []byte("wrong-root"), path, "wrong root", true},
	}

	if len(path) > 0 {
		truncated := append([]proof.Step{}, path[:len(path)-1]...)
		ret = append(ret, probe{key, value, root, truncated, "truncated path", true})

		extended := append(append([]proof.Step{}, path...), proof.Step{Suffix: root})
		ret = append(ret, probe{key, value, root, extended, "trailing garbage step", true})
	}

	for i, step := range path {
		flipped := append([]proof.Step{}, path...)
		if len(step.Prefix) > 0 {
			p := append([]byte{}, step.Prefix...)
			p[0] ^= 0x01
			flipped[i] = proof.Step{Prefix: p, Suffix: step.Suffix}
		} else if len(step.Suffix) > 0 {
			s := append([]byte{}, step.Suffix...)
			s[0] ^= 0x01
			flipped[i] = proof.Step{Prefix: step.Prefix, Suffix: s}
		} else {
			continue
		}
		desc := fmt.Sprintf("flipped bit in path[%d]", i)
		ret = append(ret, probe{key, value, root, flipped, desc, true})
	}

	return ret
}

func writeProbe(directory string, p probe) error {
	fileName := strings.ReplaceAll(p.Desc, " ", "-") + ".json"
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal probe %q: %w", p.Desc, err)
	}
	return os.WriteFile(filepath.Join(directory, fileName), b, 0644)
}

func writeInclusionTestData(rootDirectory string) error {
	tree := buildTree()
	root := tree.RootHash()

	for i, k := range keys {
		key := le(k)
		p, ok := tree.GetProof(key)
		if !ok {
			return fmt.Errorf("GetProof(%x) not found", key)
		}

		directory := filepath.Join(rootDirectory, strconv.Itoa(i))
		if err := os.MkdirAll(directory, 0755); err != nil {
			return err
		}

		for _, pr := range corruptProbes(p.Key, p.Value, root, p.Path) {
			if err := writeProbe(directory, pr); err != nil {
				return err
			}
		}
	}

	return nil
}

func main() {
	tree := buildTree()
	fmt.Printf("root hash: %x\n", tree.RootHash())

	if err := writeInclusionTestData("testdata/inclusion"); err != nil {
		log.Fatal(err)
	}
}
