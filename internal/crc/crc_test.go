// Copyright 2025 The Cohesix Authors. All Rights Reserved.
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

package crc

import (
	"hash/crc32"
	"math/rand"
	"testing"
)

func TestKnownAnswers(t *testing.T) {
	for _, test := range []struct {
		name string
		in   string
		want uint32
	}{
		{
			name: "empty",
			in:   "",
			want: 0x00000000,
		}, {
			name: "check",
			in:   "123456789",
			want: 0xCBF43926,
		}, {
			name: "single byte",
			in:   "a",
			want: 0xE8B7BE43,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			if got := Sum([]byte(test.in)); got != test.want {
				t.Errorf("Sum(%q) = %#08x, want %#08x", test.in, got, test.want)
			}
		})
	}
}

func TestAgainstStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 100; i++ {
		in := make([]byte, rng.Intn(512))
		rng.Read(in)

		if got, want := Sum(in), crc32.ChecksumIEEE(in); got != want {
			t.Fatalf("len %d: got %#08x, want %#08x", len(in), got, want)
		}
	}
}

func TestUpdateComposes(t *testing.T) {
	a := []byte("boot integrity ")
	b := []byte("checkpoint")

	whole := Sum(append(append([]byte{}, a...), b...))
	split := Update(Update(0, a), b)

	if whole != split {
		t.Errorf("split sum %#08x, whole sum %#08x", split, whole)
	}
}

// The trampoline gate recomputes the checksum for post-mortem reporting, so
// a second pass over unchanged memory must agree with the first.
func TestIdempotent(t *testing.T) {
	in := []byte("unchanged region")

	if first, second := Sum(in), Sum(in); first != second {
		t.Errorf("first %#08x, second %#08x", first, second)
	}
}
