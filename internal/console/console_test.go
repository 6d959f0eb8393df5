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

package console

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type recorder struct {
	out []byte
}

func (r *recorder) Put(c byte) {
	r.out = append(r.out, c)
}

func TestWriteHex(t *testing.T) {
	for _, test := range []struct {
		name string
		in   uint64
		want string
	}{
		{
			name: "zero",
			in:   0,
			want: "0x0000000000000000",
		}, {
			name: "entry point",
			in:   0xffffff8040000000,
			want: "0xffffff8040000000",
		}, {
			name: "low byte",
			in:   0x2a,
			want: "0x000000000000002a",
		}, {
			name: "all ones",
			in:   0xffffffffffffffff,
			want: "0xffffffffffffffff",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			r := &recorder{}
			New(r).WriteHex(test.in)

			if diff := cmp.Diff(test.want, string(r.out)); diff != "" {
				t.Errorf("WriteHex(%#x) mismatch (-want +got):\n%s", test.in, diff)
			}
		})
	}
}

func TestLinesAndTags(t *testing.T) {
	r := &recorder{}
	c := New(r)

	c.WriteLine("crc ok")
	c.Tagged("root", "launching userland...")
	c.WriteString("BOOT_OK")

	want := "crc ok\n[root] launching userland...\nBOOT_OK"

	if diff := cmp.Diff(want, string(r.out)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestFanOut(t *testing.T) {
	a := &recorder{}
	b := &recorder{}

	New(a, b).WriteLine("x")

	if string(a.out) != "x\n" || string(b.out) != "x\n" {
		t.Errorf("sinks diverge: %q vs %q", a.out, b.out)
	}
}

func TestBufferTruncates(t *testing.T) {
	b := NewBuffer(4)
	c := New(b)

	c.WriteString("abcdef")

	if got := string(b.Bytes()); got != "abcd" {
		t.Errorf("buffer holds %q, want %q", got, "abcd")
	}

	if !b.Truncated() {
		t.Error("Truncated() = false after overflow")
	}

	// Earliest output is retained, later bytes dropped.
	c.WriteString("gh")

	if got := string(b.Bytes()); got != "abcd" {
		t.Errorf("buffer wrapped to %q", got)
	}
}

func TestBufferExactFit(t *testing.T) {
	b := NewBuffer(2)

	b.Put('o')
	b.Put('k')

	if b.Truncated() {
		t.Error("Truncated() = true with no overflow")
	}

	if got := string(b.Bytes()); got != "ok" {
		t.Errorf("buffer holds %q, want %q", got, "ok")
	}
}
