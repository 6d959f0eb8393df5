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

// Package sha1 implements the boot verifier digest engine.
//
// It is a self-contained SHA-1 so the same code can run both in the
// firmware-context verifier and in freestanding environments without a
// crypto runtime. Digests are compared as lowercase hex strings, matching
// the on-disk kernel digest artifact format.
package sha1

import (
	"encoding/binary"
	"math/bits"
)

const (
	// Size of a digest in bytes.
	Size = 20

	// BlockSize of the compression function in bytes.
	BlockSize = 64

	// HexSize of the textual digest representation.
	HexSize = 40
)

const (
	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
	init4 = 0xC3D2E1F0
)

const (
	k0 = 0x5A827999
	k1 = 0x6ED9EBA1
	k2 = 0x8F1BBCDC
	k3 = 0xCA62C1D6
)

// Digest accumulates input towards a SHA-1 digest. A Digest is single-use:
// create one with New, feed it with any number of Write calls and consume
// it with Sum.
type Digest struct {
	h   [5]uint32
	x   [BlockSize]byte
	nx  int
	len uint64
}

// New returns a Digest initialized to the SHA-1 initialization vectors.
func New() *Digest {
	d := &Digest{}
	d.h[0] = init0
	d.h[1] = init1
	d.h[2] = init2
	d.h[3] = init3
	d.h[4] = init4
	return d
}

// Write absorbs p into the running digest. The final digest is independent
// of how the input is split across Write calls. It implements io.Writer and
// never returns an error.
func (d *Digest) Write(p []byte) (n int, err error) {
	n = len(p)
	d.len += uint64(n) << 3

	if d.nx > 0 {
		c := copy(d.x[d.nx:], p)
		d.nx += c
		p = p[c:]

		if d.nx == BlockSize {
			block(&d.h, d.x[:])
			d.nx = 0
		}
	}

	for len(p) >= BlockSize {
		block(&d.h, p[:BlockSize])
		p = p[BlockSize:]
	}

	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}

	return
}

// Sum pads the pending block, runs the final transform(s) and returns the
// digest. The Digest is consumed: it must not be written to or summed again.
func (d *Digest) Sum() (digest [Size]byte) {
	d.x[d.nx] = 0x80
	d.nx++

	// The 8-byte length footer no longer fits, spill into an extra block.
	if d.nx > BlockSize-8 {
		for i := d.nx; i < BlockSize; i++ {
			d.x[i] = 0
		}
		block(&d.h, d.x[:])
		d.nx = 0
	}

	for i := d.nx; i < BlockSize-8; i++ {
		d.x[i] = 0
	}

	binary.BigEndian.PutUint64(d.x[BlockSize-8:], d.len)
	block(&d.h, d.x[:])

	for i, s := range d.h {
		binary.BigEndian.PutUint32(digest[i*4:], s)
	}

	return
}

// Sum returns the SHA-1 digest of data in a single shot.
func Sum(data []byte) [Size]byte {
	d := New()
	d.Write(data)
	return d.Sum()
}

const hexDigits = "0123456789abcdef"

// Hex returns the canonical textual form of a digest, two lowercase hex
// digits per byte, most significant nibble first.
func Hex(digest [Size]byte) string {
	var out [HexSize]byte

	for i, b := range digest {
		out[i*2] = hexDigits[b>>4]
		out[i*2+1] = hexDigits[b&0x0f]
	}

	return string(out[:])
}

// block runs the compression function over one or more 64-byte blocks.
func block(h *[5]uint32, p []byte) {
	var w [80]uint32

	for len(p) >= BlockSize {
		for i := 0; i < 16; i++ {
			w[i] = binary.BigEndian.Uint32(p[i*4:])
		}

		for i := 16; i < 80; i++ {
			w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
		}

		a, b, c, d, e := h[0], h[1], h[2], h[3], h[4]

		for i := 0; i < 80; i++ {
			var f, k uint32

			switch {
			case i < 20:
				f = (b & c) | (^b & d)
				k = k0
			case i < 40:
				f = b ^ c ^ d
				k = k1
			case i < 60:
				f = (b & c) | (b & d) | (c & d)
				k = k2
			default:
				f = b ^ c ^ d
				k = k3
			}

			t := bits.RotateLeft32(a, 5) + f + e + k + w[i]
			e = d
			d = c
			c = bits.RotateLeft32(b, 30)
			b = a
			a = t
		}

		h[0] += a
		h[1] += b
		h[2] += c
		h[3] += d
		h[4] += e

		p = p[BlockSize:]
	}
}
