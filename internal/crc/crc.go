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

// Package crc implements the trampoline integrity checksum, a standard
// CRC-32 with the reflected polynomial, all-ones initialization and
// ones-complement finalization. The table is built at init so the package
// stays allocation-free afterwards, a requirement of the freestanding
// checkpoint it serves.
package crc

// Poly is the reflected form of the CRC-32 generator polynomial.
const Poly = 0xEDB88320

var table [256]uint32

func init() {
	for i := range table {
		c := uint32(i)

		for k := 0; k < 8; k++ {
			if c&1 != 0 {
				c = Poly ^ (c >> 1)
			} else {
				c >>= 1
			}
		}

		table[i] = c
	}
}

// Update adds the bytes in p to the running checksum crc and returns the
// updated checksum, so that Update(Update(0, a), b) == Sum(a||b).
func Update(crc uint32, p []byte) uint32 {
	c := ^crc

	for _, b := range p {
		c = table[byte(c)^b] ^ (c >> 8)
	}

	return ^c
}

// Sum returns the CRC-32 checksum of p. Sum(nil) is 0.
func Sum(p []byte) uint32 {
	return Update(0, p)
}
