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

package gate

import (
	"encoding/binary"
	"errors"
)

const (
	// RoleSize is the fixed width of the header role hint.
	RoleSize = 16

	// HeaderSize is the on-memory size of the trampoline header.
	HeaderSize = 8 + RoleSize
)

// Header is the fixed-layout record the loader stage leaves in memory for
// the trampoline: the expected checksum, how many bytes at the hand-off
// entry point it covers, and a role hint for the next stage. The role hint
// is passed through untouched; integrity checking never consults it.
type Header struct {
	CRC    uint32
	Length uint32
	Role   [RoleSize]byte
}

// ParseHeader decodes a header from the raw bytes laid down by the loader,
// fixed-width little-endian fields followed by the role buffer.
func ParseHeader(b []byte) (hdr Header, err error) {
	if len(b) < HeaderSize {
		return hdr, errors.New("short trampoline header")
	}

	hdr.CRC = binary.LittleEndian.Uint32(b[0:4])
	hdr.Length = binary.LittleEndian.Uint32(b[4:8])
	copy(hdr.Role[:], b[8:HeaderSize])

	return
}

// RoleHint returns the role buffer as a string, cut at the first NUL.
func (h Header) RoleHint() string {
	for i, c := range h.Role {
		if c == 0 {
			return string(h.Role[:i])
		}
	}

	return string(h.Role[:])
}
