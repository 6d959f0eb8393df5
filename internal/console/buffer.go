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

// Buffer is a fixed-capacity post-mortem log. Once full, further bytes are
// dropped rather than wrapping, so the earliest boot output survives for
// inspection after a halt.
type Buffer struct {
	buf       []byte
	truncated bool
}

// NewBuffer returns a Buffer holding at most capacity bytes.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// Put records one byte, or drops it when the buffer is full.
func (b *Buffer) Put(c byte) {
	if len(b.buf) == cap(b.buf) {
		b.truncated = true
		return
	}

	b.buf = append(b.buf, c)
}

// Bytes returns the recorded output. The slice aliases the buffer and is
// only valid until the next Put.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// Truncated reports whether any output was dropped.
func (b *Buffer) Truncated() bool {
	return b.truncated
}
