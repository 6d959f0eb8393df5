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

// Package console provides the boot telemetry sink: line-oriented helpers
// over one or more single-byte output ports, typically a memory-mapped UART
// transmit register plus an in-memory post-mortem buffer.
//
// Writes are fire-and-forget. The hardware register is assumed always
// ready, there is no flow control and no error path, so none of the
// helpers return anything. The package allocates nothing after
// construction, as it runs before any heap exists.
package console

// Putter is a write-only single-byte output port.
type Putter interface {
	Put(c byte)
}

// Console fans line-oriented output out to its sinks, one byte at a time.
type Console struct {
	sinks []Putter
}

// New returns a Console writing to each of the given sinks in order.
func New(sinks ...Putter) *Console {
	return &Console{sinks: sinks}
}

// Put emits a single byte to every sink, making Console itself a Putter.
func (c *Console) Put(b byte) {
	for _, s := range c.sinks {
		s.Put(b)
	}
}

// WriteString emits s without a trailing newline.
func (c *Console) WriteString(s string) {
	for i := 0; i < len(s); i++ {
		c.Put(s[i])
	}
}

// WriteLine emits s followed by a newline.
func (c *Console) WriteLine(s string) {
	c.WriteString(s)
	c.Put('\n')
}

// Tagged emits a "[tag] message" line.
func (c *Console) Tagged(tag, msg string) {
	c.Put('[')
	c.WriteString(tag)
	c.Put(']')
	c.Put(' ')
	c.WriteLine(msg)
}

const hexDigits = "0123456789abcdef"

// WriteHex emits v as "0x" followed by 16 zero-padded lowercase hex digits,
// most significant nibble first. No trailing newline.
func (c *Console) WriteHex(v uint64) {
	var buf [18]byte

	buf[0] = '0'
	buf[1] = 'x'

	for i := 0; i < 16; i++ {
		buf[17-i] = hexDigits[(v>>(i*4))&0xf]
	}

	for _, b := range buf {
		c.Put(b)
	}
}
