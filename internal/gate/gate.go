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

// Package gate implements the trampoline integrity checkpoint run between
// kernel load and root task hand-off.
//
// The gate checksums the memory region at the hand-off entry point against
// the expectation recorded in the trampoline header, emits its telemetry
// through a console sink and returns a terminal Verdict. The caller owns
// the irreversible part: jumping to the next stage or halting. Keeping the
// jump out of this package leaves the decision logic testable.
package gate

import (
	"github.com/cohesix/cohesix-boot/internal/console"
	"github.com/cohesix/cohesix-boot/internal/crc"
)

// Telemetry markers scanned for by boot harnesses.
const (
	MarkerOK   = "BOOT_OK"
	MarkerFail = "BOOT_FAIL:crc_mismatch"
)

// Outcome classifies a gate run.
type Outcome int

const (
	// Verified means the checksum matched the header expectation.
	Verified Outcome = iota
	// Bypassed means the header declared zero bytes to check, so the
	// gate passed vacuously without reading the region.
	Bypassed
	// Failed means the checksum did not match. Terminal.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Verified:
		return "verified"
	case Bypassed:
		return "bypassed"
	case Failed:
		return "failed"
	}

	return "unknown"
}

// Verdict is the terminal result of the gate. It is consumed exactly once
// by Drive, which performs the hand-off or the halt.
type Verdict struct {
	Outcome Outcome
	// Sum is the computed checksum, zero when bypassed.
	Sum uint32
	// Reason carries the failure tag, empty on success.
	Reason string
}

// HandOff reports whether the verdict permits transferring control.
func (v Verdict) HandOff() bool {
	return v.Outcome != Failed
}

// Check runs the integrity checkpoint. entry is the hand-off address, used
// only for telemetry; region holds the bytes at that address and must cover
// at least hdr.Length of them. Bytes past hdr.Length are outside checksum
// coverage and ignored; a length exceeding the region fails the gate.
//
// A zero hdr.Length bypasses the check entirely: the region is not read and
// the gate reports success. Some boot configurations legitimately ship a
// zero length, so this behavior is load-bearing and must not be tightened
// here.
func Check(hdr Header, entry uint64, region []byte, con *console.Console) Verdict {
	if hdr.Length == 0 {
		emitOK(con, entry)
		return Verdict{Outcome: Bypassed}
	}

	if int64(hdr.Length) > int64(len(region)) {
		emitFail(con)
		return Verdict{Outcome: Failed, Reason: "trampoline_crc"}
	}

	sum := crc.Sum(region[:hdr.Length])

	if sum != hdr.CRC {
		emitFail(con)
		return Verdict{Outcome: Failed, Sum: sum, Reason: "crc_mismatch"}
	}

	emitOK(con, entry)

	return Verdict{Outcome: Verified, Sum: sum}
}

func emitOK(con *console.Console, entry uint64) {
	con.WriteHex(entry)
	con.WriteLine(" crc ok")
	con.WriteLine(MarkerOK)
}

func emitFail(con *console.Console) {
	con.WriteLine("crc fail")
	con.WriteLine(MarkerFail)
}

// Drive consumes a verdict, invoking exactly one of handoff or halt. In the
// boot stub neither function returns; they are parameters so the dispatch
// can be exercised off target.
func Drive(v Verdict, handoff, halt func()) {
	if v.HandOff() {
		handoff()
		return
	}

	halt()
}
