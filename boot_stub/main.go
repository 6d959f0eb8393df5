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

//go:build tamago
// +build tamago

// The Cohesix boot stub runs between kernel load and root task start: it
// checksums the loaded kernel against the trampoline header left by the
// loader stage and either hands control off, once, or halts for good.
package main

import (
	"log"
	"os"
	"runtime"
	"unsafe"

	"github.com/usbarmory/armory-boot/exec"
	"github.com/usbarmory/tamago/soc/nxp/imx6ul"

	"github.com/cohesix/cohesix-boot/internal/console"
	"github.com/cohesix/cohesix-boot/internal/gate"
	"github.com/cohesix/cohesix-boot/internal/role"
)

// initialized at compile time (see Makefile)
var (
	Build    string
	Revision string
)

// Watchdog service interval (in ms) granted to the next stage at hand-off.
const watchdogTimeout = 60 * 1000

// Telemetry retained for post-mortem inspection after a halt.
const postMortemSize = 4096

var postMortem = console.NewBuffer(postMortemSize)

func init() {
	log.SetFlags(log.Ltime)
	log.SetOutput(os.Stdout)

	if imx6ul.Native {
		imx6ul.SetARMFreq(imx6ul.Freq792)
	}

	log.Printf("%s/%s (%s) boot stub %s %s",
		runtime.GOOS, runtime.GOARCH, runtime.Version(),
		Revision, Build)
}

func main() {
	con := console.New(telemetrySink(), postMortem)

	raw := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(headerStart))), gate.HeaderSize)

	hdr, err := gate.ParseHeader(raw)

	if err != nil {
		con.WriteLine("crc fail")
		con.WriteLine(gate.MarkerFail)
		halt()
	}

	// The drop zone is sliced at its full extent. The header length only
	// sets checksum coverage: a length beyond the zone fails inside the
	// gate, a zero length bypasses the check but still boots, and the
	// ELF parser bounds the image itself.
	image := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(kernelStart))), kernelMaxSize)

	v := gate.Check(hdr, kernelStart, image, con)

	gate.Drive(v,
		func() { handoff(hdr, image, con) },
		halt,
	)
}

// handoff loads the verified kernel image and transfers control. It does
// not return: a load or boot error is itself terminal at this point, since
// the only alternative to the next stage is the halt loop.
func handoff(hdr gate.Header, image []byte, con *console.Console) {
	name := hdr.RoleHint()

	if name == "" {
		name = role.Default
	}

	con.Tagged("root", "role "+name)
	con.Tagged("root", "init "+role.InitScript(name))

	kernel := &exec.ELFImage{
		Region: kernelRegion,
		ELF:    image,
	}

	if err := kernel.Load(); err != nil {
		log.Printf("boot stub could not load kernel, %v", err)
		halt()
	}

	log.Printf("boot stub launching kernel entry:%#x size:%d", kernel.Entry(), len(image))

	if err := kernel.Boot(cleanup); err != nil {
		log.Printf("boot stub hand-off error, %v", err)
	}

	halt()
}

// cleanup runs immediately before the jump to the next stage.
func cleanup() {
	if imx6ul.Native {
		// grant the next stage a full watchdog interval
		imx6ul.WDOG2.Service(watchdogTimeout)
	}
}

// halt is the terminal failure state. There is no retry and no reboot: an
// unverified hand-off would defeat the integrity guarantee, so the stub
// spins until an external watchdog or operator resets the board.
func halt() {
	for {
	}
}
