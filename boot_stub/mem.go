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

package main

import (
	_ "unsafe"

	"github.com/usbarmory/tamago/dma"
)

const (
	// Boot stub RAM
	stubStart = 0x80000000
	stubSize  = 0x08000000 // 128MB

	// Boot stub DMA
	stubDMAStart = 0x88000000
	stubDMASize  = 0x02000000 // 32MB

	// Loader drop zone: the trampoline header page, then the kernel
	// image at the hand-off entry point. Must match the loader stage
	// linker script.
	headerStart = 0x8a000000
	kernelStart = 0x8a001000

	// kernelMaxSize bounds the drop zone: it ends where the kernel
	// execution region begins.
	kernelMaxSize = kernelExecStart - kernelStart

	// Kernel execution region
	kernelExecStart = 0x90000000
	kernelExecSize  = 0x10000000 // 256MB
)

//go:linkname ramStart runtime.ramStart
var ramStart uint32 = stubStart

//go:linkname ramSize runtime.ramSize
var ramSize uint32 = stubSize

var kernelRegion *dma.Region

func init() {
	kernelRegion, _ = dma.NewRegion(kernelExecStart, kernelExecSize, false)
	kernelRegion.Reserve(kernelExecSize, 0)

	dma.Init(stubDMAStart, stubDMASize)
}
