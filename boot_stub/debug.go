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

//go:build tamago && debug
// +build tamago,debug

package main

import (
	"os"

	"github.com/cohesix/cohesix-boot/internal/console"
)

// stdoutSink mirrors telemetry to stdout for emulated runs, where the
// runtime console stands in for the serial register.
type stdoutSink struct{}

func (stdoutSink) Put(c byte) {
	os.Stdout.Write([]byte{c})
}

func telemetrySink() console.Putter {
	return console.New(uartSink{}, stdoutSink{})
}
