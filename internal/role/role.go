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

// Package role maps the boot role carried by the bootargs (or the
// trampoline header role hint) to the init script launched after hand-off.
// The integrity gates never consult it; it only runs once a verdict has
// permitted continuation.
package role

import (
	"errors"
	"os"
	"strings"
)

const (
	// ArgKey is the bootargs key selecting the role.
	ArgKey = "cohrole"

	// Default role when none is configured.
	Default = "DroneWorker"

	// File the assigned role is recorded to for later boot stages.
	File = "/srv/cohrole"
)

// BootArgs is a read-only view of the parsed bootloader command line.
type BootArgs struct {
	m map[string]string
}

// Value returns the value for key, or "" when absent. Bare flags carry the
// value "1".
func (a BootArgs) Value(key string) string {
	return a.m[key]
}

// Flag reports whether key was present at all.
func (a BootArgs) Flag(key string) bool {
	_, ok := a.m[key]
	return ok
}

// ParseBootArgs parses a raw bootloader command line: whitespace-separated
// key=value tokens, where a token without '=' is a flag with value "1".
func ParseBootArgs(cmdline string) (BootArgs, error) {
	m := make(map[string]string)

	for _, token := range strings.Fields(cmdline) {
		k, v, found := strings.Cut(token, "=")

		if !found {
			v = "1"
		}

		if k == "" {
			return BootArgs{}, errors.New("empty key in cmdline")
		}

		m[k] = v
	}

	return BootArgs{m: m}, nil
}

// FromArgs returns the configured role, or Default when unset.
func FromArgs(a BootArgs) string {
	if r := a.Value(ArgKey); r != "" {
		return r
	}

	return Default
}

// initScripts maps each role to its init script. Roles not listed here
// fall back to the queen script.
var initScripts = map[string]string{
	"DroneWorker":        "/init/worker.rc",
	"KioskInteractive":   "/init/kiosk.rc",
	"InteractiveAiBooth": "/init/kiosk.rc",
	"SensorRelay":        "/init/sensor.rc",
	"SimulatorTest":      "/init/simtest.rc",
}

const fallbackScript = "/init/queen.rc"

// InitScript returns the init script for the given role.
func InitScript(role string) string {
	if s, ok := initScripts[role]; ok {
		return s
	}

	return fallbackScript
}

// WriteFile records the assigned role for later boot stages. Callers run
// in hosted contexts with a filesystem; the boot stub never writes files.
func WriteFile(path, role string) error {
	return os.WriteFile(path, []byte(role), 0644)
}
