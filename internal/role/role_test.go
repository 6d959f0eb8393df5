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

package role

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseBootArgs(t *testing.T) {
	args, err := ParseBootArgs("root=/srv/sda console=ttyS0,115200 quiet cohrole=SensorRelay")

	if err != nil {
		t.Fatalf("ParseBootArgs: %v", err)
	}

	if got := args.Value("root"); got != "/srv/sda" {
		t.Errorf("root = %q", got)
	}

	if got := args.Value("console"); got != "ttyS0,115200" {
		t.Errorf("console = %q", got)
	}

	if !args.Flag("quiet") || args.Value("quiet") != "1" {
		t.Error("bare flag not recorded as \"1\"")
	}

	if args.Flag("missing") {
		t.Error("absent key reported present")
	}

	if got := FromArgs(args); got != "SensorRelay" {
		t.Errorf("FromArgs = %q", got)
	}
}

func TestParseBootArgsEmptyKey(t *testing.T) {
	if _, err := ParseBootArgs("=novalue"); err == nil {
		t.Error("empty key accepted")
	}
}

func TestParseBootArgsEmpty(t *testing.T) {
	args, err := ParseBootArgs("   ")

	if err != nil {
		t.Fatalf("ParseBootArgs: %v", err)
	}

	if got := FromArgs(args); got != Default {
		t.Errorf("default role = %q, want %q", got, Default)
	}
}

func TestInitScript(t *testing.T) {
	for _, test := range []struct {
		role string
		want string
	}{
		{role: "DroneWorker", want: "/init/worker.rc"},
		{role: "KioskInteractive", want: "/init/kiosk.rc"},
		{role: "InteractiveAiBooth", want: "/init/kiosk.rc"},
		{role: "SensorRelay", want: "/init/sensor.rc"},
		{role: "SimulatorTest", want: "/init/simtest.rc"},
		{role: "Queen", want: "/init/queen.rc"},
		{role: "", want: "/init/queen.rc"},
	} {
		if got := InitScript(test.role); got != test.want {
			t.Errorf("InitScript(%q) = %q, want %q", test.role, got, test.want)
		}
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cohrole")

	if err := WriteFile(path, "SensorRelay"); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	b, err := os.ReadFile(path)

	if err != nil {
		t.Fatal(err)
	}

	if string(b) != "SensorRelay" {
		t.Errorf("role file holds %q", b)
	}
}
