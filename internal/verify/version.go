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

package verify

import (
	"fmt"
	"os"
	"strings"

	"github.com/coreos/go-semver/semver"
)

// CheckVersion enforces a rollback floor: the version artifact at path
// records the newest kernel version ever booted.
//
// If the running version is older than the stored floor an error is
// returned and the caller must refuse the image. If it is newer the floor
// is raised. A missing artifact is initialized to the running version.
func CheckVersion(path, running string) (err error) {
	cur, err := semver.NewVersion(strings.TrimSpace(running))

	if err != nil {
		return fmt.Errorf("could not parse running version %q: %v", running, err)
	}

	stored, err := os.ReadFile(path)

	if os.IsNotExist(err) {
		return writeVersion(path, cur)
	}

	if err != nil {
		return fmt.Errorf("could not read version artifact: %v", err)
	}

	floor, err := semver.NewVersion(strings.TrimSpace(string(stored)))

	if err != nil {
		return fmt.Errorf("could not parse version artifact: %v", err)
	}

	switch {
	case cur.LessThan(*floor):
		return fmt.Errorf("version rollback: %s is older than floor %s", cur, floor)
	case floor.LessThan(*cur):
		return writeVersion(path, cur)
	}

	return nil
}

func writeVersion(path string, v *semver.Version) error {
	return os.WriteFile(path, []byte(v.String()+"\n"), 0644)
}
