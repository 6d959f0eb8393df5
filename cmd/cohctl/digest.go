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

package main

import (
	"os"

	"github.com/cheggaaa/pb/v3"

	"github.com/cohesix/cohesix-boot/internal/verify"
)

// digestFile digests an image file with a progress bar, kernel images can
// be large enough for the wait to be noticeable.
func digestFile(path string) (digest string, err error) {
	f, err := os.Open(path)

	if err != nil {
		return
	}
	defer f.Close()

	info, err := f.Stat()

	if err != nil {
		return
	}

	bar := pb.Full.Start64(info.Size())
	defer bar.Finish()

	return verify.DigestOf(bar.NewProxyReader(f))
}
