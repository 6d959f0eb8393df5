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

// Package verify implements the kernel image verification gate run in
// firmware context before the loader is allowed to execute the image.
//
// The gate digests the image stream, compares it against the expected
// digest artifact shipped next to the image and reports the outcome to its
// caller. It never halts anything itself: refusing to start an unverified
// image is the loader's job. Every failure leaves one diagnostic line in
// the persistent boot log for post-mortem inspection.
package verify

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/sumdb/note"

	"github.com/cohesix/cohesix-boot/internal/sha1"
)

// readChunk is the image read granularity. It has no effect on the digest,
// only on how often the loop turns.
const readChunk = 512

// Status classifies a verification attempt.
type Status int

const (
	// Verified means the image digest matched the artifact.
	Verified Status = iota
	// Mismatch means both artifacts were readable but disagree.
	Mismatch
	// Missing means the image or the digest artifact could not be
	// opened or read. The caller may retry with a fallback image.
	Missing
)

func (s Status) String() string {
	switch s {
	case Verified:
		return "verified"
	case Mismatch:
		return "mismatch"
	case Missing:
		return "missing"
	}

	return "unknown"
}

// Outcome is the result of one verification attempt.
type Outcome struct {
	Status Status
	// Digest is the computed image digest in lowercase hex, empty when
	// the image could not be read.
	Digest string
	// Reason is the diagnostic for a non-verified outcome.
	Reason string
}

// OK reports whether the image may be handed to the loader.
func (o Outcome) OK() bool {
	return o.Status == Verified
}

// Verifier checks kernel images against their expected-digest artifacts.
// The zero value verifies plain hex artifacts and logs nowhere.
type Verifier struct {
	// LogPath is the persistent boot log appended to on failure. Empty
	// disables logging.
	LogPath string

	// ArtifactVerifier, when set, requires the digest artifact to be a
	// note signed by the corresponding key; the digest is then taken
	// from the note text. When nil the artifact is read as plain hex.
	ArtifactVerifier note.Verifier
}

// DigestOf digests the stream to end-of-stream and returns the lowercase
// hex digest. The stream is read in fixed chunks; chunking does not affect
// the result.
func DigestOf(r io.Reader) (string, error) {
	d := sha1.New()
	buf := make([]byte, readChunk)

	for {
		n, err := r.Read(buf)

		if n > 0 {
			d.Write(buf[:n])
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return "", err
		}
	}

	return sha1.Hex(d.Sum()), nil
}

// VerifyImage digests image and compares it against the expected-digest
// artifact. It performs no logging; VerifyImageFile wraps it with artifact
// loading and boot log appends.
func (v *Verifier) VerifyImage(image io.Reader, artifact []byte) Outcome {
	actual, err := DigestOf(image)

	if err != nil {
		return Outcome{Status: Missing, Reason: fmt.Sprintf("kernel read error: %v", err)}
	}

	expected, err := v.expectedDigest(artifact)

	if err != nil {
		return Outcome{Status: Mismatch, Digest: actual, Reason: fmt.Sprintf("digest artifact rejected: %v", err)}
	}

	if expected != actual {
		return Outcome{Status: Mismatch, Digest: actual, Reason: "kernel hash mismatch"}
	}

	return Outcome{Status: Verified, Digest: actual}
}

// VerifyImageFile runs the gate over on-disk artifacts. Any failure appends
// exactly one diagnostic line to the boot log.
func (v *Verifier) VerifyImageFile(imagePath, digestPath string) Outcome {
	image, err := os.Open(imagePath)

	if err != nil {
		return v.fail(Outcome{
			Status: Missing,
			Reason: fmt.Sprintf("%s missing", filepath.Base(imagePath)),
		})
	}
	defer image.Close()

	artifact, err := os.ReadFile(digestPath)

	if err != nil {
		return v.fail(Outcome{
			Status: Missing,
			Reason: fmt.Sprintf("%s missing", filepath.Base(digestPath)),
		})
	}

	o := v.VerifyImage(image, artifact)

	if !o.OK() {
		return v.fail(o)
	}

	return o
}

// expectedDigest extracts the expected digest from the artifact bytes: the
// first 40 non-whitespace characters, with any trailing CR/LF or padding
// trimmed. With an ArtifactVerifier configured the artifact must first open
// as a correctly signed note.
func (v *Verifier) expectedDigest(artifact []byte) (string, error) {
	if v.ArtifactVerifier != nil {
		n, err := note.Open(artifact, note.VerifierList(v.ArtifactVerifier))

		if err != nil {
			return "", err
		}

		artifact = []byte(n.Text)
	}

	s := strings.TrimSpace(string(artifact))

	if len(s) > sha1.HexSize {
		s = s[:sha1.HexSize]
	}

	return s, nil
}

// fail appends the outcome diagnostic to the boot log and passes the
// outcome through.
func (v *Verifier) fail(o Outcome) Outcome {
	if v.LogPath == "" {
		return o
	}

	f, err := os.OpenFile(v.LogPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)

	if err != nil {
		// The log is best-effort; the outcome still reaches the caller.
		return o
	}
	defer f.Close()

	fmt.Fprintln(f, o.Reason)

	return o
}
