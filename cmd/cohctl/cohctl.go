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

// cohctl seals and verifies Cohesix kernel images: it computes the digest
// artifact shipped next to an image, replays the boot-time verification on
// a host, enforces the rollback floor and resolves boot roles. It operates
// on the same artifacts the firmware verifier consumes, so a sealed image
// is exactly what the boot path will accept.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/mod/sumdb/note"
	"k8s.io/klog"

	"github.com/cohesix/cohesix-boot/internal/role"
	"github.com/cohesix/cohesix-boot/internal/verify"
)

type Config struct {
	image  string
	digest string
	log    string

	seal      string
	signKey   string
	verifyKey string

	version     string
	versionFile string

	cmdline  string
	roleFile string
}

var conf *Config

func init() {
	conf = &Config{}

	flag.StringVar(&conf.image, "i", "", "kernel image")
	flag.StringVar(&conf.digest, "d", "", "expected digest artifact to verify the image against")
	flag.StringVar(&conf.log, "l", "boot.log", "boot log appended to on verification failure")

	flag.StringVar(&conf.seal, "s", "", "seal: write the image digest artifact to this path")
	flag.StringVar(&conf.signKey, "k", "", "note signer key file for sealing")
	flag.StringVar(&conf.verifyKey, "p", "", "note verifier key file for verification")

	flag.StringVar(&conf.version, "V", "", "kernel version to check against the rollback floor")
	flag.StringVar(&conf.versionFile, "F", "kernel.version", "rollback floor artifact")

	flag.StringVar(&conf.cmdline, "R", "", "resolve the boot role for a kernel cmdline")
	flag.StringVar(&conf.roleFile, "w", "", "also record the resolved role to this file")
}

func main() {
	var err error

	defer func() {
		if flag.NFlag() == 0 {
			flag.PrintDefaults()
		}

		if err != nil {
			klog.Exitf("%v", err)
		}
	}()

	flag.Parse()

	switch {
	case conf.seal != "":
		err = seal()
	case conf.digest != "":
		err = verifyImage()
	case conf.version != "":
		err = checkVersion()
	case conf.cmdline != "":
		err = resolveRole()
	}
}

func seal() (err error) {
	if conf.image == "" {
		return errors.New("seal requires an image (-i)")
	}

	digest, err := digestFile(conf.image)

	if err != nil {
		return
	}

	artifact := []byte(digest + "\n")

	if conf.signKey != "" {
		if artifact, err = signArtifact(artifact, conf.signKey); err != nil {
			return
		}
	}

	if err = os.WriteFile(conf.seal, artifact, 0644); err != nil {
		return
	}

	klog.Infof("sealed %s (%s) to %s", conf.image, digest, conf.seal)

	return
}

func verifyImage() (err error) {
	if conf.image == "" {
		return errors.New("verification requires an image (-i)")
	}

	v := &verify.Verifier{
		LogPath: conf.log,
	}

	if conf.verifyKey != "" {
		if v.ArtifactVerifier, err = loadVerifier(conf.verifyKey); err != nil {
			return
		}
	}

	o := v.VerifyImageFile(conf.image, conf.digest)

	if !o.OK() {
		return fmt.Errorf("%s not verified: %s", conf.image, o.Reason)
	}

	klog.Infof("%s verified (%s)", conf.image, o.Digest)

	return
}

func checkVersion() (err error) {
	if err = verify.CheckVersion(conf.versionFile, conf.version); err != nil {
		return
	}

	klog.Infof("version %s passes floor %s", conf.version, conf.versionFile)

	return
}

func resolveRole() (err error) {
	args, err := role.ParseBootArgs(conf.cmdline)

	if err != nil {
		return
	}

	r := role.FromArgs(args)

	klog.Infof("role %s init %s", r, role.InitScript(r))

	if conf.roleFile != "" {
		err = role.WriteFile(conf.roleFile, r)
	}

	return
}

func signArtifact(artifact []byte, keyFile string) ([]byte, error) {
	skey, err := os.ReadFile(keyFile)

	if err != nil {
		return nil, err
	}

	signer, err := note.NewSigner(strings.TrimSpace(string(skey)))

	if err != nil {
		return nil, err
	}

	return note.Sign(&note.Note{Text: string(artifact)}, signer)
}

func loadVerifier(keyFile string) (note.Verifier, error) {
	vkey, err := os.ReadFile(keyFile)

	if err != nil {
		return nil, err
	}

	return note.NewVerifier(strings.TrimSpace(string(vkey)))
}
