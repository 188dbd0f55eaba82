// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for the RPC tests
package fixtures

import (
	"crypto/ed25519"
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftd/account"
	"github.com/bitmark-inc/nftd/storage"
)

const (
	dir = "testing"

	// LogCategory - logger channel for tests
	LogCategory = "testing"
)

// fixed keys so signatures are reproducible
var (
	OwnerPrivateKey    = ed25519.NewKeyFromSeed(seed(0x11))
	DelegatePrivateKey = ed25519.NewKeyFromSeed(seed(0x22))
	StrangerPrivateKey = ed25519.NewKeyFromSeed(seed(0x33))

	Owner    = accountOf(OwnerPrivateKey)
	Delegate = accountOf(DelegatePrivateKey)
	Stranger = accountOf(StrangerPrivateKey)
)

func seed(b byte) []byte {
	s := make([]byte, ed25519.SeedSize)
	for i := range s {
		s[i] = b
	}
	return s
}

func accountOf(privateKey ed25519.PrivateKey) account.Account {
	a, err := account.FromBytes(privateKey.Public().(ed25519.PublicKey))
	if nil != err {
		panic(err)
	}
	return a
}

// SetupTestLogger - logger writing into a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	_ = logger.Initialise(logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
}

// TeardownTestLogger - stop the logger and remove its files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}

// SetupStorage - in-memory database closed at the end of the test
func SetupStorage(t *testing.T) {
	err := storage.Initialise(storage.Configuration{Engine: storage.EngineMemory})
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	t.Cleanup(storage.Finalise)
}

// CertificatePair - PEM certificate and key for localhost
func CertificatePair(t *testing.T) (string, string) {
	cert, key, err := certgen.NewTLSCertPair("nftd testing", time.Now().Add(time.Hour), false, nil)
	if nil != err {
		t.Fatalf("certificate error: %s", err)
	}
	return string(cert), string(key)
}
