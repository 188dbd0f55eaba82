// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"encoding/pem"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftd/fault"
)

// Get - TLS configuration and fingerprint from PEM certificate and key
func Get(log *logger.L, name string, certificate string, key string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
		MinVersion: tls.VersionTLS12,
	}

	fin = Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// Fingerprint - SHA3-256 of a DER certificate
//
//	openssl x509 -outform DER -in nftd.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}

// FingerprintPEM - fingerprint of the first certificate in PEM text
func FingerprintPEM(certificate string) ([32]byte, error) {
	block, _ := pem.Decode([]byte(certificate))
	if nil == block || "CERTIFICATE" != block.Type {
		return [32]byte{}, fault.ErrMissingParameters
	}
	return Fingerprint(block.Bytes), nil
}
