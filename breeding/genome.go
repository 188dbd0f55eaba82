// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package breeding - derive a new token from two parents
//
// A bred token's payload is a fixed size genome.  The child genome
// takes each bit from parent 1 where the selector bit is set and from
// parent 2 where it is clear.
package breeding

import (
	"encoding/hex"

	"github.com/bitmark-inc/nftd/fault"
)

// GenomeLength - bytes in a genome
const GenomeLength = 16

// Genome - payload of a bred token
type Genome [GenomeLength]byte

// GenomeFromBytes - genome from a payload of exactly GenomeLength bytes
func GenomeFromBytes(payload []byte) (Genome, error) {
	var g Genome
	if GenomeLength != len(payload) {
		return g, fault.ErrInvalidParent
	}
	copy(g[:], payload)
	return g, nil
}

// Combine - bitwise multiplex of two genomes
func Combine(parent1 Genome, parent2 Genome, selector Genome) Genome {
	var child Genome
	for i := range child {
		child[i] = (selector[i] & parent1[i]) | (^selector[i] & parent2[i])
	}
	return child
}

// String - hex for use by the fmt package
func (g Genome) String() string {
	return hex.EncodeToString(g[:])
}

// MarshalText - genome as hex
func (g Genome) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText - genome from hex
func (g *Genome) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	decoded, err := GenomeFromBytes(buffer[:n])
	if nil != err {
		return err
	}
	*g = decoded
	return nil
}
