/*
 * SPDX-FileCopyrightText: © 2017-2025 Istari Digital, Inc.
 * SPDX-License-Identifier: Apache-2.0
 */

package crc32c

import (
	"hash"
)

// digest implements hash.Hash32 over a Checksummer.
type digest struct {
	seed uint32
	crc  uint32
	c    *Checksummer
}

var _ hash.Hash32 = (*digest)(nil)

// New returns a hash.Hash32 computing the CRC-32C checksum.
func New() hash.Hash32 {
	return std.New()
}

// NewWithSeed returns a hash.Hash32 continuing from seed.
func NewWithSeed(seed uint32) hash.Hash32 {
	return std.NewWithSeed(seed)
}

func (d *digest) Size() int { return Size }

// BlockSize is 1: any write length is folded without buffering.
func (d *digest) BlockSize() int { return 1 }

func (d *digest) Reset() { d.crc = d.seed }

func (d *digest) Write(p []byte) (n int, err error) {
	d.crc = d.c.Update(d.crc, p)
	return len(p), nil
}

func (d *digest) Sum32() uint32 { return d.crc }

// Sum appends the big-endian checksum to in.
func (d *digest) Sum(in []byte) []byte {
	s := d.Sum32()
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}
