/*
 * SPDX-FileCopyrightText: © 2017-2025 Istari Digital, Inc.
 * SPDX-License-Identifier: Apache-2.0
 */

package crc32c

import (
	"io"

	"github.com/dgraph-io/crc32c/y"
)

const readBlockSize = 64 << 10

var blockPool = &y.BlockPool{BlockSize: readBlockSize}

// SumReader returns the CRC-32C of everything read from r and the number of
// bytes read.
func SumReader(r io.Reader) (uint32, int64, error) {
	return std.ReadFrom(0, r)
}

// Reader checksums the bytes that pass through it.
type Reader struct {
	r   io.Reader
	c   *Checksummer
	crc uint32
	n   int64
}

// NewReader wraps r so that every byte read is folded into a running
// CRC-32C.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r, c: std}
}

// NewReader wraps r with a Reader using this Checksummer.
func (c *Checksummer) NewReader(r io.Reader) *Reader {
	return &Reader{r: r, c: c}
}

func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if n > 0 {
		r.crc = r.c.Update(r.crc, p[:n])
		r.n += int64(n)
	}
	return n, err
}

// Sum32 returns the checksum of the bytes read so far.
func (r *Reader) Sum32() uint32 { return r.crc }

// Count returns the number of bytes read so far.
func (r *Reader) Count() int64 { return r.n }
