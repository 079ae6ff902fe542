/*
 * SPDX-FileCopyrightText: © 2017-2025 Istari Digital, Inc.
 * SPDX-License-Identifier: Apache-2.0
 */

package crc32c

import (
	"hash"
	"io"

	"github.com/pkg/errors"

	"github.com/dgraph-io/crc32c/y"
)

// Checksummer is an accumulator bound to one implementation. It holds no
// running state and is safe for concurrent use.
type Checksummer struct {
	opt  Options
	impl Implementation
	raw  func(uint32, []byte) uint32
	name string
}

// std backs the package level helpers that need a Checksummer.
var std = &Checksummer{
	opt:  Options{Implementation: Auto},
	impl: active,
	raw:  rawFunc(active),
	name: active.String(),
}

// NewChecksummer resolves opt.Implementation and returns a Checksummer using
// it.
func NewChecksummer(opt Options) (*Checksummer, error) {
	impl := opt.Implementation
	switch impl {
	case Auto:
		impl = active
	case Hardware, Generic, Stdlib:
	default:
		return nil, errors.Wrapf(ErrUnknownImplementation, "value %d", int(impl))
	}
	if !Available(impl) {
		return nil, errors.Wrapf(ErrUnavailable, "%s (cpu feature: %s)", impl, HardwareFeature())
	}

	c := &Checksummer{
		opt:  opt,
		impl: impl,
		raw:  rawFunc(impl),
		name: impl.String(),
	}
	opt.Infof("Using %s CRC-32C implementation (cpu feature: %s)", impl, HardwareFeature())
	return c, nil
}

// Implementation returns the concrete implementation in use.
func (c *Checksummer) Implementation() Implementation {
	return c.impl
}

// Update returns the result of folding p into crc.
func (c *Checksummer) Update(crc uint32, p []byte) uint32 {
	c.record(len(p))
	if len(p) == 0 {
		return crc
	}
	return ^c.raw(^crc, p)
}

// Checksum returns the CRC-32C of p.
func (c *Checksummer) Checksum(p []byte) uint32 {
	return c.Update(0, p)
}

// Raw is Update without the pre and post inversion.
func (c *Checksummer) Raw(crc uint32, p []byte) uint32 {
	c.record(len(p))
	if len(p) == 0 {
		return crc
	}
	return c.raw(crc, p)
}

// New returns a hash.Hash32 computing the CRC-32C with this Checksummer.
func (c *Checksummer) New() hash.Hash32 {
	return c.NewWithSeed(0)
}

// NewWithSeed returns a hash.Hash32 that continues from seed, an earlier
// Update result. Reset returns it to seed.
func (c *Checksummer) NewWithSeed(seed uint32) hash.Hash32 {
	return &digest{seed: seed, crc: seed, c: c}
}

// ReadFrom folds everything read from r into crc until EOF. It returns the
// new checksum and the number of bytes consumed. On a read error the checksum
// covers the bytes read before it.
func (c *Checksummer) ReadFrom(crc uint32, r io.Reader) (uint32, int64, error) {
	buf := blockPool.Get()
	defer blockPool.Put(buf)

	var n int64
	for {
		m, err := r.Read(buf)
		if m > 0 {
			crc = c.Update(crc, buf[:m])
			n += int64(m)
		}
		switch {
		case err == io.EOF:
			return crc, n, nil
		case err != nil:
			return crc, n, errors.Wrapf(err, "while reading after %d bytes", n)
		}
	}
}

func (c *Checksummer) record(n int) {
	y.NumUpdatesAdd(c.opt.MetricsEnabled, c.name, 1)
	y.NumBytesAdd(c.opt.MetricsEnabled, c.name, int64(n))
}
