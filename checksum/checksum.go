/*
 * SPDX-FileCopyrightText: © 2017-2025 Istari Digital, Inc.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package checksum calculates and verifies block checksums with a choice of
// algorithm.
package checksum

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"

	"github.com/dgraph-io/crc32c"
	"github.com/dgraph-io/crc32c/internal/crc"
	"github.com/dgraph-io/crc32c/y"
)

// Algorithm identifies a checksum function.
type Algorithm int32

const (
	CRC32C       Algorithm = 0
	XXHash64     Algorithm = 1
	MaskedCRC32C Algorithm = 2
)

var algoNames = map[Algorithm]string{
	CRC32C:       "crc32c",
	XXHash64:     "xxhash64",
	MaskedCRC32C: "masked-crc32c",
}

func (a Algorithm) String() string {
	if name, ok := algoNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int32(a))
}

// Width is the number of significant bytes in a sum of this algorithm.
func (a Algorithm) Width() int {
	if a == XXHash64 {
		return 8
	}
	return crc32c.Size
}

// Checksum is a sum tagged with the algorithm that produced it.
type Checksum struct {
	Algo Algorithm
	Sum  uint64
}

func (c Checksum) String() string {
	return fmt.Sprintf("%s:%0*x", c.Algo, c.Algo.Width()*2, c.Sum)
}

// ErrChecksumMismatch is returned at checksum mismatch.
var ErrChecksumMismatch = errors.New("checksum mismatch")

// ErrUnknownAlgorithm is returned by ParseAlgorithm.
var ErrUnknownAlgorithm = errors.New("unknown checksum algorithm")

// ParseAlgorithm maps a name as printed by String back to its value.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for algo, n := range algoNames {
		if n == name {
			return algo, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
}

// Calculate calculates checksum for data using ct checksum type.
func Calculate(data []byte, ct Algorithm) uint64 {
	switch ct {
	case CRC32C:
		return uint64(crc32c.Checksum(data))
	case MaskedCRC32C:
		return uint64(crc.New(data).Value())
	case XXHash64:
		return xxhash.Sum64(data)
	default:
		panic("checksum type not supported")
	}
}

// New returns a Checksum of data.
func New(data []byte, ct Algorithm) Checksum {
	return Checksum{Algo: ct, Sum: Calculate(data, ct)}
}

// Verify validates the checksum for the data against the given expected checksum.
func Verify(data []byte, expected Checksum) error {
	actual := Calculate(data, expected.Algo)
	if actual != expected.Sum {
		y.NumVerifyFailuresAdd(true, 1)
		return y.Wrapf(ErrChecksumMismatch, "actual: %d, expected: %d", actual, expected.Sum)
	}
	return nil
}
