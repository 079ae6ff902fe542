/*
 * SPDX-FileCopyrightText: © 2017-2025 Istari Digital, Inc.
 * SPDX-License-Identifier: Apache-2.0
 */

package cmd

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

const (
	decompressNone   = "none"
	decompressAuto   = "auto"
	decompressGzip   = "gzip"
	decompressZstd   = "zstd"
	decompressSnappy = "snappy"
)

var errUnknownDecompress = errors.New("unknown --decompress mode")

// byExtension maps file suffixes to the codec used when --decompress=auto.
var byExtension = map[string]string{
	".gz":  decompressGzip,
	".zst": decompressZstd,
	".sz":  decompressSnappy,
}

func validDecompress(mode string) error {
	switch mode {
	case decompressNone, decompressAuto, decompressGzip, decompressZstd, decompressSnappy:
		return nil
	}
	return errors.Wrapf(errUnknownDecompress, "%q", mode)
}

// decompressor wraps r so that reads return the decoded stream. name is only
// used to pick a codec in auto mode.
func decompressor(mode, name string, r io.Reader) (io.ReadCloser, error) {
	if mode == decompressAuto {
		mode = byExtension[strings.ToLower(filepath.Ext(name))]
	}
	switch mode {
	case "", decompressNone:
		return io.NopCloser(r), nil
	case decompressGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, errors.Wrap(err, "while opening gzip stream")
		}
		return zr, nil
	case decompressZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, errors.Wrap(err, "while opening zstd stream")
		}
		return dec.IOReadCloser(), nil
	case decompressSnappy:
		return io.NopCloser(snappy.NewReader(r)), nil
	default:
		return nil, errors.Wrapf(errUnknownDecompress, "%q", mode)
	}
}
