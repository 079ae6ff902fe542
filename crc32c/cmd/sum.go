/*
 * SPDX-FileCopyrightText: © 2017-2025 Istari Digital, Inc.
 * SPDX-License-Identifier: Apache-2.0
 */

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cespare/xxhash/v2"
	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/net/trace"

	"github.com/dgraph-io/crc32c/checksum"
	"github.com/dgraph-io/crc32c/internal/crc"
	"github.com/dgraph-io/crc32c/y"
)

type sumFlags struct {
	algo       string
	raw        bool
	seed       string
	decompress string
	showSize   bool
}

var sumOpt sumFlags

func init() {
	RootCmd.AddCommand(sumCmd)
	sumCmd.Flags().StringVar(&sumOpt.algo, "algo", "crc32c",
		"Checksum algorithm: crc32c, masked-crc32c or xxhash64.")
	sumCmd.Flags().BoolVar(&sumOpt.raw, "raw", false,
		"Skip the CRC-32C pre and post inversion, as a bare CRC32 instruction loop does.")
	sumCmd.Flags().StringVar(&sumOpt.seed, "seed", "0",
		"Hex CRC-32C value to continue from.")
	sumCmd.Flags().StringVar(&sumOpt.decompress, "decompress", decompressNone,
		"Checksum the decoded stream: none, auto, gzip, zstd or snappy.")
	sumCmd.Flags().BoolVar(&sumOpt.showSize, "size", false,
		"Also print the number of bytes checksummed.")
}

var sumCmd = &cobra.Command{
	Use:   "sum [file...]",
	Short: "Print checksums of files, or of stdin when no file or - is given.",
	Long: `
Prints one "<hex>  <name>" line per input. The output can be saved and later
verified with the check command, using the same --algo and --decompress.
`,
	RunE: handleSum,
}

// sumConfig is the validated form of the sum and check flags.
type sumConfig struct {
	algo       checksum.Algorithm
	raw        bool
	seed       uint32
	decompress string
}

func (sc sumConfig) format(sum uint64) string {
	return fmt.Sprintf("%0*x", sc.algo.Width()*2, sum)
}

func parseSumConfig(algoName, seedHex, decompress string, raw bool) (sumConfig, error) {
	var sc sumConfig
	algo, err := checksum.ParseAlgorithm(algoName)
	if err != nil {
		return sc, err
	}
	seed, err := strconv.ParseUint(seedHex, 16, 32)
	if err != nil {
		return sc, errors.Wrapf(err, "invalid --seed %q", seedHex)
	}
	if (raw || seed != 0) && algo != checksum.CRC32C {
		return sc, errors.Errorf("--raw and --seed only apply to --algo=crc32c, not %s", algo)
	}
	if err := validDecompress(decompress); err != nil {
		return sc, err
	}
	return sumConfig{algo: algo, raw: raw, seed: uint32(seed), decompress: decompress}, nil
}

func handleSum(cmd *cobra.Command, args []string) error {
	sc, err := parseSumConfig(sumOpt.algo, sumOpt.seed, sumOpt.decompress, sumOpt.raw)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}

	out := cmd.OutOrStdout()
	var failed error
	for _, name := range args {
		sum, n, err := sumFile(sc, name, cmd.InOrStdin())
		if err != nil {
			failed = y.CombineErrors(failed, err)
			continue
		}
		if sumOpt.showSize {
			fmt.Fprintf(out, "%s  %s  %s\n", sc.format(sum), humanize.IBytes(uint64(n)), name)
		} else {
			fmt.Fprintf(out, "%s  %s\n", sc.format(sum), name)
		}
	}
	return failed
}

// sumFile checksums the named file, or stdin for "-".
func sumFile(sc sumConfig, name string, stdin io.Reader) (uint64, int64, error) {
	tr := trace.New("crc32c.Sum", name)
	defer tr.Finish()
	ctx := trace.NewContext(context.Background(), tr)

	var src io.Reader = stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			y.TraceError(ctx, err)
			return 0, 0, errors.Wrapf(err, "while opening %s", name)
		}
		defer f.Close()
		src = f
	}

	rc, err := decompressor(sc.decompress, name, src)
	if err != nil {
		y.TraceError(ctx, err)
		return 0, 0, errors.Wrapf(err, "while reading %s", name)
	}
	defer rc.Close()

	sum, n, err := sumReader(sc, rc)
	if err != nil {
		y.TraceError(ctx, err)
		return 0, n, errors.Wrapf(err, "while reading %s", name)
	}
	y.Trace(ctx, "%s of %d bytes: %s", sc.algo, n, sc.format(sum))
	logger.Debugf("%s: %d bytes, %s %s", name, n, sc.algo, sc.format(sum))
	return sum, n, nil
}

type rawWriter struct {
	crc uint32
}

func (w *rawWriter) Write(p []byte) (int, error) {
	w.crc = checker.Raw(w.crc, p)
	return len(p), nil
}

func sumReader(sc sumConfig, r io.Reader) (uint64, int64, error) {
	switch sc.algo {
	case checksum.CRC32C:
		if sc.raw {
			w := &rawWriter{crc: sc.seed}
			n, err := io.Copy(w, r)
			return uint64(w.crc), n, err
		}
		sum, n, err := checker.ReadFrom(sc.seed, r)
		return uint64(sum), n, err
	case checksum.MaskedCRC32C:
		sum, n, err := checker.ReadFrom(0, r)
		return uint64(crc.CRC(sum).Value()), n, err
	case checksum.XXHash64:
		d := xxhash.New()
		n, err := io.Copy(d, r)
		return d.Sum64(), n, err
	default:
		return 0, 0, errors.Errorf("unsupported algorithm %s", sc.algo)
	}
}
