/*
 * SPDX-FileCopyrightText: © 2017-2025 Istari Digital, Inc.
 * SPDX-License-Identifier: Apache-2.0
 */

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dgraph-io/crc32c/checksum"
	"github.com/dgraph-io/crc32c/y"
)

type checkFlags struct {
	algo       string
	raw        bool
	seed       string
	decompress string
	quiet      bool
}

var checkOpt checkFlags

func init() {
	RootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&checkOpt.algo, "algo", "crc32c",
		"Checksum algorithm the manifest was written with.")
	checkCmd.Flags().BoolVar(&checkOpt.raw, "raw", false,
		"The manifest holds unconditioned CRC-32C values.")
	checkCmd.Flags().StringVar(&checkOpt.seed, "seed", "0",
		"Hex CRC-32C value the manifest sums continue from.")
	checkCmd.Flags().StringVar(&checkOpt.decompress, "decompress", decompressNone,
		"Checksum the decoded stream: none, auto, gzip, zstd or snappy.")
	checkCmd.Flags().BoolVarP(&checkOpt.quiet, "quiet", "q", false,
		"Don't print OK for each successfully verified file.")
}

var checkCmd = &cobra.Command{
	Use:   "check <manifest>",
	Short: "Verify files against a manifest written by the sum command.",
	Long: `
Reads "<hex>  <path>" lines from the manifest (or stdin for -), recomputes each
checksum and prints "<path>: OK" or "<path>: FAILED". Blank lines and lines
starting with # are ignored. Exits non-zero if any file fails.
`,
	Args: cobra.ExactArgs(1),
	RunE: handleCheck,
}

// manifestEntry is one parsed manifest line.
type manifestEntry struct {
	line int
	sum  uint64
	path string
}

func parseManifest(r io.Reader, sc sumConfig) ([]manifestEntry, error) {
	var entries []manifestEntry
	width := sc.algo.Width() * 2
	scanner := bufio.NewScanner(r)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.SplitN(line, "  ", 2)
		if len(fields) != 2 || len(fields[0]) != width {
			return nil, errors.Errorf("line %d: expected \"<%d hex digits>  <path>\", got %q",
				lineNum, width, line)
		}
		sum, err := strconv.ParseUint(fields[0], 16, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNum)
		}
		entries = append(entries, manifestEntry{line: lineNum, sum: sum, path: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "while reading manifest")
	}
	return entries, nil
}

func handleCheck(cmd *cobra.Command, args []string) error {
	sc, err := parseSumConfig(checkOpt.algo, checkOpt.seed, checkOpt.decompress, checkOpt.raw)
	if err != nil {
		return err
	}

	var manifest io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "failed to open manifest")
		}
		defer f.Close()
		manifest = f
	}
	entries, err := parseManifest(manifest, sc)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var mismatched, unreadable int
	for _, e := range entries {
		sum, _, err := sumFile(sc, e.path, cmd.InOrStdin())
		switch {
		case err != nil:
			unreadable++
			logger.Warningf("%v", err)
			fmt.Fprintf(out, "%s: FAILED open or read\n", e.path)
		case sum != e.sum:
			mismatched++
			y.NumVerifyFailuresAdd(metrics, 1)
			logger.Debugf("%s: %v", e.path, errors.Wrapf(checksum.ErrChecksumMismatch,
				"actual: %s, expected: %s", sc.format(sum), sc.format(e.sum)))
			fmt.Fprintf(out, "%s: FAILED\n", e.path)
		case !checkOpt.quiet:
			fmt.Fprintf(out, "%s: OK\n", e.path)
		}
	}

	var failed error
	if mismatched > 0 {
		failed = errors.Wrapf(checksum.ErrChecksumMismatch,
			"%d of %d computed checksums did NOT match", mismatched, len(entries))
	}
	if unreadable > 0 {
		failed = y.CombineErrors(failed,
			errors.Errorf("%d of %d listed files could not be read", unreadable, len(entries)))
	}
	return failed
}
