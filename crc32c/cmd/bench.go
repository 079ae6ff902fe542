/*
 * SPDX-FileCopyrightText: © 2017-2025 Istari Digital, Inc.
 * SPDX-License-Identifier: Apache-2.0
 */

package cmd

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/dgraph-io/ristretto/z"
	humanize "github.com/dustin/go-humanize"
	"github.com/jonboulle/clockwork"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dgraph-io/crc32c"
)

type benchFlags struct {
	size       int
	iterations int
	seed       int64
}

var benchOpt benchFlags

func init() {
	RootCmd.AddCommand(benchCmd)
	benchCmd.Flags().IntVar(&benchOpt.size, "size", 1<<20, "Size of the buffer in bytes.")
	benchCmd.Flags().IntVar(&benchOpt.iterations, "iterations", 1000,
		"Number of times the buffer is checksummed per implementation.")
	benchCmd.Flags().Int64Var(&benchOpt.seed, "seed", 0, "Seed for the random buffer contents.")
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure the throughput of every CRC-32C implementation on this machine.",
	RunE:  handleBench,
}

type benchResult struct {
	impl    crc32c.Implementation
	bytes   int64
	elapsed time.Duration
	crc     uint32
}

// throughput is in bytes per second, 0 when nothing measurable elapsed.
func (r benchResult) throughput() uint64 {
	if r.elapsed <= 0 {
		return 0
	}
	return uint64(float64(r.bytes) / r.elapsed.Seconds())
}

func handleBench(cmd *cobra.Command, args []string) error {
	if benchOpt.size <= 0 || benchOpt.iterations <= 0 {
		return errors.New("--size and --iterations should be positive")
	}
	buf := z.Calloc(benchOpt.size, "crc32c.Bench")
	defer z.Free(buf)
	rand.New(rand.NewSource(benchOpt.seed)).Read(buf)

	results, err := runBench(clockwork.NewRealClock(), buf, benchOpt.iterations,
		crc32c.Implementations())
	if err != nil {
		return err
	}
	renderBench(cmd.OutOrStdout(), results)
	return nil
}

// runBench checksums buf iterations times with each implementation. All
// implementations must agree on the result.
func runBench(clock clockwork.Clock, buf []byte, iterations int,
	impls []crc32c.Implementation) ([]benchResult, error) {

	results := make([]benchResult, 0, len(impls))
	for _, impl := range impls {
		c, err := crc32c.NewChecksummer(crc32c.DefaultOptions().
			WithImplementation(impl).
			WithMetricsEnabled(metrics).
			WithLogger(logger))
		if err != nil {
			return nil, err
		}

		var crc uint32
		start := clock.Now()
		for i := 0; i < iterations; i++ {
			crc = c.Update(crc, buf)
		}
		elapsed := clock.Now().Sub(start)

		res := benchResult{
			impl:    impl,
			bytes:   int64(len(buf)) * int64(iterations),
			elapsed: elapsed,
			crc:     crc,
		}
		if len(results) > 0 && results[0].crc != res.crc {
			return nil, errors.Errorf("%s produced %08x but %s produced %08x",
				impl, res.crc, results[0].impl, results[0].crc)
		}
		logger.Debugf("bench %s: %d bytes in %s", impl, res.bytes, elapsed)
		results = append(results, res)
	}
	return results, nil
}

func renderBench(w io.Writer, results []benchResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Implementation", "Processed", "Elapsed", "Throughput", "CRC"})
	for _, r := range results {
		name := r.impl.String()
		if r.impl == crc32c.Active() {
			name += " (auto)"
		}
		table.Append([]string{
			name,
			humanize.IBytes(uint64(r.bytes)),
			r.elapsed.Round(time.Microsecond).String(),
			humanize.IBytes(r.throughput()) + "/s",
			fmt.Sprintf("%08x", r.crc),
		})
	}
	table.Render()
}
