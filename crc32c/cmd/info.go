/*
 * SPDX-FileCopyrightText: © 2017-2025 Istari Digital, Inc.
 * SPDX-License-Identifier: Apache-2.0
 */

package cmd

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/klauspost/cpuid"
	"github.com/spf13/cobra"

	"github.com/dgraph-io/crc32c"
)

func init() {
	RootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the CPU features and the CRC-32C implementation in use.",
	RunE: func(cmd *cobra.Command, args []string) error {
		printInfo(cmd.OutOrStdout())
		return nil
	},
}

func printInfo(w io.Writer) {
	names := make([]string, 0, 3)
	for _, impl := range crc32c.Implementations() {
		names = append(names, impl.String())
	}

	fmt.Fprintf(w, "Platform:         %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "CPU:              %s\n", cpuid.CPU.BrandName)
	fmt.Fprintf(w, "Cores:            %d physical, %d logical\n",
		cpuid.CPU.PhysicalCores, cpuid.CPU.LogicalCores)
	fmt.Fprintf(w, "SSE4.2:           %v\n", cpuid.CPU.SSE42())
	fmt.Fprintf(w, "Hardware feature: %s\n", crc32c.HardwareFeature())
	fmt.Fprintf(w, "Available:        %s\n", strings.Join(names, ", "))
	fmt.Fprintf(w, "Auto selects:     %s\n", crc32c.Active())
	fmt.Fprintf(w, "In use:           %s\n", checker.Implementation())
}
