/*
 * SPDX-FileCopyrightText: © 2017-2025 Istari Digital, Inc.
 * SPDX-License-Identifier: Apache-2.0
 */

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dgraph-io/crc32c"
	"github.com/dgraph-io/crc32c/y"
)

var (
	implName  string
	metrics   bool
	verbose   bool
	debugAddr string

	// checker is built from the persistent flags before any subcommand runs.
	checker *crc32c.Checksummer
	logger  y.Logger = y.NewLogger(y.WARNING)
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:               "crc32c",
	Short:             "Compute and verify CRC-32C checksums.",
	PersistentPreRunE: validateRootCmdArgs,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&implName, "impl", "auto",
		"CRC-32C implementation: auto, hardware, generic or stdlib.")
	RootCmd.PersistentFlags().BoolVar(&metrics, "metrics", false,
		"Record expvar metrics (served at /debug/vars with --debug-addr).")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Log at DEBUG level instead of WARNING.")
	RootCmd.PersistentFlags().StringVar(&debugAddr, "debug-addr", "",
		"If set, serve pprof, traces and zpages on this address, e.g. localhost:8080.")
}

func validateRootCmdArgs(cmd *cobra.Command, args []string) error {
	if strings.HasPrefix(cmd.Use, "help ") { // No need to validate if it is help
		return nil
	}
	if verbose {
		logger = y.NewLogger(y.DEBUG)
	}
	impl, err := crc32c.ParseImplementation(implName)
	if err != nil {
		return errors.Wrap(err, "invalid --impl")
	}
	opt := crc32c.DefaultOptions().
		WithImplementation(impl).
		WithMetricsEnabled(metrics).
		WithLogger(logger)
	if checker, err = crc32c.NewChecksummer(opt); err != nil {
		return errors.Wrapf(err, "cannot use --impl=%s", implName)
	}
	if debugAddr != "" {
		startDebugServer(debugAddr)
	}
	return nil
}
