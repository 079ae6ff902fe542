/*
 * SPDX-FileCopyrightText: © 2017-2025 Istari Digital, Inc.
 * SPDX-License-Identifier: Apache-2.0
 */

package cmd

import (
	_ "expvar" // /debug/vars
	"net/http"
	_ "net/http/pprof" //nolint:gosec
	"sync"

	"go.opencensus.io/zpages"
	_ "golang.org/x/net/trace" // /debug/requests
)

var debugOnce sync.Once

// startDebugServer serves the default mux, which carries pprof, expvar and
// request traces, plus zpages under /z.
func startDebugServer(addr string) {
	debugOnce.Do(func() {
		zpages.Handle(nil, "/z")
		go func() {
			logger.Infof("Listening for /debug HTTP requests at %s", addr)
			if err := http.ListenAndServe(addr, nil); err != nil { //nolint:gosec
				logger.Errorf("debug server on %s stopped: %v", addr, err)
			}
		}()
	})
}
