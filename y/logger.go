/*
 * SPDX-FileCopyrightText: © 2017-2025 Istari Digital, Inc.
 * SPDX-License-Identifier: Apache-2.0
 */

package y

import (
	"log"
	"os"
)

// Logger is implemented by any logging system that is used for standard logs.
type Logger interface {
	Errorf(string, ...interface{})
	Warningf(string, ...interface{})
	Infof(string, ...interface{})
	Debugf(string, ...interface{})
}

type defaultLog struct {
	*log.Logger
	level loggingLevel
}

type loggingLevel int

const (
	DEBUG loggingLevel = iota
	INFO
	WARNING
	ERROR
)

var defaultLogger = &defaultLog{Logger: log.New(os.Stderr, "crc32c ", log.LstdFlags), level: INFO}

// DefaultLogger returns the package wide logger writing to stderr at INFO.
func DefaultLogger() Logger {
	return defaultLogger
}

// NewLogger returns a stderr logger that drops messages below level.
func NewLogger(level loggingLevel) Logger {
	return &defaultLog{Logger: log.New(os.Stderr, "crc32c ", log.LstdFlags), level: level}
}

func (l *defaultLog) Errorf(f string, v ...interface{}) {
	if l.level <= ERROR {
		l.Printf("ERROR: "+f, v...)
	}
}

func (l *defaultLog) Warningf(f string, v ...interface{}) {
	if l.level <= WARNING {
		l.Printf("WARNING: "+f, v...)
	}
}

func (l *defaultLog) Infof(f string, v ...interface{}) {
	if l.level <= INFO {
		l.Printf("INFO: "+f, v...)
	}
}

func (l *defaultLog) Debugf(f string, v ...interface{}) {
	if l.level <= DEBUG {
		l.Printf("DEBUG: "+f, v...)
	}
}

type nopLog struct{}

// NopLogger discards everything.
func NopLogger() Logger { return nopLog{} }

func (nopLog) Errorf(string, ...interface{})   {}
func (nopLog) Warningf(string, ...interface{}) {}
func (nopLog) Infof(string, ...interface{})    {}
func (nopLog) Debugf(string, ...interface{})   {}
