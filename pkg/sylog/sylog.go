// Copyright (c) 2024-2025, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

// Package sylog implements the logging interface used across the runtime.
// Messages are written to stderr so that they never mix with the stdio of a
// container process attached to the terminal.
package sylog

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var logger = &logrus.Logger{
	Out: os.Stderr,
	Formatter: &logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
	},
	Level: logrus.InfoLevel,
}

// SetLevel explicitly sets the logging level, with negative values
// silencing everything but fatal messages and values above one
// enabling debug output.
func SetLevel(l int) {
	switch {
	case l < 0:
		logger.SetLevel(logrus.FatalLevel)
	case l == 0:
		logger.SetLevel(logrus.WarnLevel)
	case l == 1:
		logger.SetLevel(logrus.InfoLevel)
	default:
		logger.SetLevel(logrus.DebugLevel)
	}
}

// DebugLevel reports whether debug messages are currently emitted.
func DebugLevel() bool {
	return logger.IsLevelEnabled(logrus.DebugLevel)
}

// SetOutput redirects log output, used by tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Debugf logs a message at debug level.
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Infof logs a message at info level.
func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Warningf logs a message at warning level.
func Warningf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Errorf logs a message at error level.
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

// Fatalf logs a message at fatal level and exits with a non-zero status.
func Fatalf(format string, args ...interface{}) {
	logger.Fatalf(format, args...)
}
