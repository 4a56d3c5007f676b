// -*- Mode: Go; indent-tabs-mode: t -*-

/*
 * Copyright (C) 2021 Canonical Ltd
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License version 3 as
 * published by the Free Software Foundation.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package logutil

import (
	"io"
	"time"

	log "github.com/sirupsen/logrus"
)

var (
	// ErrorLevels are the levels that Configure sends to stderr.
	ErrorLevels = []log.Level{log.PanicLevel, log.FatalLevel, log.ErrorLevel, log.WarnLevel}

	// InfoLevels are the levels that Configure sends to stdout.
	InfoLevels = []log.Level{log.InfoLevel, log.DebugLevel, log.TraceLevel}
)

// FormattedWriter is a log.Hook which writes entries of the specified
// levels to its own output with its own formatter, independently of the
// logger the entry was created from.
type FormattedWriter struct {
	log    *log.Logger
	levels []log.Level
}

func (w *FormattedWriter) Fire(entry *log.Entry) error {
	origLogger := entry.Logger
	entry.Logger = w.log
	defer func() {
		entry.Logger = origLogger
	}()

	line, err := entry.Bytes()
	if err != nil {
		return err
	}

	_, err = w.log.Out.Write(line)
	return err
}

func (w *FormattedWriter) Levels() []log.Level {
	return w.levels
}

func (w *FormattedWriter) Formatter() log.Formatter {
	return w.log.Formatter
}

func (w *FormattedWriter) SetFormatter(formatter log.Formatter) {
	w.log.SetFormatter(formatter)
}

func (w *FormattedWriter) Output() io.Writer {
	return w.log.Out
}

func (w *FormattedWriter) SetOutput(output io.Writer) {
	w.log.SetOutput(output)
}

// NewFormattedWriter returns a hook for the specified levels that writes
// timestamped text to the standard error.
func NewFormattedWriter(levels []log.Level) *FormattedWriter {
	w := &FormattedWriter{log: log.New(), levels: levels}
	w.SetFormatter(&log.TextFormatter{
		FullTimestamp:          true,
		TimestampFormat:        time.RFC3339Nano,
		DisableLevelTruncation: true,
		PadLevelText:           true})
	return w
}

// Configure discards the direct output of logger, and adds hooks that
// write warnings and errors to stderr and everything else to stdout.
func Configure(logger *log.Logger, stdout, stderr io.Writer) {
	logger.SetOutput(io.Discard)

	w := NewFormattedWriter(ErrorLevels)
	w.SetOutput(stderr)
	logger.AddHook(w)

	w = NewFormattedWriter(InfoLevels)
	w.SetOutput(stdout)
	logger.AddHook(w)
}
