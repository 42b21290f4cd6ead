// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

var traceEnabled bool

var levelNames = map[string]log.Level{
	"trace": log.DebugLevel,
	"debug": log.DebugLevel,
	"info":  log.InfoLevel,
	"warn":  log.WarnLevel,
	"error": log.ErrorLevel,
	"fatal": log.FatalLevel,
}

// InitLogger sets up Apex with a line handler and a level taken from the
// GRIDUTIL_LOG env variable. Unset or unrecognized values mean error.
func InitLogger() {
	name := strings.ToLower(os.Getenv("GRIDUTIL_LOG"))
	traceEnabled = name == "trace"

	level, ok := levelNames[name]
	if !ok {
		level = log.ErrorLevel
	}

	log.SetHandler(&LineHandler{Out: os.Stdout})
	log.SetLevel(level)
}

// LineHandler writes one timestamped line per entry, tagging each with a
// single level letter.
type LineHandler struct {
	Out io.Writer
}

// HandleLog implements log.Handler.
func (h *LineHandler) HandleLog(e *log.Entry) error {
	message := e.Message

	// Trace entries travel through Debug with a marker prefix since apex has
	// no level below Debug.
	letter := "?"
	if rest, ok := strings.CutPrefix(message, "TRACE: "); ok {
		letter = "T"
		message = rest
	} else {
		switch e.Level {
		case log.DebugLevel:
			letter = "D"
		case log.InfoLevel:
			letter = "I"
		case log.WarnLevel:
			letter = "W"
		case log.ErrorLevel:
			letter = "E"
		case log.FatalLevel:
			letter = "F"
		}
	}

	stamp := time.Now().Format("2006-01-02 15:04:05")
	_, err := fmt.Fprintf(h.Out, "%s %s %s\n", stamp, letter, message)
	return err
}

// Tracef logs at Trace level (below Debug).
func Tracef(format string, args ...interface{}) {
	if traceEnabled {
		log.Debug("TRACE: " + fmt.Sprintf(format, args...))
	}
}

// Debugf logs at Debug level.
func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// Infof logs at Info level.
func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

// Errorf logs at Error level.
func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

// Debug logs at Debug level.
func Debug(msg string) {
	log.Debug(msg)
}

// Warnf logs at Warn level.
func Warnf(format string, args ...interface{}) {
	log.Warn(fmt.Sprintf(format, args...))
}

// WithError returns an entry with error.
func WithError(err error) *log.Entry {
	return log.WithError(err)
}
