// Copyright (c) 2026 Marc Love.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"
	jsonhandler "github.com/apex/log/handlers/json"
)

var initOnce sync.Once

// Init sets up Apex with a handler and level. It is safe to call more than
// once; only the first call takes effect. The TRAM_LOG env variable, when
// set, overrides the requested level so logging can be raised before
// configuration has resolved.
func Init(level string, useJSON bool) {
	initOnce.Do(func() {
		if envLevel := strings.ToLower(os.Getenv("TRAM_LOG")); envLevel != "" {
			level = envLevel
		}
		log.SetLevel(parseLevel(level))
		if useJSON {
			log.SetHandler(jsonhandler.New(os.Stderr))
		} else {
			log.SetHandler(&CustomHandler{})
		}
	})
}

func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// SetLevel adjusts the process log level after Init, e.g. when a config
// reload changes log_level.
func SetLevel(level string) {
	log.SetLevel(parseLevel(level))
}

// CustomHandler formats log messages and writes to stderr
type CustomHandler struct{}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	level := "?"
	switch e.Level {
	case log.DebugLevel:
		level = "D"
	case log.InfoLevel:
		level = "I"
	case log.WarnLevel:
		level = "W"
	case log.ErrorLevel:
		level = "E"
	case log.FatalLevel:
		level = "F"
	}
	fmt.Fprintf(os.Stderr, "%s %s %s\n", timestamp, level, e.Message)
	return nil
}

// Debugf logs at Debug level.
func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// Infof logs at Info level.
func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

// Warnf logs at Warn level.
func Warnf(format string, args ...interface{}) {
	log.Warn(fmt.Sprintf(format, args...))
}

// Errorf logs at Error level.
func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

// Debug logs at Debug level.
func Debug(msg string) {
	log.Debug(msg)
}

// WithError returns an entry with error.
func WithError(err error) *log.Entry {
	return log.WithError(err)
}
