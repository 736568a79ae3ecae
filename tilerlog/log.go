// Package tilerlog provides the tiler's logging surface: a small severity-
// leveled Logger interface backed by a rotating file sink
// (github.com/natefinch/lumberjack) when one is configured and falling
// back to the standard log package otherwise.
//
// The tiler core itself performs no logging beyond attaching context to
// errors; this package exists for the surrounding benchmark/demo tooling
// and for tests that want to observe materialization activity.
package tilerlog

import (
	"fmt"
	"log"

	"github.com/dustin/go-humanize"
	"github.com/natefinch/lumberjack"
)

// ModeFlag is the minimum severity that gets written.
type ModeFlag uint

const (
	DebugMode ModeFlag = iota
	InfoMode
	WarningMode
	ErrorMode
	CriticalMode
	SilentMode
)

// Logger provides a way for callers to log messages at different
// severities.  Implementations may vary by sink (file vs standard log).
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Criticalf(format string, args ...interface{})
}

var (
	mode   ModeFlag
	logger Logger = stdLogger{}
)

// FileConfig configures a rotating log file sink.
type FileConfig struct {
	Logfile string
	MaxSize int // megabytes
	MaxAge  int // days
}

// fileLogger writes through a lumberjack.Logger.
type fileLogger struct {
	*lumberjack.Logger
}

func (fl fileLogger) Debugf(format string, args ...interface{}) {
	fl.Write([]byte(" DEBUG " + fmt.Sprintf(format, args...)))
}

func (fl fileLogger) Infof(format string, args ...interface{}) {
	fl.Write([]byte("  INFO " + fmt.Sprintf(format, args...)))
}

func (fl fileLogger) Warningf(format string, args ...interface{}) {
	fl.Write([]byte(" WARN  " + fmt.Sprintf(format, args...)))
}

func (fl fileLogger) Errorf(format string, args ...interface{}) {
	fl.Write([]byte(" ERROR " + fmt.Sprintf(format, args...)))
}

func (fl fileLogger) Criticalf(format string, args ...interface{}) {
	fl.Write([]byte(" CRIT  " + fmt.Sprintf(format, args...)))
}

// stdLogger is the default sink: standard library log.Printf, used when no
// log file is set.
type stdLogger struct{}

func (stdLogger) Debugf(format string, args ...interface{}) {
	log.Printf("   DEBUG "+format, args...)
}

func (stdLogger) Infof(format string, args ...interface{}) {
	log.Printf("    INFO "+format, args...)
}

func (stdLogger) Warningf(format string, args ...interface{}) {
	log.Printf(" WARNING "+format, args...)
}

func (stdLogger) Errorf(format string, args ...interface{}) {
	log.Printf("   ERROR "+format, args...)
}

func (stdLogger) Criticalf(format string, args ...interface{}) {
	log.Printf("CRITICAL "+format, args...)
}

// SetFileSink switches the package-level logger to a rotating log file. A
// zero-value Logfile leaves logging on the standard log package.
func SetFileSink(c FileConfig) {
	if c.Logfile == "" {
		Infof("no log file configured, logging to stderr")
		return
	}
	logger = fileLogger{&lumberjack.Logger{
		Filename: c.Logfile,
		MaxSize:  c.MaxSize,
		MaxAge:   c.MaxAge,
	}}
}

// SetMode sets the minimum severity required for a log call to be written.
func SetMode(m ModeFlag) {
	mode = m
}

func Debugf(format string, args ...interface{}) {
	if mode <= DebugMode {
		logger.Debugf(format, args...)
	}
}

func Infof(format string, args ...interface{}) {
	if mode <= InfoMode {
		logger.Infof(format, args...)
	}
}

func Warningf(format string, args ...interface{}) {
	if mode <= WarningMode {
		logger.Warningf(format, args...)
	}
}

func Errorf(format string, args ...interface{}) {
	if mode <= ErrorMode {
		logger.Errorf(format, args...)
	}
}

func Criticalf(format string, args ...interface{}) {
	if mode <= CriticalMode {
		logger.Criticalf(format, args...)
	}
}

// TileMaterialized logs a materialized tile's size in a human-readable form.
func TileMaterialized(tileID uint64, attr string, nbytes uint64) {
	Debugf("materialized tile %d attribute %q: %s\n", tileID, attr, humanize.Bytes(nbytes))
}
