// Package diag is a cheap, allocation-free-when-disabled internal trace
// logger, following the teacher's internal/debug package shape: a
// package-level switch gated by an env var, no external logging library.
// It is for internal traces only (recovered parser panics, lazy-init
// events) — per-file problems are report.ParseWarning values, not log
// lines (spec.md 7 "Error channels").
package diag

import (
	"log"
	"os"
	"sync"
)

var (
	enabled bool
	once    sync.Once
)

// Enabled reports whether tracing is on. Controlled by the CODELENS_DEBUG
// env var, checked once and cached.
func Enabled() bool {
	once.Do(func() {
		enabled = os.Getenv("CODELENS_DEBUG") != ""
	})
	return enabled
}

// Tracef logs a formatted trace line when Enabled, and is otherwise a
// no-op — callers do not need to guard calls with Enabled() themselves.
func Tracef(format string, args ...any) {
	if !Enabled() {
		return
	}
	log.Printf("[codelens] "+format, args...)
}
