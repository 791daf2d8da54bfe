// Package testutils provides shared helpers for the actions test suites.
package testutils

import (
	"context"
	"log/slog"
)

// Record is one captured log entry: level, message, and the attributes
// flattened into a map.
type Record struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// LogRecorder is a slog.Handler that captures records in memory so tests
// can assert on emitted diagnostics without capturing process-wide log
// output.
type LogRecorder struct {
	records []Record
}

// NewLogger returns a logger backed by a fresh recorder.
func NewLogger() (*slog.Logger, *LogRecorder) {
	rec := &LogRecorder{}
	return slog.New(rec), rec
}

func (r *LogRecorder) Enabled(context.Context, slog.Level) bool { return true }

func (r *LogRecorder) Handle(_ context.Context, rec slog.Record) error {
	entry := Record{Level: rec.Level, Message: rec.Message, Attrs: make(map[string]any)}
	rec.Attrs(func(a slog.Attr) bool {
		entry.Attrs[a.Key] = a.Value.Any()
		return true
	})
	r.records = append(r.records, entry)
	return nil
}

func (r *LogRecorder) WithAttrs([]slog.Attr) slog.Handler { return r }

func (r *LogRecorder) WithGroup(string) slog.Handler { return r }

// Records returns everything captured so far.
func (r *LogRecorder) Records() []Record { return r.records }

// Warnings returns only the records emitted at warn level.
func (r *LogRecorder) Warnings() []Record {
	var out []Record
	for _, rec := range r.records {
		if rec.Level == slog.LevelWarn {
			out = append(out, rec)
		}
	}
	return out
}
