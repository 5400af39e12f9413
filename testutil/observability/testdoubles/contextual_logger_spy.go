package testdoubles

import (
	"context"
	"sync"

	"github.com/rishithapentyala/Library-Management-System/circulation"
)

// ContextualLoggerSpy captures contextual logging calls.
type ContextualLoggerSpy struct {
	mu      sync.Mutex
	records []SpyLogRecord
}

// SpyLogRecord is a captured log call. Args are the slog style key/value pairs.
type SpyLogRecord struct {
	Level   string
	Message string
	Args    []any
	Context context.Context
}

// Attr returns the value logged under key, ok is false if the key was not logged.
func (r SpyLogRecord) Attr(key string) (any, bool) {
	for i := 0; i+1 < len(r.Args); i += 2 {
		if k, isString := r.Args[i].(string); isString && k == key {
			return r.Args[i+1], true
		}
	}

	return nil, false
}

// NewContextualLoggerSpy creates an empty spy.
func NewContextualLoggerSpy() *ContextualLoggerSpy {
	return &ContextualLoggerSpy{}
}

func (s *ContextualLoggerSpy) DebugContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "debug", msg, args)
}

func (s *ContextualLoggerSpy) InfoContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "info", msg, args)
}

func (s *ContextualLoggerSpy) WarnContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "warn", msg, args)
}

func (s *ContextualLoggerSpy) ErrorContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "error", msg, args)
}

func (s *ContextualLoggerSpy) record(ctx context.Context, level, msg string, args []any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, SpyLogRecord{
		Level:   level,
		Message: msg,
		Args:    append([]any(nil), args...),
		Context: ctx,
	})
}

// Records returns a copy of all captured records in call order.
func (s *ContextualLoggerSpy) Records() []SpyLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyLogRecord(nil), s.records...)
}

// RecordsAt returns the captured records of one level ("debug", "info", "warn", "error").
func (s *ContextualLoggerSpy) RecordsAt(level string) []SpyLogRecord {
	var matching []SpyLogRecord
	for _, record := range s.Records() {
		if record.Level == level {
			matching = append(matching, record)
		}
	}

	return matching
}

// HasLog reports whether msg was logged at level.
func (s *ContextualLoggerSpy) HasLog(level, msg string) bool {
	for _, record := range s.RecordsAt(level) {
		if record.Message == msg {
			return true
		}
	}

	return false
}

// Reset drops all captured records.
func (s *ContextualLoggerSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
}

var _ circulation.ContextualLogger = (*ContextualLoggerSpy)(nil)
