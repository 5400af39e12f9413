package testdoubles

import (
	"context"
	"log/slog"
	"sync"
)

// LogHandlerSpy is a slog.Handler that captures records, for components logging through *slog.Logger.
type LogHandlerSpy struct {
	mu      *sync.Mutex
	records *[]slog.Record
	attrs   []slog.Attr
}

// NewLogHandlerSpy creates an empty spy. Wrap it with slog.New.
func NewLogHandlerSpy() *LogHandlerSpy {
	return &LogHandlerSpy{mu: &sync.Mutex{}, records: &[]slog.Record{}}
}

func (s *LogHandlerSpy) Enabled(context.Context, slog.Level) bool {
	return true
}

func (s *LogHandlerSpy) Handle(_ context.Context, record slog.Record) error {
	record = record.Clone()
	record.AddAttrs(s.attrs...)

	s.mu.Lock()
	defer s.mu.Unlock()

	*s.records = append(*s.records, record)

	return nil
}

func (s *LogHandlerSpy) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LogHandlerSpy{mu: s.mu, records: s.records, attrs: append(append([]slog.Attr(nil), s.attrs...), attrs...)}
}

func (s *LogHandlerSpy) WithGroup(string) slog.Handler {
	return s
}

// Records returns a copy of all captured records.
func (s *LogHandlerSpy) Records() []slog.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]slog.Record(nil), *s.records...)
}

// HasRecord reports whether msg was logged at level.
func (s *LogHandlerSpy) HasRecord(level slog.Level, msg string) bool {
	for _, record := range s.Records() {
		if record.Level == level && record.Message == msg {
			return true
		}
	}

	return false
}

// AttrOf returns the value of attribute key of the first record with msg.
func (s *LogHandlerSpy) AttrOf(msg, key string) (slog.Value, bool) {
	for _, record := range s.Records() {
		if record.Message != msg {
			continue
		}

		var (
			value slog.Value
			found bool
		)

		record.Attrs(func(attr slog.Attr) bool {
			if attr.Key == key {
				value, found = attr.Value, true
				return false
			}
			return true
		})

		if found {
			return value, true
		}
	}

	return slog.Value{}, false
}
