package testdoubles

import (
	"context"
	"maps"
	"sync"

	"github.com/rishithapentyala/Library-Management-System/circulation"
)

// SpySpanContext is the span handed out by TracingCollectorSpy.
type SpySpanContext struct {
	mu         sync.Mutex
	name       string
	start      map[string]string
	attributes map[string]string
}

// SetStatus is a no-op, the spy records the status passed to FinishSpan.
func (c *SpySpanContext) SetStatus(string) {}

func (c *SpySpanContext) AddAttribute(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.attributes[key] = value
}

// TracingCollectorSpy captures started and finished spans.
type TracingCollectorSpy struct {
	mu    sync.Mutex
	spans []SpySpanRecord
}

// SpySpanRecord is a finished span.
type SpySpanRecord struct {
	Name            string
	Status          string
	StartAttributes map[string]string
	EndAttributes   map[string]string
	SpanAttributes  map[string]string
}

// NewTracingCollectorSpy creates an empty spy.
func NewTracingCollectorSpy() *TracingCollectorSpy {
	return &TracingCollectorSpy{}
}

func (s *TracingCollectorSpy) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, circulation.SpanContext) {
	return ctx, &SpySpanContext{name: name, start: maps.Clone(attrs), attributes: make(map[string]string)}
}

func (s *TracingCollectorSpy) FinishSpan(spanCtx circulation.SpanContext, status string, attrs map[string]string) {
	span, ok := spanCtx.(*SpySpanContext)
	if !ok {
		return
	}

	span.mu.Lock()
	record := SpySpanRecord{
		Name:            span.name,
		Status:          status,
		StartAttributes: span.start,
		EndAttributes:   maps.Clone(attrs),
		SpanAttributes:  maps.Clone(span.attributes),
	}
	span.mu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.spans = append(s.spans, record)
}

// SpanRecords returns a copy of all finished spans in finishing order.
func (s *TracingCollectorSpy) SpanRecords() []SpySpanRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpySpanRecord(nil), s.spans...)
}

// HasSpan reports whether a span with name finished with status.
func (s *TracingCollectorSpy) HasSpan(name, status string) bool {
	for _, span := range s.SpanRecords() {
		if span.Name == name && span.Status == status {
			return true
		}
	}

	return false
}

// Reset drops all captured spans.
func (s *TracingCollectorSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.spans = nil
}

var _ circulation.TracingCollector = (*TracingCollectorSpy)(nil)
