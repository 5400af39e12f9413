package oteladapters_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/log/noop"

	"github.com/rishithapentyala/Library-Management-System/circulation/oteladapters"
)

func Test_SlogBridgeLogger_Writes_All_Levels(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(handler)
	ctx := context.Background()

	logger.DebugContext(ctx, "sql executed", "query", "SELECT 1")
	logger.InfoContext(ctx, "transaction committed", "duration_ms", 1.5)
	logger.WarnContext(ctx, "failed to close database rows")
	logger.ErrorContext(ctx, "failed to commit transaction", "error", "boom")

	output := buf.String()
	assert.Contains(t, output, `"level":"DEBUG"`)
	assert.Contains(t, output, `"level":"INFO"`)
	assert.Contains(t, output, `"level":"WARN"`)
	assert.Contains(t, output, `"level":"ERROR"`)
	assert.Contains(t, output, `"query":"SELECT 1"`)
	assert.Contains(t, output, `"duration_ms":1.5`)
	assert.Contains(t, output, `"error":"boom"`)
}

func Test_SlogBridgeLogger_Exposes_Slog(t *testing.T) {
	var buf bytes.Buffer
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(slog.NewTextHandler(&buf, nil))

	logger.Slog().Info("listening", "addr", ":8080")

	assert.Contains(t, buf.String(), "addr=:8080")
}

func Test_NewSlogBridgeLogger_Uses_Global_Provider(t *testing.T) {
	logger := oteladapters.NewSlogBridgeLogger("circulation")

	assert.NotNil(t, logger.Slog())
	assert.NotPanics(t, func() {
		logger.InfoContext(context.Background(), "no provider configured")
	})
}

func Test_OTelLogger_Handles_Arguments(t *testing.T) {
	logger := oteladapters.NewOTelLogger(noop.NewLoggerProvider().Logger("test"))
	ctx := context.Background()

	assert.NotPanics(t, func() {
		logger.DebugContext(ctx, "debug", "string", "value", "int", 1, "int64", int64(2))
		logger.InfoContext(ctx, "info", "float", 1.5, "bool", true, "other", []string{"a"})
		logger.WarnContext(ctx, "warn", "dangling")
		logger.ErrorContext(ctx, "error", 42, "non-string key is skipped")
	})
}
