package sqlengine

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rishithapentyala/Library-Management-System/circulation"
)

const (
	logMsgBeginTxFailed       = "failed to begin transaction"
	logMsgCommitFailed        = "failed to commit transaction"
	logMsgRollbackFailed      = "failed to roll back transaction"
	logMsgDBQueryFailed       = "database query execution failed"
	logMsgDBExecFailed        = "database statement execution failed"
	logMsgRowsAffectedFailed  = "failed to get rows affected count"
	logMsgCloseRowsFailed     = "failed to close database rows"
	logMsgScanRowFailed       = "failed to scan database row"
	logMsgTxCommitted         = "transaction committed"
	logMsgConcurrencyConflict = "concurrency conflict detected"
	logMsgMigrationApplied    = "migration applied"
	logMsgCatalogSeeded       = "catalog seeded"
	logMsgSQLExecuted         = "executed sql for: "
	logMsgOperation           = "circulation operation: "
	logAttrError              = "error"
	logAttrQuery              = "query"
	logAttrDurationMS         = "duration_ms"
	logAttrFilename           = "filename"
	logAttrBookCount          = "book_count"
	logAttrUserCount          = "user_count"

	metricTxDuration           = "circulation_tx_duration_seconds"
	metricReadDuration         = "circulation_read_duration_seconds"
	metricConcurrencyConflicts = "circulation_concurrency_conflicts_total"
	metricDatabaseErrors       = "circulation_database_errors_total"

	spanNameTx   = "circulation.tx"
	spanNameRead = "circulation.read"

	spanAttrOperation  = "operation"
	spanAttrErrorType  = "error_type"
	spanAttrDurationMS = "duration_ms"
	labelStatus        = "status"

	operationTx = "tx"

	statusSuccess  = "success"
	statusRejected = "rejected"
	statusError    = "error"

	errorTypeConcurrencyConflict = "concurrency_conflict"
	errorTypeRejected            = "rejected"
	errorTypeCanceled            = "canceled"
	errorTypeDatabase            = "database_error"
)

// observe records the duration metric and finishes the span of a transaction or read.
// Domain rejections are reported with status "rejected" and do not count as database errors.
func (e *Engine) observe(
	ctx context.Context,
	span circulation.SpanContext,
	operation string,
	metric string,
	duration time.Duration,
	err error,
) {

	status := statusSuccess
	attrs := map[string]string{
		spanAttrDurationMS: fmt.Sprintf("%.2f", toMilliseconds(duration)),
	}

	if err != nil {
		kind := errorType(err)
		attrs[spanAttrErrorType] = kind

		switch kind {
		case errorTypeRejected:
			status = statusRejected
		case errorTypeConcurrencyConflict:
			status = statusError
			e.logOperation(ctx, logMsgConcurrencyConflict, spanAttrOperation, operation)
			e.incrementCounter(ctx, metricConcurrencyConflicts, map[string]string{spanAttrOperation: operation})
		default:
			status = statusError
			e.incrementCounter(ctx, metricDatabaseErrors, map[string]string{
				spanAttrOperation: operation,
				spanAttrErrorType: kind,
			})
		}
	}

	e.recordDuration(ctx, metric, duration, map[string]string{
		spanAttrOperation: operation,
		labelStatus:       status,
	})

	if e.tracingCollector != nil && span != nil {
		e.tracingCollector.FinishSpan(span, status, attrs)
	}
}

// startSpan starts a tracing span if the tracing collector is configured.
func (e *Engine) startSpan(ctx context.Context, name, operation string) (context.Context, circulation.SpanContext) {
	if e.tracingCollector == nil {
		return ctx, nil
	}

	return e.tracingCollector.StartSpan(ctx, name, map[string]string{spanAttrOperation: operation})
}

func (e *Engine) recordDuration(ctx context.Context, metric string, duration time.Duration, labels map[string]string) {
	if e.metricsCollector == nil {
		return
	}

	if contextual, ok := e.metricsCollector.(circulation.ContextualMetricsCollector); ok {
		contextual.RecordDurationContext(ctx, metric, duration, labels)
		return
	}

	e.metricsCollector.RecordDuration(metric, duration, labels)
}

func (e *Engine) incrementCounter(ctx context.Context, metric string, labels map[string]string) {
	if e.metricsCollector == nil {
		return
	}

	if contextual, ok := e.metricsCollector.(circulation.ContextualMetricsCollector); ok {
		contextual.IncrementCounterContext(ctx, metric, labels)
		return
	}

	e.metricsCollector.IncrementCounter(metric, labels)
}

// logSQL logs SQL statements with execution time at debug level.
func (e *Engine) logSQL(ctx context.Context, sqlQuery, action string, duration time.Duration) {
	args := []any{logAttrDurationMS, toMilliseconds(duration), logAttrQuery, sqlQuery}

	switch {
	case e.contextualLogger != nil:
		e.contextualLogger.DebugContext(ctx, logMsgSQLExecuted+action, args...)
	case e.logger != nil:
		e.logger.Debug(logMsgSQLExecuted+action, args...)
	}
}

// logOperation logs operational information at info level.
func (e *Engine) logOperation(ctx context.Context, action string, args ...any) {
	switch {
	case e.contextualLogger != nil:
		e.contextualLogger.InfoContext(ctx, logMsgOperation+action, args...)
	case e.logger != nil:
		e.logger.Info(logMsgOperation+action, args...)
	}
}

func (e *Engine) logWarn(ctx context.Context, message string, err error) {
	switch {
	case e.contextualLogger != nil:
		e.contextualLogger.WarnContext(ctx, message, logAttrError, err.Error())
	case e.logger != nil:
		e.logger.Warn(message, logAttrError, err.Error())
	}
}

func (e *Engine) logError(ctx context.Context, message string, err error, args ...any) {
	allArgs := []any{logAttrError, err.Error()}
	allArgs = append(allArgs, args...)

	switch {
	case e.contextualLogger != nil:
		e.contextualLogger.ErrorContext(ctx, message, allArgs...)
	case e.logger != nil:
		e.logger.Error(message, allArgs...)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
