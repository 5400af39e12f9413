package observable

import (
	"context"
	"time"

	"github.com/rishithapentyala/Library-Management-System/app/shared/shell"
)

// CommandWrapper instruments any command handler with metrics, tracing and logging.
// Business rejections (circulation domain errors) are recorded as "rejected", not as errors.
type CommandWrapper[C shell.Command, V any] struct {
	coreHandler      shell.CommandHandler[C, V]
	commandType      string
	metricsCollector shell.MetricsCollector
	tracingCollector shell.TracingCollector
	contextualLogger shell.ContextualLogger
	logger           shell.Logger
}

// NewCommandWrapper creates an observable wrapper around the core command handler.
func NewCommandWrapper[C shell.Command, V any](
	coreHandler shell.CommandHandler[C, V],
	opts ...CommandOption[C, V],
) (*CommandWrapper[C, V], error) {
	var zeroCommand C

	wrapper := &CommandWrapper[C, V]{
		coreHandler: coreHandler,
		commandType: zeroCommand.CommandType(),
	}

	for _, opt := range opts {
		if err := opt(wrapper); err != nil {
			return nil, err
		}
	}

	return wrapper, nil
}

// Handle delegates to the core handler and translates its HandlerResult and error into telemetry.
func (w *CommandWrapper[C, V]) Handle(ctx context.Context, command C) (shell.HandlerResult[V], error) {
	commandStart := time.Now()
	ctx, span := shell.StartCommandSpan(ctx, w.tracingCollector, w.commandType)
	shell.LogCommandStart(ctx, w.logger, w.contextualLogger, w.commandType)

	result, err := w.coreHandler.Handle(ctx, command)
	duration := time.Since(commandStart)

	shell.RecordRetryMetrics(ctx, w.metricsCollector, w.commandType, result.Retries)

	if err != nil {
		w.recordCommandError(ctx, err, duration, span)
		return result, err
	}

	status := shell.StatusSuccess
	if result.Idempotent {
		status = shell.StatusIdempotent
	}

	shell.RecordCommandMetrics(ctx, w.metricsCollector, w.commandType, status, duration)
	shell.FinishSpan(w.tracingCollector, span, status, duration, nil)
	shell.LogCommandSuccess(ctx, w.logger, w.contextualLogger, w.commandType, status, duration)

	return result, nil
}

func (w *CommandWrapper[C, V]) recordCommandError(ctx context.Context, err error, duration time.Duration, span shell.SpanContext) {
	status := shell.ClassifyCommandError(err)

	shell.RecordCommandMetrics(ctx, w.metricsCollector, w.commandType, status, duration)
	shell.FinishSpan(w.tracingCollector, span, status, duration, err)

	if status == shell.StatusRejected {
		shell.LogCommandRejected(ctx, w.logger, w.contextualLogger, w.commandType, err, duration)
		return
	}

	shell.LogCommandError(ctx, w.logger, w.contextualLogger, w.commandType, err)
}

// CommandOption defines a functional option for configuring CommandWrapper.
type CommandOption[C shell.Command, V any] func(*CommandWrapper[C, V]) error

// WithCommandMetrics sets the metrics collector.
func WithCommandMetrics[C shell.Command, V any](collector shell.MetricsCollector) CommandOption[C, V] {
	return func(w *CommandWrapper[C, V]) error {
		w.metricsCollector = collector
		return nil
	}
}

// WithCommandTracing sets the tracing collector.
func WithCommandTracing[C shell.Command, V any](collector shell.TracingCollector) CommandOption[C, V] {
	return func(w *CommandWrapper[C, V]) error {
		w.tracingCollector = collector
		return nil
	}
}

// WithCommandContextualLogging sets the contextual logger, it takes precedence over WithCommandLogging.
func WithCommandContextualLogging[C shell.Command, V any](logger shell.ContextualLogger) CommandOption[C, V] {
	return func(w *CommandWrapper[C, V]) error {
		w.contextualLogger = logger
		return nil
	}
}

// WithCommandLogging sets the basic logger.
func WithCommandLogging[C shell.Command, V any](logger shell.Logger) CommandOption[C, V] {
	return func(w *CommandWrapper[C, V]) error {
		w.logger = logger
		return nil
	}
}
