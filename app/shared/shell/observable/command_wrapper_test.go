package observable_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishithapentyala/Library-Management-System/app/shared/shell"
	"github.com/rishithapentyala/Library-Management-System/app/shared/shell/observable"
	"github.com/rishithapentyala/Library-Management-System/circulation"
	"github.com/rishithapentyala/Library-Management-System/testutil/observability/testdoubles"
)

type testCommand struct {
	Name string
}

func (testCommand) CommandType() string {
	return "TestCommand"
}

type stubCommandHandler struct {
	result shell.HandlerResult[string]
	err    error
	calls  []testCommand
}

func (h *stubCommandHandler) Handle(_ context.Context, command testCommand) (shell.HandlerResult[string], error) {
	h.calls = append(h.calls, command)
	return h.result, h.err
}

type spies struct {
	metrics *testdoubles.MetricsCollectorSpy
	tracing *testdoubles.TracingCollectorSpy
	logger  *testdoubles.ContextualLoggerSpy
}

func newCommandWrapper(t *testing.T, handler *stubCommandHandler) (*observable.CommandWrapper[testCommand, string], spies) {
	t.Helper()

	s := spies{
		metrics: testdoubles.NewMetricsCollectorSpy(),
		tracing: testdoubles.NewTracingCollectorSpy(),
		logger:  testdoubles.NewContextualLoggerSpy(),
	}

	wrapper, err := observable.NewCommandWrapper[testCommand, string](
		handler,
		observable.WithCommandMetrics[testCommand, string](s.metrics),
		observable.WithCommandTracing[testCommand, string](s.tracing),
		observable.WithCommandContextualLogging[testCommand, string](s.logger),
	)
	require.NoError(t, err)

	return wrapper, s
}

func Test_CommandWrapper_Handle_Success(t *testing.T) {
	// arrange
	handler := &stubCommandHandler{result: shell.NewSuccessResult("created", shell.RetryMetrics{Attempts: 1, LastErrorType: "none"})}
	wrapper, s := newCommandWrapper(t, handler)

	// act
	result, err := wrapper.Handle(context.Background(), testCommand{Name: "a"})

	// assert
	assert.NoError(t, err)
	assert.Equal(t, "created", result.Value)
	assert.Equal(t, []testCommand{{Name: "a"}}, handler.calls)

	labels := map[string]string{shell.LogAttrCommandType: "TestCommand", shell.LogAttrStatus: shell.StatusSuccess}
	assert.True(t, s.metrics.HasCounter(shell.CommandHandlerCallsMetric, labels))
	assert.True(t, s.metrics.HasDuration(shell.CommandHandlerDurationMetric, labels))
	assert.False(t, s.metrics.HasCounter(shell.CommandHandlerRetriesMetric, nil))
	assert.True(t, s.tracing.HasSpan(shell.SpanNameCommandHandle, shell.StatusSuccess))
	assert.True(t, s.logger.HasLog("debug", shell.LogMsgCommandStarted))
	assert.True(t, s.logger.HasLog("info", shell.LogMsgCommandCompleted))
}

func Test_CommandWrapper_Handle_Idempotent(t *testing.T) {
	// arrange
	handler := &stubCommandHandler{result: shell.NewIdempotentResult("existing", shell.RetryMetrics{Attempts: 1})}
	wrapper, s := newCommandWrapper(t, handler)

	// act
	result, err := wrapper.Handle(context.Background(), testCommand{})

	// assert
	assert.NoError(t, err)
	assert.True(t, result.Idempotent)
	assert.True(t, s.metrics.HasCounter(shell.CommandHandlerIdempotentMetric, map[string]string{shell.LogAttrStatus: shell.StatusIdempotent}))
	assert.True(t, s.tracing.HasSpan(shell.SpanNameCommandHandle, shell.StatusIdempotent))
}

func Test_CommandWrapper_Handle_Rejected(t *testing.T) {
	// arrange
	handler := &stubCommandHandler{err: circulation.ErrUnavailable}
	wrapper, s := newCommandWrapper(t, handler)

	// act
	_, err := wrapper.Handle(context.Background(), testCommand{})

	// assert
	assert.ErrorIs(t, err, circulation.ErrUnavailable)
	assert.True(t, s.metrics.HasCounter(shell.CommandHandlerRejectedMetric, map[string]string{shell.LogAttrStatus: shell.StatusRejected}))
	assert.True(t, s.tracing.HasSpan(shell.SpanNameCommandHandle, shell.StatusRejected))
	assert.True(t, s.logger.HasLog("info", shell.LogMsgCommandRejected))
	assert.Empty(t, s.logger.RecordsAt("error"))
}

func Test_CommandWrapper_Handle_Error_Classification(t *testing.T) {
	testCases := []struct {
		name           string
		err            error
		expectedStatus string
		expectedMetric string
	}{
		{"canceled", context.Canceled, shell.StatusCanceled, shell.CommandHandlerCanceledMetric},
		{"timeout", context.DeadlineExceeded, shell.StatusTimeout, shell.CommandHandlerTimeoutMetric},
		{"conflict", circulation.ErrConcurrencyConflict, shell.StatusConcurrencyConflict, shell.CommandHandlerConcurrencyConflictMetric},
		{"database", errors.Join(circulation.ErrQueryingFailed, errors.New("connection refused")), shell.StatusError, shell.CommandHandlerCallsMetric},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			wrapper, s := newCommandWrapper(t, &stubCommandHandler{err: tc.err})

			// act
			_, err := wrapper.Handle(context.Background(), testCommand{})

			// assert
			assert.ErrorIs(t, err, tc.err)
			assert.True(t, s.metrics.HasCounter(tc.expectedMetric, map[string]string{shell.LogAttrStatus: tc.expectedStatus}))
			assert.True(t, s.tracing.HasSpan(shell.SpanNameCommandHandle, tc.expectedStatus))
			assert.True(t, s.logger.HasLog("error", shell.LogMsgCommandFailed))
		})
	}
}

func Test_CommandWrapper_Handle_Records_Retries(t *testing.T) {
	// arrange
	handler := &stubCommandHandler{
		result: shell.NewErrorResult[string](shell.RetryMetrics{
			Attempts:         6,
			TotalDelay:       300 * time.Millisecond,
			LastErrorType:    "concurrency_conflict",
			RetriesExhausted: true,
		}),
		err: circulation.ErrConcurrencyConflict,
	}
	wrapper, s := newCommandWrapper(t, handler)

	// act
	_, err := wrapper.Handle(context.Background(), testCommand{})

	// assert
	assert.Error(t, err)
	assert.True(t, s.metrics.HasCounter(shell.CommandHandlerRetriesMetric, map[string]string{
		shell.LogAttrAttemptNumber: "5",
		shell.LogAttrErrorType:     "concurrency_conflict",
	}))
	assert.True(t, s.metrics.HasDuration(shell.CommandHandlerRetryDelayMetric, map[string]string{shell.LogAttrCommandType: "TestCommand"}))
	assert.True(t, s.metrics.HasCounter(shell.CommandHandlerMaxRetriesReachedMetric, nil))
}

func Test_CommandWrapper_Without_Observability(t *testing.T) {
	// arrange
	wrapper, err := observable.NewCommandWrapper[testCommand, string](&stubCommandHandler{err: errors.New("boom")})
	require.NoError(t, err)

	// act / assert
	assert.NotPanics(t, func() {
		_, _ = wrapper.Handle(context.Background(), testCommand{})
	})
}
