package observable_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishithapentyala/Library-Management-System/app/shared/shell"
	"github.com/rishithapentyala/Library-Management-System/app/shared/shell/observable"
	"github.com/rishithapentyala/Library-Management-System/testutil/observability/testdoubles"
)

type testQuery struct{}

func (testQuery) QueryType() string {
	return "TestQuery"
}

type stubQueryHandler struct {
	result []string
	err    error
}

func (h stubQueryHandler) Handle(context.Context, testQuery) ([]string, error) {
	return h.result, h.err
}

func Test_QueryWrapper_Handle_Success(t *testing.T) {
	// arrange
	metrics := testdoubles.NewMetricsCollectorSpy()
	tracing := testdoubles.NewTracingCollectorSpy()
	logger := testdoubles.NewContextualLoggerSpy()

	wrapper, err := observable.NewQueryWrapper[testQuery, []string](
		stubQueryHandler{result: []string{"a", "b"}},
		observable.WithQueryMetrics[testQuery, []string](metrics),
		observable.WithQueryTracing[testQuery, []string](tracing),
		observable.WithQueryContextualLogging[testQuery, []string](logger),
	)
	require.NoError(t, err)

	// act
	result, err := wrapper.Handle(context.Background(), testQuery{})

	// assert
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, result)

	labels := map[string]string{shell.LogAttrQueryType: "TestQuery", shell.LogAttrStatus: shell.StatusSuccess}
	assert.True(t, metrics.HasCounter(shell.QueryHandlerCallsMetric, labels))
	assert.True(t, metrics.HasDuration(shell.QueryHandlerDurationMetric, labels))
	assert.True(t, tracing.HasSpan(shell.SpanNameQueryHandle, shell.StatusSuccess))
	assert.True(t, logger.HasLog("info", shell.LogMsgQueryCompleted))
}

func Test_QueryWrapper_Handle_Errors(t *testing.T) {
	testCases := []struct {
		name           string
		err            error
		expectedStatus string
	}{
		{"canceled", context.Canceled, shell.StatusCanceled},
		{"timeout", context.DeadlineExceeded, shell.StatusTimeout},
		{"other", errors.New("boom"), shell.StatusError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			metrics := testdoubles.NewMetricsCollectorSpy()
			logger := testdoubles.NewContextualLoggerSpy()

			wrapper, err := observable.NewQueryWrapper[testQuery, []string](
				stubQueryHandler{err: tc.err},
				observable.WithQueryMetrics[testQuery, []string](metrics),
				observable.WithQueryContextualLogging[testQuery, []string](logger),
			)
			require.NoError(t, err)

			// act
			_, err = wrapper.Handle(context.Background(), testQuery{})

			// assert
			assert.ErrorIs(t, err, tc.err)
			assert.True(t, metrics.HasCounter(shell.QueryHandlerCallsMetric, map[string]string{shell.LogAttrStatus: tc.expectedStatus}))
			assert.True(t, logger.HasLog("error", shell.LogMsgQueryFailed))
		})
	}
}
