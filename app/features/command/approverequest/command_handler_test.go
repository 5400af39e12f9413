package approverequest_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishithapentyala/Library-Management-System/app/features/command/approverequest"
	"github.com/rishithapentyala/Library-Management-System/app/features/command/submitrequest"
	"github.com/rishithapentyala/Library-Management-System/circulation"
	"github.com/rishithapentyala/Library-Management-System/circulation/memengine"
	"github.com/rishithapentyala/Library-Management-System/testutil/fixtures"
)

func submit(ctx context.Context, t *testing.T, engine *memengine.Engine, userID, bookID uuid.UUID) circulation.BorrowRequest {
	t.Helper()

	result, err := submitrequest.NewCommandHandler(engine).Handle(
		ctx,
		submitrequest.BuildCommand(uuid.New(), userID, bookID, "", fixtures.FakeClock()),
	)
	require.NoError(t, err)

	return result.Value
}

func Test_CommandHandler_Handle_Success(t *testing.T) {
	// setup
	ctx := context.Background()
	book := fixtures.Book("Clean Code", 2)
	engine := fixtures.NewEngine(t, []circulation.Book{book})
	handler := approverequest.NewCommandHandler(engine)

	// arrange
	request := submit(ctx, t, engine, uuid.New(), book.BookID)
	approvedAt := fixtures.FakeClock().Add(time.Hour)

	// act
	result, err := handler.Handle(ctx, approverequest.BuildCommand(request.RequestID, uuid.New(), approvedAt))

	// assert
	require.NoError(t, err)
	assert.False(t, result.Idempotent)
	assert.Equal(t, approvedAt.Add(30*24*time.Hour), result.Value.DueDate)

	stored, err := engine.Book(ctx, book.BookID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.AvailableCopies)

	latest, _, err := engine.LatestRequest(ctx, request.UserID, book.BookID)
	require.NoError(t, err)
	assert.True(t, latest.Approved)

	loans, err := engine.LoansByUser(ctx, request.UserID)
	require.NoError(t, err)
	assert.Equal(t, []circulation.Loan{result.Value}, loans)
}

func Test_CommandHandler_Handle_Idempotent_ReturnsFirstLoan(t *testing.T) {
	// setup
	ctx := context.Background()
	book := fixtures.Book("Clean Code", 2)
	engine := fixtures.NewEngine(t, []circulation.Book{book})
	handler := approverequest.NewCommandHandler(engine)

	// arrange
	request := submit(ctx, t, engine, uuid.New(), book.BookID)
	first, err := handler.Handle(ctx, approverequest.BuildCommand(request.RequestID, uuid.New(), fixtures.FakeClock()))
	require.NoError(t, err)

	// act
	second, err := handler.Handle(ctx, approverequest.BuildCommand(request.RequestID, uuid.New(), fixtures.FakeClock().Add(time.Hour)))

	// assert
	require.NoError(t, err)
	assert.True(t, second.Idempotent)
	assert.Equal(t, first.Value, second.Value)

	stored, err := engine.Book(ctx, book.BookID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.AvailableCopies, "second approval must not decrement again")
}

func Test_CommandHandler_Handle_Error_Unavailable_ChangesNothing(t *testing.T) {
	// setup
	ctx := context.Background()
	book := fixtures.Book("Clean Code", 1)
	engine := fixtures.NewEngine(t, []circulation.Book{book})
	handler := approverequest.NewCommandHandler(engine)

	// arrange
	requestA := submit(ctx, t, engine, uuid.New(), book.BookID)
	requestB := submit(ctx, t, engine, uuid.New(), book.BookID)
	_, err := handler.Handle(ctx, approverequest.BuildCommand(requestA.RequestID, uuid.New(), fixtures.FakeClock()))
	require.NoError(t, err)

	// act
	_, err = handler.Handle(ctx, approverequest.BuildCommand(requestB.RequestID, uuid.New(), fixtures.FakeClock()))

	// assert
	assert.ErrorIs(t, err, circulation.ErrUnavailable)

	stored, err := engine.Book(ctx, book.BookID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.AvailableCopies)

	latest, _, err := engine.LatestRequest(ctx, requestB.UserID, book.BookID)
	require.NoError(t, err)
	assert.False(t, latest.Approved, "request B stays pending")

	loans, err := engine.LoansByUser(ctx, requestB.UserID)
	require.NoError(t, err)
	assert.Empty(t, loans)
}

func Test_CommandHandler_Handle_Error_RequestNotFound(t *testing.T) {
	// setup
	ctx := context.Background()
	engine := fixtures.NewEngine(t, nil)
	handler := approverequest.NewCommandHandler(engine)

	// act
	_, err := handler.Handle(ctx, approverequest.BuildCommand(uuid.New(), uuid.New(), fixtures.FakeClock()))

	// assert
	assert.ErrorIs(t, err, circulation.ErrNotFound)
}

func Test_CommandHandler_Handle_ConcurrentApprovals_NeverOverDecrement(t *testing.T) {
	// setup
	ctx := context.Background()
	book := fixtures.Book("Clean Code", 3)
	engine := fixtures.NewEngine(t, []circulation.Book{book})
	handler := approverequest.NewCommandHandler(engine)

	// arrange
	requests := make([]circulation.BorrowRequest, 10)
	for i := range requests {
		requests[i] = submit(ctx, t, engine, uuid.New(), book.BookID)
	}

	// act
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		approved   int
		rejected   int
		unexpected []error
	)

	for _, request := range requests {
		wg.Add(1)
		go func(requestID uuid.UUID) {
			defer wg.Done()

			_, err := handler.Handle(ctx, approverequest.BuildCommand(requestID, uuid.New(), fixtures.FakeClock()))

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				approved++
			case errors.Is(err, circulation.ErrUnavailable):
				rejected++
			default:
				unexpected = append(unexpected, err)
			}
		}(request.RequestID)
	}
	wg.Wait()

	// assert
	assert.Empty(t, unexpected)
	assert.Equal(t, 3, approved)
	assert.Equal(t, 7, rejected)

	stored, err := engine.Book(ctx, book.BookID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.AvailableCopies)
}
