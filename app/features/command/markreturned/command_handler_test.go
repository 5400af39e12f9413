package markreturned_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishithapentyala/Library-Management-System/app/features/command/approverequest"
	"github.com/rishithapentyala/Library-Management-System/app/features/command/markreturned"
	"github.com/rishithapentyala/Library-Management-System/app/features/command/submitrequest"
	"github.com/rishithapentyala/Library-Management-System/circulation"
	"github.com/rishithapentyala/Library-Management-System/testutil/fixtures"
)

const day = 24 * time.Hour

func borrow(t *testing.T, engine approverequest.Engine, userID, bookID uuid.UUID, at time.Time) circulation.Loan {
	t.Helper()
	ctx := context.Background()

	submitted, err := submitrequest.NewCommandHandler(engine).Handle(ctx,
		submitrequest.BuildCommand(uuid.New(), userID, bookID, "", at))
	require.NoError(t, err)

	approved, err := approverequest.NewCommandHandler(engine).Handle(ctx,
		approverequest.BuildCommand(submitted.Value.RequestID, uuid.New(), at))
	require.NoError(t, err)

	return approved.Value
}

func Test_CommandHandler_Handle_Success_RestoresAvailability(t *testing.T) {
	// setup
	ctx := context.Background()
	book := fixtures.Book("Clean Code", 2)
	engine := fixtures.NewEngine(t, []circulation.Book{book})
	userID := uuid.New()

	// arrange
	loan := borrow(t, engine, userID, book.BookID, fixtures.FakeClock())

	// act
	result, err := markreturned.NewCommandHandler(engine).Handle(ctx,
		markreturned.BuildCommand(loan.LoanID, fixtures.FakeClock().Add(10*day)))

	// assert
	require.NoError(t, err)
	assert.True(t, result.Value.Returned)
	assert.Zero(t, result.Value.Fine)

	stored, err := engine.Book(ctx, book.BookID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.AvailableCopies)

	loans, err := engine.LoansByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, loans, 1)
	assert.True(t, loans[0].Returned)
}

func Test_CommandHandler_Handle_Error_DoubleReturn(t *testing.T) {
	// setup
	ctx := context.Background()
	book := fixtures.Book("Clean Code", 1)
	engine := fixtures.NewEngine(t, []circulation.Book{book})
	handler := markreturned.NewCommandHandler(engine)

	// arrange
	loan := borrow(t, engine, uuid.New(), book.BookID, fixtures.FakeClock())
	_, err := handler.Handle(ctx, markreturned.BuildCommand(loan.LoanID, fixtures.FakeClock().Add(day)))
	require.NoError(t, err)

	// act
	_, err = handler.Handle(ctx, markreturned.BuildCommand(loan.LoanID, fixtures.FakeClock().Add(2*day)))

	// assert
	assert.ErrorIs(t, err, circulation.ErrAlreadyReturned)

	stored, err := engine.Book(ctx, book.BookID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.AvailableCopies, "the copy must be put back only once")
}

func Test_CommandHandler_Handle_Error_NotFound(t *testing.T) {
	// setup
	engine := fixtures.NewEngine(t, nil)

	// act
	_, err := markreturned.NewCommandHandler(engine).Handle(context.Background(),
		markreturned.BuildCommand(uuid.New(), fixtures.FakeClock()))

	// assert
	assert.ErrorIs(t, err, circulation.ErrNotFound)
}

// The single copy scenario: A borrows, B's competing request cannot be approved, A returns late.
func Test_Lifecycle_SingleCopy_ContentionAndLateReturn(t *testing.T) {
	// setup
	ctx := context.Background()
	book := fixtures.Book("Clean Code", 1)
	engine := fixtures.NewEngine(t, []circulation.Book{book})
	userA, userB := uuid.New(), uuid.New()
	issuedAt := fixtures.FakeClock()

	available := func() int {
		stored, err := engine.Book(ctx, book.BookID)
		require.NoError(t, err)

		return stored.AvailableCopies
	}

	// A requests, nothing is reserved yet
	requestA, err := submitrequest.NewCommandHandler(engine).Handle(ctx,
		submitrequest.BuildCommand(uuid.New(), userA, book.BookID, "", issuedAt))
	require.NoError(t, err)
	assert.Equal(t, 1, available())

	// B requests while the copy is still on the shelf
	requestB, err := submitrequest.NewCommandHandler(engine).Handle(ctx,
		submitrequest.BuildCommand(uuid.New(), userB, book.BookID, "", issuedAt))
	require.NoError(t, err)
	assert.Equal(t, 1, available())

	// A is approved
	loanA, err := approverequest.NewCommandHandler(engine).Handle(ctx,
		approverequest.BuildCommand(requestA.Value.RequestID, uuid.New(), issuedAt))
	require.NoError(t, err)
	assert.Equal(t, 0, available())
	assert.Equal(t, issuedAt.Add(30*day), loanA.Value.DueDate)

	// B cannot be approved
	_, err = approverequest.NewCommandHandler(engine).Handle(ctx,
		approverequest.BuildCommand(requestB.Value.RequestID, uuid.New(), issuedAt))
	assert.ErrorIs(t, err, circulation.ErrUnavailable)
	assert.Equal(t, 0, available())

	// A returns 3 days late
	returned, err := markreturned.NewCommandHandler(engine).Handle(ctx,
		markreturned.BuildCommand(loanA.Value.LoanID, loanA.Value.DueDate.Add(3*day)))
	require.NoError(t, err)
	assert.Equal(t, 3, returned.Value.Fine)
	assert.Equal(t, 1, available())

	// and now B can be approved
	_, err = approverequest.NewCommandHandler(engine).Handle(ctx,
		approverequest.BuildCommand(requestB.Value.RequestID, uuid.New(), returned.Value.ReturnedAt))
	assert.NoError(t, err)
	assert.Equal(t, 0, available())
}
