package borrowedbooks_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishithapentyala/Library-Management-System/app/features/command/approverequest"
	"github.com/rishithapentyala/Library-Management-System/app/features/command/submitrequest"
	"github.com/rishithapentyala/Library-Management-System/app/features/query/borrowedbooks"
	"github.com/rishithapentyala/Library-Management-System/circulation"
	"github.com/rishithapentyala/Library-Management-System/testutil/fixtures"
)

func Test_QueryHandler_Handle_ProjectsFineWithoutWriting(t *testing.T) {
	// setup
	ctx := context.Background()
	book := fixtures.Book("Clean Code", 1)
	engine := fixtures.NewEngine(t, []circulation.Book{book})
	userID := uuid.New()

	// arrange
	submitted, err := submitrequest.NewCommandHandler(engine).Handle(ctx,
		submitrequest.BuildCommand(uuid.New(), userID, book.BookID, "", fixtures.FakeClock()))
	require.NoError(t, err)
	approved, err := approverequest.NewCommandHandler(engine).Handle(ctx,
		approverequest.BuildCommand(submitted.Value.RequestID, uuid.New(), fixtures.FakeClock()))
	require.NoError(t, err)

	// act
	result, err := borrowedbooks.NewQueryHandler(engine).Handle(ctx,
		borrowedbooks.BuildQuery(userID, approved.Value.DueDate.Add(5*day)))

	// assert
	require.NoError(t, err)
	require.Len(t, result.Loans, 1)
	assert.Equal(t, 5, result.Loans[0].Fine)

	stored, err := engine.LoansByUser(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, stored[0].Fine)
}

func Test_QueryHandler_Handle_NoLoans(t *testing.T) {
	// setup
	engine := fixtures.NewEngine(t, nil)

	// act
	result, err := borrowedbooks.NewQueryHandler(engine).Handle(context.Background(),
		borrowedbooks.BuildQuery(uuid.New(), fixtures.FakeClock()))

	// assert
	require.NoError(t, err)
	assert.Empty(t, result.Loans)
	assert.Zero(t, result.TotalFine)
}
