package trackedloans_test

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
	"github.com/rishithapentyala/Library-Management-System/app/features/query/trackedloans"
	"github.com/rishithapentyala/Library-Management-System/circulation"
	"github.com/rishithapentyala/Library-Management-System/testutil/fixtures"
)

func Test_QueryHandler_Handle_JoinsBorrowersAndProjectsFines(t *testing.T) {
	// setup
	ctx := context.Background()
	book := fixtures.Book("Clean Code", 2)
	ada := fixtures.User("Ada Lovelace", "ada@example.edu")
	alan := fixtures.User("Alan Turing", "alan@example.edu")
	engine := fixtures.NewEngine(t, []circulation.Book{book}, ada, alan)
	issuedAt := fixtures.FakeClock()

	loanFor := func(userID uuid.UUID) circulation.Loan {
		submitted, err := submitrequest.NewCommandHandler(engine).Handle(ctx,
			submitrequest.BuildCommand(uuid.New(), userID, book.BookID, "", issuedAt))
		require.NoError(t, err)
		approved, err := approverequest.NewCommandHandler(engine).Handle(ctx,
			approverequest.BuildCommand(submitted.Value.RequestID, uuid.New(), issuedAt))
		require.NoError(t, err)

		return approved.Value
	}

	// arrange
	adaLoan := loanFor(ada.UserID)
	alanLoan := loanFor(alan.UserID)
	_, err := markreturned.NewCommandHandler(engine).Handle(ctx,
		markreturned.BuildCommand(alanLoan.LoanID, alanLoan.DueDate.Add(24*time.Hour)))
	require.NoError(t, err)

	// act
	result, err := trackedloans.NewQueryHandler(engine).Handle(ctx,
		trackedloans.BuildQuery(adaLoan.DueDate.Add(4*24*time.Hour)))

	// assert
	require.NoError(t, err)
	require.Equal(t, 2, result.Count)
	assert.Equal(t, 1, result.OverdueCount)

	assert.Equal(t, adaLoan.LoanID, result.Loans[0].LoanID, "unreturned loans come first")
	assert.Equal(t, "Ada Lovelace", result.Loans[0].UserName)
	assert.Equal(t, "ada@example.edu", result.Loans[0].UserEmail)
	assert.Equal(t, 4, result.Loans[0].Fine)

	assert.Equal(t, alanLoan.LoanID, result.Loans[1].LoanID)
	assert.True(t, result.Loans[1].Returned)
	assert.Equal(t, 1, result.Loans[1].Fine)
}
