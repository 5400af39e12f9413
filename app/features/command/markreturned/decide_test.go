package markreturned_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/rishithapentyala/Library-Management-System/app/features/command/markreturned"
	"github.com/rishithapentyala/Library-Management-System/circulation"
	"github.com/rishithapentyala/Library-Management-System/testutil/fixtures"
)

func activeLoan() circulation.Loan {
	issuedAt := fixtures.FakeClock()

	return circulation.Loan{
		LoanID:    uuid.New(),
		RequestID: uuid.New(),
		UserID:    uuid.New(),
		BookID:    uuid.New(),
		BookTitle: "Clean Code",
		IssueDate: issuedAt,
		DueDate:   circulation.DueDateFor(issuedAt),
	}
}

func Test_Decide_Success_FinesWholeOverdueDays(t *testing.T) {
	testCases := []struct {
		description  string
		returnedAt   func(due time.Time) time.Time
		expectedFine int
	}{
		{description: "early", returnedAt: func(due time.Time) time.Time { return due.Add(-48 * time.Hour) }, expectedFine: 0},
		{description: "exactly at due date", returnedAt: func(due time.Time) time.Time { return due }, expectedFine: 0},
		{description: "less than a day late", returnedAt: func(due time.Time) time.Time { return due.Add(23 * time.Hour) }, expectedFine: 0},
		{description: "three days late", returnedAt: func(due time.Time) time.Time { return due.Add(72 * time.Hour) }, expectedFine: 3},
		{description: "three and a half days late", returnedAt: func(due time.Time) time.Time { return due.Add(84 * time.Hour) }, expectedFine: 3},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// arrange
			loan := activeLoan()
			returnedAt := tc.returnedAt(loan.DueDate)

			// act
			result := markreturned.Decide(
				markreturned.State{Loan: loan},
				markreturned.BuildCommand(loan.LoanID, returnedAt),
			)

			// assert
			assert.True(t, result.HasEffectToApply())
			assert.True(t, result.Effect.Returned)
			assert.Equal(t, returnedAt, result.Effect.ReturnedAt)
			assert.Equal(t, tc.expectedFine, result.Effect.Fine)
		})
	}
}

func Test_Decide_Error_AlreadyReturned(t *testing.T) {
	// arrange
	loan := activeLoan()
	loan.Returned = true

	// act
	result := markreturned.Decide(markreturned.State{Loan: loan}, markreturned.BuildCommand(loan.LoanID, fixtures.FakeClock()))

	// assert
	assert.ErrorIs(t, result.HasError(), circulation.ErrAlreadyReturned)
}

func Test_Decide_Error_NotFound(t *testing.T) {
	// act
	result := markreturned.Decide(markreturned.State{LoanNotFound: true}, markreturned.BuildCommand(uuid.New(), fixtures.FakeClock()))

	// assert
	assert.ErrorIs(t, result.HasError(), circulation.ErrNotFound)
}
