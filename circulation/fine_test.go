package circulation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rishithapentyala/Library-Management-System/circulation"
)

func Test_DueDateFor_Adds_LoanPeriod(t *testing.T) {
	issueDate := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	dueDate := circulation.DueDateFor(issueDate)

	assert.Equal(t, time.Date(2025, 3, 31, 10, 0, 0, 0, time.UTC), dueDate)
}

func Test_FineFor(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		description string
		dueDate     time.Time
		expected    int
	}{
		{description: "due exactly 5 days ago", dueDate: now.Add(-5 * 24 * time.Hour), expected: 5},
		{description: "due tomorrow", dueDate: now.Add(24 * time.Hour), expected: 0},
		{description: "due right now", dueDate: now, expected: 0},
		{description: "partial day overdue", dueDate: now.Add(-23 * time.Hour), expected: 0},
		{description: "overdue 3 days and some hours", dueDate: now.Add(-(3*24 + 7) * time.Hour), expected: 3},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, circulation.FineFor(tc.dueDate, now))
		})
	}
}

func Test_Loan_ProjectedFine_Does_Not_Touch_Returned_Loans(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	loan := circulation.Loan{
		DueDate:  now.Add(-10 * 24 * time.Hour),
		Fine:     2,
		Returned: true,
	}

	assert.Equal(t, 2, loan.ProjectedFine(now))
}

func Test_Loan_WithProjectedFine_Returns_Copy(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	loan := circulation.Loan{DueDate: now.Add(-5 * 24 * time.Hour)}

	projected := loan.WithProjectedFine(now)

	assert.Equal(t, 5, projected.Fine)
	assert.Equal(t, 0, loan.Fine, "the original loan must not be mutated")
	assert.True(t, loan.Overdue(now))
}
