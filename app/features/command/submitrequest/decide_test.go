package submitrequest_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/rishithapentyala/Library-Management-System/app/features/command/submitrequest"
	"github.com/rishithapentyala/Library-Management-System/circulation"
	"github.com/rishithapentyala/Library-Management-System/testutil/fixtures"
)

func Test_Decide_Success_WhenCopyIsAvailable(t *testing.T) {
	// arrange
	command := submitrequest.BuildCommand(uuid.New(), uuid.New(), uuid.New(), "Clean Code", fixtures.FakeClock())
	s := submitrequest.State{AvailableCopies: 1, CatalogTitle: "Clean Code"}

	// act
	result := submitrequest.Decide(s, command)

	// assert
	assert.True(t, result.HasEffectToApply())
	assert.Equal(t, command.RequestID, result.Effect.RequestID)
	assert.Equal(t, command.UserID, result.Effect.UserID)
	assert.Equal(t, command.BookID, result.Effect.BookID)
	assert.Equal(t, "Clean Code", result.Effect.BookTitle)
	assert.False(t, result.Effect.Approved)
	assert.Equal(t, fixtures.FakeClock(), result.Effect.CreatedAt)
}

func Test_Decide_Success_UsesCatalogTitle_WhenCommandHasNone(t *testing.T) {
	// arrange
	command := submitrequest.BuildCommand(uuid.New(), uuid.New(), uuid.New(), "  ", fixtures.FakeClock())
	s := submitrequest.State{AvailableCopies: 2, CatalogTitle: "Refactoring"}

	// act
	result := submitrequest.Decide(s, command)

	// assert
	assert.Equal(t, "Refactoring", result.Effect.BookTitle)
}

func Test_Decide_Errors_InOrder(t *testing.T) {
	testCases := []struct {
		name          string
		state         submitrequest.State
		expectedError error
	}{
		{
			name:          "pending request wins over everything",
			state:         submitrequest.State{HasPendingRequest: true, HasActiveLoan: true, BookNotFound: true},
			expectedError: circulation.ErrDuplicateRequest,
		},
		{
			name:          "active loan wins over missing book",
			state:         submitrequest.State{HasActiveLoan: true, BookNotFound: true},
			expectedError: circulation.ErrAlreadyBorrowed,
		},
		{
			name:          "missing book",
			state:         submitrequest.State{BookNotFound: true},
			expectedError: circulation.ErrNotFound,
		},
		{
			name:          "no copy on the shelf",
			state:         submitrequest.State{AvailableCopies: 0},
			expectedError: circulation.ErrUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			command := submitrequest.BuildCommand(uuid.New(), uuid.New(), uuid.New(), "Clean Code", fixtures.FakeClock())

			// act
			result := submitrequest.Decide(tc.state, command)

			// assert
			assert.False(t, result.HasEffectToApply())
			assert.ErrorIs(t, result.HasError(), tc.expectedError)
		})
	}
}
