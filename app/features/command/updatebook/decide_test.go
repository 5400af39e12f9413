package updatebook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rishithapentyala/Library-Management-System/app/features/command/updatebook"
	"github.com/rishithapentyala/Library-Management-System/circulation"
	"github.com/rishithapentyala/Library-Management-System/testutil/fixtures"
)

func lentBook(total, available int) circulation.Book {
	book := fixtures.Book("Clean Code", total)
	book.AvailableCopies = available

	return book
}

func Test_Decide_AdjustsAvailableByCopyDelta(t *testing.T) {
	testCases := []struct {
		description       string
		total, available  int
		newCopies         int
		expectedAvailable int
		expectedErr       error
	}{
		{description: "more copies", total: 3, available: 1, newCopies: 5, expectedAvailable: 3},
		{description: "fewer copies, still enough", total: 3, available: 2, newCopies: 2, expectedAvailable: 1},
		{description: "down to the lent copies", total: 3, available: 1, newCopies: 2, expectedAvailable: 0},
		{description: "below the lent copies", total: 3, available: 1, newCopies: 1, expectedErr: circulation.ErrCopiesBelowBorrowed},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// arrange
			book := lentBook(tc.total, tc.available)
			command := updatebook.BuildCommand(book.BookID, book.Title, book.Author, book.Edition, book.Subject, tc.newCopies)

			// act
			result := updatebook.Decide(updatebook.State{Book: book}, command)

			// assert
			if tc.expectedErr != nil {
				assert.ErrorIs(t, result.HasError(), tc.expectedErr)
				return
			}

			assert.True(t, result.HasEffectToApply())
			assert.Equal(t, tc.newCopies, result.Effect.TotalCopies)
			assert.Equal(t, tc.expectedAvailable, result.Effect.AvailableCopies)
		})
	}
}

func Test_Decide_Idempotent_WhenNothingChanges(t *testing.T) {
	// arrange
	book := lentBook(3, 1)
	command := updatebook.BuildCommand(book.BookID, book.Title, book.Author, book.Edition, book.Subject, book.TotalCopies)

	// act
	result := updatebook.Decide(updatebook.State{Book: book}, command)

	// assert
	assert.True(t, result.IsIdempotent())
}

func Test_Decide_Error_InvalidBeforeNotFound(t *testing.T) {
	// arrange
	command := updatebook.BuildCommand(fixtures.Book("x", 1).BookID, "", "A", "1st", "S", 1)

	// act
	result := updatebook.Decide(updatebook.State{BookNotFound: true}, command)

	// assert
	assert.ErrorIs(t, result.HasError(), circulation.ErrInvalidBook)
}
