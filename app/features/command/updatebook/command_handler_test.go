package updatebook_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishithapentyala/Library-Management-System/app/features/command/updatebook"
	"github.com/rishithapentyala/Library-Management-System/circulation"
	"github.com/rishithapentyala/Library-Management-System/testutil/fixtures"
)

func Test_CommandHandler_Handle_Success_StoresUpdatedBook(t *testing.T) {
	// setup
	ctx := context.Background()
	book := lentBook(3, 1)
	engine := fixtures.NewEngine(t, []circulation.Book{book})

	// act
	result, err := updatebook.NewCommandHandler(engine).Handle(ctx,
		updatebook.BuildCommand(book.BookID, "Clean Code", "Robert C. Martin", "2nd", "Craftsmanship", 4))

	// assert
	require.NoError(t, err)
	assert.False(t, result.Idempotent)

	stored, err := engine.Book(ctx, book.BookID)
	require.NoError(t, err)
	assert.Equal(t, "2nd", stored.Edition)
	assert.Equal(t, "Craftsmanship", stored.Subject)
	assert.Equal(t, 4, stored.TotalCopies)
	assert.Equal(t, 2, stored.AvailableCopies)
}

func Test_CommandHandler_Handle_Error_CopiesBelowBorrowed_LeavesBookUnchanged(t *testing.T) {
	// setup
	ctx := context.Background()
	book := lentBook(3, 0)
	engine := fixtures.NewEngine(t, []circulation.Book{book})

	// act
	_, err := updatebook.NewCommandHandler(engine).Handle(ctx,
		updatebook.BuildCommand(book.BookID, book.Title, book.Author, book.Edition, book.Subject, 2))

	// assert
	assert.ErrorIs(t, err, circulation.ErrCopiesBelowBorrowed)

	stored, err := engine.Book(ctx, book.BookID)
	require.NoError(t, err)
	assert.Equal(t, book, stored)
}

func Test_CommandHandler_Handle_Error_NotFound(t *testing.T) {
	// setup
	engine := fixtures.NewEngine(t, nil)

	// act
	_, err := updatebook.NewCommandHandler(engine).Handle(context.Background(),
		updatebook.BuildCommand(uuid.New(), "T", "A", "1st", "S", 1))

	// assert
	assert.ErrorIs(t, err, circulation.ErrNotFound)
}
