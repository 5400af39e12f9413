package addbook_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishithapentyala/Library-Management-System/app/features/command/addbook"
	"github.com/rishithapentyala/Library-Management-System/circulation"
	"github.com/rishithapentyala/Library-Management-System/testutil/fixtures"
)

func Test_CommandHandler_Handle_Success_AllCopiesAvailable(t *testing.T) {
	// setup
	ctx := context.Background()
	engine := fixtures.NewEngine(t, nil)
	command := addbook.BuildCommand(uuid.New(), " Refactoring ", "Martin Fowler", "2nd", "Software Engineering", 4)

	// act
	result, err := addbook.NewCommandHandler(engine).Handle(ctx, command)

	// assert
	require.NoError(t, err)
	assert.False(t, result.Idempotent)

	stored, err := engine.Book(ctx, command.BookID)
	require.NoError(t, err)
	assert.Equal(t, "Refactoring", stored.Title)
	assert.Equal(t, 4, stored.TotalCopies)
	assert.Equal(t, 4, stored.AvailableCopies)
}

func Test_CommandHandler_Handle_Idempotent_SameBookID(t *testing.T) {
	// setup
	ctx := context.Background()
	engine := fixtures.NewEngine(t, nil)
	handler := addbook.NewCommandHandler(engine)
	command := addbook.BuildCommand(uuid.New(), "Refactoring", "Martin Fowler", "2nd", "Software Engineering", 4)

	// arrange
	_, err := handler.Handle(ctx, command)
	require.NoError(t, err)

	// act
	result, err := handler.Handle(ctx, command)

	// assert
	require.NoError(t, err)
	assert.True(t, result.Idempotent)
	assert.Equal(t, command.BookID, result.Value.BookID)

	books, err := engine.Books(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 1)
}

func Test_CommandHandler_Handle_Error_InvalidBook(t *testing.T) {
	testCases := []struct {
		description string
		command     addbook.Command
	}{
		{description: "empty title", command: addbook.BuildCommand(uuid.New(), "  ", "A", "1st", "S", 1)},
		{description: "empty author", command: addbook.BuildCommand(uuid.New(), "T", "", "1st", "S", 1)},
		{description: "empty edition", command: addbook.BuildCommand(uuid.New(), "T", "A", "", "S", 1)},
		{description: "empty subject", command: addbook.BuildCommand(uuid.New(), "T", "A", "1st", "", 1)},
		{description: "no copies", command: addbook.BuildCommand(uuid.New(), "T", "A", "1st", "S", 0)},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// setup
			engine := fixtures.NewEngine(t, nil)

			// act
			_, err := addbook.NewCommandHandler(engine).Handle(context.Background(), tc.command)

			// assert
			assert.ErrorIs(t, err, circulation.ErrInvalidBook)
		})
	}
}
