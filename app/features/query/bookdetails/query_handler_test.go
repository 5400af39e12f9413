package bookdetails_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishithapentyala/Library-Management-System/app/features/query/bookdetails"
	"github.com/rishithapentyala/Library-Management-System/circulation"
	"github.com/rishithapentyala/Library-Management-System/testutil/fixtures"
)

func Test_QueryHandler_Handle_ReturnsBook(t *testing.T) {
	// setup
	book := fixtures.Book("Clean Code", 3)
	engine := fixtures.NewEngine(t, []circulation.Book{book})

	// act
	result, err := bookdetails.NewQueryHandler(engine).Handle(context.Background(), bookdetails.BuildQuery(book.BookID))

	// assert
	require.NoError(t, err)
	assert.Equal(t, book.BookID, result.BookID)
	assert.Equal(t, "Robert C. Martin", result.Author)
	assert.Equal(t, 3, result.TotalCopies)
}

func Test_QueryHandler_Handle_Error_NotFound(t *testing.T) {
	// setup
	engine := fixtures.NewEngine(t, nil)

	// act
	_, err := bookdetails.NewQueryHandler(engine).Handle(context.Background(), bookdetails.BuildQuery(uuid.New()))

	// assert
	assert.ErrorIs(t, err, circulation.ErrNotFound)
}
