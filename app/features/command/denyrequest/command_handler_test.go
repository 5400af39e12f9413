package denyrequest_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishithapentyala/Library-Management-System/app/features/command/approverequest"
	"github.com/rishithapentyala/Library-Management-System/app/features/command/denyrequest"
	"github.com/rishithapentyala/Library-Management-System/app/features/command/submitrequest"
	"github.com/rishithapentyala/Library-Management-System/circulation"
	"github.com/rishithapentyala/Library-Management-System/testutil/fixtures"
)

func Test_CommandHandler_Handle_Success_DeletesPendingRequest(t *testing.T) {
	// setup
	ctx := context.Background()
	book := fixtures.Book("Clean Code", 1)
	engine := fixtures.NewEngine(t, []circulation.Book{book})
	userID := uuid.New()

	// arrange
	submitted, err := submitrequest.NewCommandHandler(engine).Handle(ctx,
		submitrequest.BuildCommand(uuid.New(), userID, book.BookID, "", fixtures.FakeClock()))
	require.NoError(t, err)

	// act
	result, err := denyrequest.NewCommandHandler(engine).Handle(ctx,
		denyrequest.BuildCommand(submitted.Value.RequestID, fixtures.FakeClock()))

	// assert
	require.NoError(t, err)
	assert.Equal(t, userID, result.Value.UserID)

	_, found, err := engine.LatestRequest(ctx, userID, book.BookID)
	require.NoError(t, err)
	assert.False(t, found)

	stored, err := engine.Book(ctx, book.BookID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.AvailableCopies)

	// the user may ask again
	_, err = submitrequest.NewCommandHandler(engine).Handle(ctx,
		submitrequest.BuildCommand(uuid.New(), userID, book.BookID, "", fixtures.FakeClock()))
	assert.NoError(t, err)
}

func Test_CommandHandler_Handle_Error_NotFound(t *testing.T) {
	// setup
	engine := fixtures.NewEngine(t, nil)

	// act
	_, err := denyrequest.NewCommandHandler(engine).Handle(context.Background(),
		denyrequest.BuildCommand(uuid.New(), fixtures.FakeClock()))

	// assert
	assert.ErrorIs(t, err, circulation.ErrNotFound)
}

func Test_CommandHandler_Handle_Error_AlreadyApproved(t *testing.T) {
	// setup
	ctx := context.Background()
	book := fixtures.Book("Clean Code", 1)
	engine := fixtures.NewEngine(t, []circulation.Book{book})

	// arrange
	submitted, err := submitrequest.NewCommandHandler(engine).Handle(ctx,
		submitrequest.BuildCommand(uuid.New(), uuid.New(), book.BookID, "", fixtures.FakeClock()))
	require.NoError(t, err)
	_, err = approverequest.NewCommandHandler(engine).Handle(ctx,
		approverequest.BuildCommand(submitted.Value.RequestID, uuid.New(), fixtures.FakeClock()))
	require.NoError(t, err)

	// act
	_, err = denyrequest.NewCommandHandler(engine).Handle(ctx,
		denyrequest.BuildCommand(submitted.Value.RequestID, fixtures.FakeClock()))

	// assert
	assert.ErrorIs(t, err, circulation.ErrRequestAlreadyApproved)

	latest, found, err := engine.LatestRequest(ctx, submitted.Value.UserID, book.BookID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, latest.Approved)
}
