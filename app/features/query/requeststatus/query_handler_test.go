package requeststatus_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishithapentyala/Library-Management-System/app/features/command/approverequest"
	"github.com/rishithapentyala/Library-Management-System/app/features/command/submitrequest"
	"github.com/rishithapentyala/Library-Management-System/app/features/query/requeststatus"
	"github.com/rishithapentyala/Library-Management-System/circulation"
	"github.com/rishithapentyala/Library-Management-System/testutil/fixtures"
)

func Test_QueryHandler_Handle_FollowsTheRequest(t *testing.T) {
	// setup
	ctx := context.Background()
	book := fixtures.Book("Clean Code", 1)
	engine := fixtures.NewEngine(t, []circulation.Book{book})
	userID := uuid.New()
	handler := requeststatus.NewQueryHandler(engine)
	query := requeststatus.BuildQuery(userID, book.BookID)

	// act & assert: nothing requested yet
	status, err := handler.Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, requeststatus.StatusNone, status.Status)
	assert.Nil(t, status.RequestID)

	// act & assert: pending
	submitted, err := submitrequest.NewCommandHandler(engine).Handle(ctx,
		submitrequest.BuildCommand(uuid.New(), userID, book.BookID, "", fixtures.FakeClock()))
	require.NoError(t, err)

	status, err = handler.Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, requeststatus.StatusPending, status.Status)
	require.NotNil(t, status.RequestID)
	assert.Equal(t, submitted.Value.RequestID, *status.RequestID)
	assert.Equal(t, "Clean Code", status.BookTitle)

	// act & assert: approved
	_, err = approverequest.NewCommandHandler(engine).Handle(ctx,
		approverequest.BuildCommand(submitted.Value.RequestID, uuid.New(), fixtures.FakeClock()))
	require.NoError(t, err)

	status, err = handler.Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, requeststatus.StatusApproved, status.Status)
}
