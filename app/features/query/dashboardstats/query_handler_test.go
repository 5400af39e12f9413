package dashboardstats_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishithapentyala/Library-Management-System/app/features/command/approverequest"
	"github.com/rishithapentyala/Library-Management-System/app/features/command/submitrequest"
	"github.com/rishithapentyala/Library-Management-System/app/features/query/dashboardstats"
	"github.com/rishithapentyala/Library-Management-System/circulation"
	"github.com/rishithapentyala/Library-Management-System/testutil/fixtures"
)

func Test_QueryHandler_Handle_CountsAndOutstandingFines(t *testing.T) {
	// setup
	ctx := context.Background()
	cleanCode := fixtures.Book("Clean Code", 2)
	refactoring := fixtures.Book("Refactoring", 3)
	ada := fixtures.User("Ada Lovelace", "ada@example.edu")
	engine := fixtures.NewEngine(t, []circulation.Book{cleanCode, refactoring}, ada)
	issuedAt := fixtures.FakeClock()

	// arrange
	submitted, err := submitrequest.NewCommandHandler(engine).Handle(ctx,
		submitrequest.BuildCommand(uuid.New(), ada.UserID, cleanCode.BookID, "", issuedAt))
	require.NoError(t, err)
	approved, err := approverequest.NewCommandHandler(engine).Handle(ctx,
		approverequest.BuildCommand(submitted.Value.RequestID, uuid.New(), issuedAt))
	require.NoError(t, err)
	_, err = submitrequest.NewCommandHandler(engine).Handle(ctx,
		submitrequest.BuildCommand(uuid.New(), ada.UserID, refactoring.BookID, "", issuedAt))
	require.NoError(t, err)

	// act
	stats, err := dashboardstats.NewQueryHandler(engine).Handle(ctx,
		dashboardstats.BuildQuery(approved.Value.DueDate.Add(6*24*time.Hour)))

	// assert
	require.NoError(t, err)
	assert.Equal(t, dashboardstats.DashboardStats{
		TotalCopies:      5,
		AvailableCopies:  4,
		Users:            1,
		PendingRequests:  1,
		ActiveLoans:      1,
		OverdueLoans:     1,
		OutstandingFines: 6,
	}, stats)
}
