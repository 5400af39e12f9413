package memengine_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishithapentyala/Library-Management-System/circulation"
	"github.com/rishithapentyala/Library-Management-System/circulation/memengine"
)

func Test_Engine_WithinTx_Commits_On_Success(t *testing.T) {
	// setup
	ctx := context.Background()
	book := aBook(2)
	engine, err := memengine.New(memengine.WithBooks(book))
	require.NoError(t, err)

	// act
	err = engine.WithinTx(ctx, func(ctx context.Context, tx circulation.Tx) error {
		return tx.AdjustAvailableCopies(ctx, book.BookID, -1)
	})

	// assert
	require.NoError(t, err)
	stored, err := engine.Book(ctx, book.BookID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.AvailableCopies)
}

func Test_Engine_WithinTx_Rolls_Back_On_Error(t *testing.T) {
	// setup
	ctx := context.Background()
	book := aBook(2)
	engine, err := memengine.New(memengine.WithBooks(book))
	require.NoError(t, err)
	failure := errors.New("boom")

	// act
	err = engine.WithinTx(ctx, func(ctx context.Context, tx circulation.Tx) error {
		require.NoError(t, tx.AdjustAvailableCopies(ctx, book.BookID, -1))
		require.NoError(t, tx.InsertRequest(ctx, circulation.BorrowRequest{
			RequestID: uuid.New(),
			UserID:    uuid.New(),
			BookID:    book.BookID,
		}))

		return failure
	})

	// assert
	assert.ErrorIs(t, err, failure)
	stored, err := engine.Book(ctx, book.BookID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.AvailableCopies)
	requests, err := engine.TrackedRequests(ctx)
	require.NoError(t, err)
	assert.Empty(t, requests)
}

func Test_Engine_AdjustAvailableCopies_Keeps_Bounds(t *testing.T) {
	// setup
	ctx := context.Background()
	book := aBook(1)
	engine, err := memengine.New(memengine.WithBooks(book))
	require.NoError(t, err)

	// act
	errAbove := engine.WithinTx(ctx, func(ctx context.Context, tx circulation.Tx) error {
		return tx.AdjustAvailableCopies(ctx, book.BookID, 1)
	})
	errBelow := engine.WithinTx(ctx, func(ctx context.Context, tx circulation.Tx) error {
		return tx.AdjustAvailableCopies(ctx, book.BookID, -2)
	})
	errMissing := engine.WithinTx(ctx, func(ctx context.Context, tx circulation.Tx) error {
		return tx.AdjustAvailableCopies(ctx, uuid.New(), -1)
	})

	// assert
	assert.ErrorIs(t, errAbove, circulation.ErrUnavailable)
	assert.ErrorIs(t, errBelow, circulation.ErrUnavailable)
	assert.ErrorIs(t, errMissing, circulation.ErrNotFound)
}

func Test_Engine_New_Rejects_Inconsistent_Book(t *testing.T) {
	book := aBook(1)
	book.AvailableCopies = 3

	_, err := memengine.New(memengine.WithBooks(book))

	assert.ErrorIs(t, err, circulation.ErrInvalidBook)
}

func Test_Engine_Listings_Are_Ordered(t *testing.T) {
	// setup
	ctx := context.Background()
	now := time.Unix(0, 0).UTC()
	user := circulation.User{UserID: uuid.New(), Name: "Jane Smith", Email: "jane@srmap.edu.in"}
	book := aBook(3)
	returned := aLoan(user.UserID, book.BookID, now.Add(-time.Hour))
	returned.Returned = true
	dueLater := aLoan(user.UserID, book.BookID, now.Add(48*time.Hour))
	dueSooner := aLoan(user.UserID, book.BookID, now.Add(24*time.Hour))
	older := circulation.BorrowRequest{RequestID: uuid.New(), UserID: user.UserID, BookID: book.BookID, CreatedAt: now}
	newer := circulation.BorrowRequest{RequestID: uuid.New(), UserID: user.UserID, BookID: book.BookID, CreatedAt: now.Add(time.Minute)}

	engine, err := memengine.New(memengine.WithBooks(book), memengine.WithUsers(user))
	require.NoError(t, err)
	require.NoError(t, engine.WithinTx(ctx, func(ctx context.Context, tx circulation.Tx) error {
		for _, loan := range []circulation.Loan{returned, dueLater, dueSooner} {
			if err := tx.InsertLoan(ctx, loan); err != nil {
				return err
			}
		}
		if err := tx.InsertRequest(ctx, older); err != nil {
			return err
		}

		return tx.InsertRequest(ctx, newer)
	}))

	// act
	loans, loansErr := engine.LoansByUser(ctx, user.UserID)
	tracked, trackedErr := engine.TrackedLoans(ctx)
	active, activeErr := engine.ActiveLoans(ctx)
	requests, requestsErr := engine.TrackedRequests(ctx)
	latest, found, latestErr := engine.LatestRequest(ctx, user.UserID, book.BookID)

	// assert
	require.NoError(t, errors.Join(loansErr, trackedErr, activeErr, requestsErr, latestErr))
	assert.Equal(t, []uuid.UUID{dueSooner.LoanID, dueLater.LoanID, returned.LoanID}, loanIDs(loans))
	require.Len(t, tracked, 3)
	assert.Equal(t, "Jane Smith", tracked[0].Borrower.Name)
	assert.Equal(t, []uuid.UUID{dueSooner.LoanID, dueLater.LoanID}, loanIDs(active))
	require.Len(t, requests, 2)
	assert.Equal(t, newer.RequestID, requests[0].RequestID)
	assert.Equal(t, "jane@srmap.edu.in", requests[0].Requester.Email)
	assert.True(t, found)
	assert.Equal(t, newer.RequestID, latest.RequestID)
}

func Test_Engine_Totals(t *testing.T) {
	// setup
	ctx := context.Background()
	engine, err := memengine.New(memengine.WithSeedData())
	require.NoError(t, err)

	// act
	totals, err := engine.Totals(ctx)

	// assert
	require.NoError(t, err)
	assert.Equal(t, 39, totals.TotalCopies)
	assert.Equal(t, 39, totals.AvailableCopies)
	assert.Equal(t, 2, totals.Users)
	assert.Zero(t, totals.PendingRequests)
	assert.Zero(t, totals.ActiveLoans)
}

func Test_Engine_DeleteBook_Removes_History(t *testing.T) {
	// setup
	ctx := context.Background()
	now := time.Unix(0, 0).UTC()
	book := aBook(1)
	userID := uuid.New()
	loan := aLoan(userID, book.BookID, now)
	loan.Returned = true
	request := circulation.BorrowRequest{RequestID: loan.RequestID, UserID: userID, BookID: book.BookID, Approved: true}

	engine, err := memengine.New(memengine.WithBooks(book))
	require.NoError(t, err)
	require.NoError(t, engine.WithinTx(ctx, func(ctx context.Context, tx circulation.Tx) error {
		if err := tx.InsertRequest(ctx, request); err != nil {
			return err
		}

		return tx.InsertLoan(ctx, loan)
	}))

	// act
	err = engine.WithinTx(ctx, func(ctx context.Context, tx circulation.Tx) error {
		return tx.DeleteBook(ctx, book.BookID)
	})

	// assert
	require.NoError(t, err)
	_, err = engine.Book(ctx, book.BookID)
	assert.ErrorIs(t, err, circulation.ErrNotFound)
	loans, err := engine.LoansByUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, loans)
}

func aBook(copies int) circulation.Book {
	return circulation.Book{
		BookID:          uuid.New(),
		Title:           "Computer Networks",
		Author:          "Andrew S. Tanenbaum",
		Edition:         "5th Edition",
		Subject:         "Networking",
		TotalCopies:     copies,
		AvailableCopies: copies,
	}
}

func aLoan(userID, bookID uuid.UUID, dueDate time.Time) circulation.Loan {
	return circulation.Loan{
		LoanID:    uuid.New(),
		RequestID: uuid.New(),
		UserID:    userID,
		BookID:    bookID,
		BookTitle: "Computer Networks",
		IssueDate: dueDate.Add(-circulation.LoanPeriodDays * 24 * time.Hour),
		DueDate:   dueDate,
	}
}

func loanIDs(loans []circulation.Loan) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(loans))
	for _, loan := range loans {
		ids = append(ids, loan.LoanID)
	}

	return ids
}
