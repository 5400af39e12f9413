package sqlengine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rishithapentyala/Library-Management-System/circulation"
)

const (
	operationBook            = "book"
	operationBooks           = "books"
	operationLatestRequest   = "latest_request"
	operationTrackedRequests = "tracked_requests"
	operationLoansByUser     = "loans_by_user"
	operationTrackedLoans    = "tracked_loans"
	operationActiveLoans     = "active_loans"
	operationUsers           = "users"
	operationTotals          = "totals"
)

// read wraps a Reader call with a span and the read duration metric.
func read[T any](ctx context.Context, e *Engine, operation string, fn func(ctx context.Context) (T, error)) (T, error) {
	ctx, span := e.startSpan(ctx, spanNameRead, operation)
	start := time.Now()

	result, err := fn(ctx)
	e.observe(ctx, span, operation, metricReadDuration, time.Since(start), err)

	return result, err
}

// Book returns a single book or circulation.ErrNotFound.
func (e *Engine) Book(ctx context.Context, bookID uuid.UUID) (circulation.Book, error) {
	return read(ctx, e, operationBook, func(ctx context.Context) (circulation.Book, error) {
		sqlQuery, err := e.statements.selectBook(bookID, false)
		if err != nil {
			return circulation.Book{}, err
		}

		return queryOne(ctx, e, e.db, sqlQuery, operationBook, scanBook)
	})
}

// Books returns the catalog ordered by title.
func (e *Engine) Books(ctx context.Context) ([]circulation.Book, error) {
	return read(ctx, e, operationBooks, func(ctx context.Context) ([]circulation.Book, error) {
		sqlQuery, err := e.statements.selectBooks()
		if err != nil {
			return nil, err
		}

		return queryAll(ctx, e, e.db, sqlQuery, operationBooks, scanBook)
	})
}

type latestRequestResult struct {
	request circulation.BorrowRequest
	ok      bool
}

// LatestRequest returns the newest request of a user for a book.
func (e *Engine) LatestRequest(ctx context.Context, userID, bookID uuid.UUID) (circulation.BorrowRequest, bool, error) {
	result, err := read(ctx, e, operationLatestRequest, func(ctx context.Context) (latestRequestResult, error) {
		sqlQuery, err := e.statements.selectLatestRequest(userID, bookID)
		if err != nil {
			return latestRequestResult{}, err
		}

		requests, err := queryAll(ctx, e, e.db, sqlQuery, operationLatestRequest, scanRequest)
		if err != nil || len(requests) == 0 {
			return latestRequestResult{}, err
		}

		return latestRequestResult{request: requests[0], ok: true}, nil
	})

	return result.request, result.ok, err
}

// TrackedRequests returns all requests with their requester, newest first.
func (e *Engine) TrackedRequests(ctx context.Context) ([]circulation.TrackedRequest, error) {
	return read(ctx, e, operationTrackedRequests, func(ctx context.Context) ([]circulation.TrackedRequest, error) {
		sqlQuery, err := e.statements.selectTrackedRequests()
		if err != nil {
			return nil, err
		}

		return queryAll(ctx, e, e.db, sqlQuery, operationTrackedRequests, scanTrackedRequest)
	})
}

// LoansByUser returns a user's loans, unreturned first, then by due date.
func (e *Engine) LoansByUser(ctx context.Context, userID uuid.UUID) ([]circulation.Loan, error) {
	return read(ctx, e, operationLoansByUser, func(ctx context.Context) ([]circulation.Loan, error) {
		sqlQuery, err := e.statements.selectLoansByUser(userID)
		if err != nil {
			return nil, err
		}

		return queryAll(ctx, e, e.db, sqlQuery, operationLoansByUser, scanLoan)
	})
}

// TrackedLoans returns all loans with their borrower, unreturned first, then by due date.
func (e *Engine) TrackedLoans(ctx context.Context) ([]circulation.TrackedLoan, error) {
	return read(ctx, e, operationTrackedLoans, func(ctx context.Context) ([]circulation.TrackedLoan, error) {
		sqlQuery, err := e.statements.selectTrackedLoans()
		if err != nil {
			return nil, err
		}

		return queryAll(ctx, e, e.db, sqlQuery, operationTrackedLoans, scanTrackedLoan)
	})
}

// ActiveLoans returns all unreturned loans ordered by due date.
func (e *Engine) ActiveLoans(ctx context.Context) ([]circulation.Loan, error) {
	return read(ctx, e, operationActiveLoans, func(ctx context.Context) ([]circulation.Loan, error) {
		sqlQuery, err := e.statements.selectActiveLoans()
		if err != nil {
			return nil, err
		}

		return queryAll(ctx, e, e.db, sqlQuery, operationActiveLoans, scanLoan)
	})
}

// Users returns the user directory ordered by name.
func (e *Engine) Users(ctx context.Context) ([]circulation.User, error) {
	return read(ctx, e, operationUsers, func(ctx context.Context) ([]circulation.User, error) {
		sqlQuery, err := e.statements.selectUsers()
		if err != nil {
			return nil, err
		}

		return queryAll(ctx, e, e.db, sqlQuery, operationUsers, scanUser)
	})
}

// Totals returns the catalog wide counters.
func (e *Engine) Totals(ctx context.Context) (circulation.Totals, error) {
	return read(ctx, e, operationTotals, func(ctx context.Context) (circulation.Totals, error) {
		copiesQuery, err := e.statements.sumCopies()
		if err != nil {
			return circulation.Totals{}, err
		}

		usersQuery, err := e.statements.countUsers()
		if err != nil {
			return circulation.Totals{}, err
		}

		requestsQuery, err := e.statements.countPendingRequests(uuid.Nil, uuid.Nil)
		if err != nil {
			return circulation.Totals{}, err
		}

		loansQuery, err := e.statements.countActiveLoans(uuid.Nil, uuid.Nil)
		if err != nil {
			return circulation.Totals{}, err
		}

		var totalCopies, availableCopies int64
		if err := e.queryInts(ctx, e.db, copiesQuery, operationTotals, &totalCopies, &availableCopies); err != nil {
			return circulation.Totals{}, err
		}

		totals := circulation.Totals{
			TotalCopies:     int(totalCopies),
			AvailableCopies: int(availableCopies),
		}

		if totals.Users, err = e.queryCount(ctx, e.db, usersQuery, operationTotals); err != nil {
			return circulation.Totals{}, err
		}

		if totals.PendingRequests, err = e.queryCount(ctx, e.db, requestsQuery, operationTotals); err != nil {
			return circulation.Totals{}, err
		}

		if totals.ActiveLoans, err = e.queryCount(ctx, e.db, loansQuery, operationTotals); err != nil {
			return circulation.Totals{}, err
		}

		return totals, nil
	})
}
