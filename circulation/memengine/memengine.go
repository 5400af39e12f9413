package memengine

import (
	"bytes"
	"context"
	"errors"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/rishithapentyala/Library-Management-System/circulation"
)

// Option defines a functional option for configuring the Engine.
type Option func(*Engine) error

type state struct {
	books    map[uuid.UUID]circulation.Book
	requests map[uuid.UUID]circulation.BorrowRequest
	loans    map[uuid.UUID]circulation.Loan
	users    map[uuid.UUID]circulation.User
}

func newState() state {
	return state{
		books:    make(map[uuid.UUID]circulation.Book),
		requests: make(map[uuid.UUID]circulation.BorrowRequest),
		loans:    make(map[uuid.UUID]circulation.Loan),
		users:    make(map[uuid.UUID]circulation.User),
	}
}

func (s state) clone() state {
	return state{
		books:    maps.Clone(s.books),
		requests: maps.Clone(s.requests),
		loans:    maps.Clone(s.loans),
		users:    maps.Clone(s.users),
	}
}

// Engine is an in-memory circulation.Engine.
type Engine struct {
	mu    sync.RWMutex
	state state
}

// WithBooks adds books to the initial state.
func WithBooks(books ...circulation.Book) Option {
	return func(e *Engine) error {
		for _, book := range books {
			if book.AvailableCopies < 0 || book.AvailableCopies > book.TotalCopies {
				return circulation.ErrInvalidBook
			}

			e.state.books[book.BookID] = book
		}

		return nil
	}
}

// WithUsers adds users to the initial state.
func WithUsers(users ...circulation.User) Option {
	return func(e *Engine) error {
		for _, user := range users {
			e.state.users[user.UserID] = user
		}

		return nil
	}
}

// WithSeedData loads circulation.SeedBooks and circulation.SeedUsers.
func WithSeedData() Option {
	return func(e *Engine) error {
		if err := WithBooks(circulation.SeedBooks()...)(e); err != nil {
			return err
		}

		return WithUsers(circulation.SeedUsers()...)(e)
	}
}

// New creates an empty Engine with optional initial state.
func New(options ...Option) (*Engine, error) {
	e := &Engine{state: newState()}

	for _, option := range options {
		if err := option(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// WithinTx runs fn against a private copy of the state and commits it if fn succeeds.
func (e *Engine) WithinTx(ctx context.Context, fn circulation.TxFunc) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	working := e.state.clone()

	if err := fn(ctx, &tx{state: &working}); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return errors.Join(circulation.ErrCommittingTxFailed, err)
	}

	e.state = working

	return nil
}

// Book returns a single book.
func (e *Engine) Book(_ context.Context, bookID uuid.UUID) (circulation.Book, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	book, ok := e.state.books[bookID]
	if !ok {
		return circulation.Book{}, circulation.ErrNotFound
	}

	return book, nil
}

// Books returns the catalog ordered by title.
func (e *Engine) Books(_ context.Context) ([]circulation.Book, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	books := slices.Collect(maps.Values(e.state.books))
	slices.SortFunc(books, func(a, b circulation.Book) int {
		if c := strings.Compare(a.Title, b.Title); c != 0 {
			return c
		}

		return bytes.Compare(a.BookID[:], b.BookID[:])
	})

	return books, nil
}

// LatestRequest returns the newest request of a user for a book.
func (e *Engine) LatestRequest(_ context.Context, userID, bookID uuid.UUID) (circulation.BorrowRequest, bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var latest circulation.BorrowRequest
	found := false

	for _, request := range e.state.requests {
		if request.UserID != userID || request.BookID != bookID {
			continue
		}

		if !found || compareRequestsNewestFirst(request, latest) < 0 {
			latest = request
			found = true
		}
	}

	return latest, found, nil
}

// TrackedRequests returns all requests with their requester, newest first.
func (e *Engine) TrackedRequests(_ context.Context) ([]circulation.TrackedRequest, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	requests := slices.Collect(maps.Values(e.state.requests))
	slices.SortFunc(requests, compareRequestsNewestFirst)

	tracked := make([]circulation.TrackedRequest, 0, len(requests))
	for _, request := range requests {
		tracked = append(tracked, circulation.TrackedRequest{
			BorrowRequest: request,
			Requester:     e.state.userRef(request.UserID),
		})
	}

	return tracked, nil
}

// LoansByUser returns a user's loans, unreturned first, then by due date.
func (e *Engine) LoansByUser(_ context.Context, userID uuid.UUID) ([]circulation.Loan, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	loans := make([]circulation.Loan, 0)
	for _, loan := range e.state.loans {
		if loan.UserID == userID {
			loans = append(loans, loan)
		}
	}

	slices.SortFunc(loans, compareLoansForTracking)

	return loans, nil
}

// TrackedLoans returns all loans with their borrower, unreturned first, then by due date.
func (e *Engine) TrackedLoans(_ context.Context) ([]circulation.TrackedLoan, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	loans := slices.Collect(maps.Values(e.state.loans))
	slices.SortFunc(loans, compareLoansForTracking)

	tracked := make([]circulation.TrackedLoan, 0, len(loans))
	for _, loan := range loans {
		tracked = append(tracked, circulation.TrackedLoan{
			Loan:     loan,
			Borrower: e.state.userRef(loan.UserID),
		})
	}

	return tracked, nil
}

// ActiveLoans returns all unreturned loans ordered by due date.
func (e *Engine) ActiveLoans(_ context.Context) ([]circulation.Loan, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	loans := make([]circulation.Loan, 0)
	for _, loan := range e.state.loans {
		if !loan.Returned {
			loans = append(loans, loan)
		}
	}

	slices.SortFunc(loans, compareLoansForTracking)

	return loans, nil
}

// Users returns the user directory ordered by name.
func (e *Engine) Users(_ context.Context) ([]circulation.User, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	users := slices.Collect(maps.Values(e.state.users))
	slices.SortFunc(users, func(a, b circulation.User) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}

		return strings.Compare(a.Email, b.Email)
	})

	return users, nil
}

// Totals returns the catalog wide counters.
func (e *Engine) Totals(_ context.Context) (circulation.Totals, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	totals := circulation.Totals{Users: len(e.state.users)}

	for _, book := range e.state.books {
		totals.TotalCopies += book.TotalCopies
		totals.AvailableCopies += book.AvailableCopies
	}

	for _, request := range e.state.requests {
		if request.Pending() {
			totals.PendingRequests++
		}
	}

	for _, loan := range e.state.loans {
		if !loan.Returned {
			totals.ActiveLoans++
		}
	}

	return totals, nil
}

func (s state) userRef(userID uuid.UUID) circulation.UserRef {
	user, ok := s.users[userID]
	if !ok {
		return circulation.UserRef{}
	}

	return circulation.UserRef{Name: user.Name, Email: user.Email}
}

func compareRequestsNewestFirst(a, b circulation.BorrowRequest) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}

	return bytes.Compare(b.RequestID[:], a.RequestID[:])
}

func compareLoansForTracking(a, b circulation.Loan) int {
	if a.Returned != b.Returned {
		if a.Returned {
			return 1
		}

		return -1
	}

	if c := a.DueDate.Compare(b.DueDate); c != 0 {
		return c
	}

	return bytes.Compare(a.LoanID[:], b.LoanID[:])
}
