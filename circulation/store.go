package circulation

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Tx is a unit of work over the circulation state.
//
// The Lock* methods read a row and keep it locked until the transaction ends,
// so that the read, the decision and the writes based on it are atomic.
// All methods return ErrNotFound when the addressed row does not exist.
type Tx interface {
	LockBook(ctx context.Context, bookID uuid.UUID) (Book, error)
	LockRequest(ctx context.Context, requestID uuid.UUID) (BorrowRequest, error)
	LockLoan(ctx context.Context, loanID uuid.UUID) (Loan, error)

	HasPendingRequest(ctx context.Context, userID, bookID uuid.UUID) (bool, error)
	HasActiveLoan(ctx context.Context, userID, bookID uuid.UUID) (bool, error)
	LoanForRequest(ctx context.Context, requestID uuid.UUID) (Loan, error)
	CountActiveLoansForBook(ctx context.Context, bookID uuid.UUID) (int, error)
	CountPendingRequestsForBook(ctx context.Context, bookID uuid.UUID) (int, error)
	EmailTaken(ctx context.Context, email string) (bool, error)

	InsertRequest(ctx context.Context, request BorrowRequest) error
	MarkRequestApproved(ctx context.Context, requestID uuid.UUID) error
	DeleteRequest(ctx context.Context, requestID uuid.UUID) error

	InsertLoan(ctx context.Context, loan Loan) error
	MarkLoanReturned(ctx context.Context, loanID uuid.UUID, fine int, returnedAt time.Time) error

	// AdjustAvailableCopies adds delta to the available copies of a book.
	// It fails with ErrUnavailable instead of leaving the range [0, total copies].
	AdjustAvailableCopies(ctx context.Context, bookID uuid.UUID, delta int) error

	InsertBook(ctx context.Context, book Book) error
	UpdateBook(ctx context.Context, book Book) error
	// DeleteBook removes a book together with its returned loans and approved requests.
	DeleteBook(ctx context.Context, bookID uuid.UUID) error

	InsertUser(ctx context.Context, user User) error
}

// Reader is the read side used by queries. Implementations may honor GetConsistencyLevel.
type Reader interface {
	Book(ctx context.Context, bookID uuid.UUID) (Book, error)
	// Books returns the catalog ordered by title.
	Books(ctx context.Context) ([]Book, error)
	// LatestRequest returns the most recent request of a user for a book, ok is false if there is none.
	LatestRequest(ctx context.Context, userID, bookID uuid.UUID) (request BorrowRequest, ok bool, err error)
	// TrackedRequests returns all requests with their requester, newest first.
	TrackedRequests(ctx context.Context) ([]TrackedRequest, error)
	// LoansByUser returns a user's loans, unreturned first, then by due date.
	LoansByUser(ctx context.Context, userID uuid.UUID) ([]Loan, error)
	// TrackedLoans returns all loans with their borrower, unreturned first, then by due date.
	TrackedLoans(ctx context.Context) ([]TrackedLoan, error)
	// ActiveLoans returns all unreturned loans ordered by due date.
	ActiveLoans(ctx context.Context) ([]Loan, error)
	// Users returns the user directory ordered by name.
	Users(ctx context.Context) ([]User, error)
	Totals(ctx context.Context) (Totals, error)
}

// TxFunc is the callback run by Engine.WithinTx. Returning an error rolls back all writes.
type TxFunc func(ctx context.Context, tx Tx) error

// Engine is implemented by the storage engines.
type Engine interface {
	Reader
	// WithinTx runs fn in a transaction and commits if fn returns nil.
	// Conflicts detected by the database are reported as ErrConcurrencyConflict.
	WithinTx(ctx context.Context, fn TxFunc) error
}
