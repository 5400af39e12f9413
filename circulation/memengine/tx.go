package memengine

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rishithapentyala/Library-Management-System/circulation"
)

// tx implements circulation.Tx on a working copy of the state.
// Locking is implicit: the Engine holds its write lock for the whole transaction.
type tx struct {
	state *state
}

func (t *tx) LockBook(_ context.Context, bookID uuid.UUID) (circulation.Book, error) {
	book, ok := t.state.books[bookID]
	if !ok {
		return circulation.Book{}, circulation.ErrNotFound
	}

	return book, nil
}

func (t *tx) LockRequest(_ context.Context, requestID uuid.UUID) (circulation.BorrowRequest, error) {
	request, ok := t.state.requests[requestID]
	if !ok {
		return circulation.BorrowRequest{}, circulation.ErrNotFound
	}

	return request, nil
}

func (t *tx) LockLoan(_ context.Context, loanID uuid.UUID) (circulation.Loan, error) {
	loan, ok := t.state.loans[loanID]
	if !ok {
		return circulation.Loan{}, circulation.ErrNotFound
	}

	return loan, nil
}

func (t *tx) HasPendingRequest(_ context.Context, userID, bookID uuid.UUID) (bool, error) {
	for _, request := range t.state.requests {
		if request.UserID == userID && request.BookID == bookID && request.Pending() {
			return true, nil
		}
	}

	return false, nil
}

func (t *tx) HasActiveLoan(_ context.Context, userID, bookID uuid.UUID) (bool, error) {
	for _, loan := range t.state.loans {
		if loan.UserID == userID && loan.BookID == bookID && !loan.Returned {
			return true, nil
		}
	}

	return false, nil
}

func (t *tx) LoanForRequest(_ context.Context, requestID uuid.UUID) (circulation.Loan, error) {
	for _, loan := range t.state.loans {
		if loan.RequestID == requestID {
			return loan, nil
		}
	}

	return circulation.Loan{}, circulation.ErrNotFound
}

func (t *tx) CountActiveLoansForBook(_ context.Context, bookID uuid.UUID) (int, error) {
	count := 0
	for _, loan := range t.state.loans {
		if loan.BookID == bookID && !loan.Returned {
			count++
		}
	}

	return count, nil
}

func (t *tx) CountPendingRequestsForBook(_ context.Context, bookID uuid.UUID) (int, error) {
	count := 0
	for _, request := range t.state.requests {
		if request.BookID == bookID && request.Pending() {
			count++
		}
	}

	return count, nil
}

func (t *tx) EmailTaken(_ context.Context, email string) (bool, error) {
	for _, user := range t.state.users {
		if strings.EqualFold(user.Email, email) {
			return true, nil
		}
	}

	return false, nil
}

func (t *tx) InsertRequest(_ context.Context, request circulation.BorrowRequest) error {
	if _, ok := t.state.books[request.BookID]; !ok {
		return circulation.ErrNotFound
	}

	t.state.requests[request.RequestID] = request

	return nil
}

func (t *tx) MarkRequestApproved(_ context.Context, requestID uuid.UUID) error {
	request, ok := t.state.requests[requestID]
	if !ok {
		return circulation.ErrNotFound
	}

	request.Approved = true
	t.state.requests[requestID] = request

	return nil
}

func (t *tx) DeleteRequest(_ context.Context, requestID uuid.UUID) error {
	if _, ok := t.state.requests[requestID]; !ok {
		return circulation.ErrNotFound
	}

	delete(t.state.requests, requestID)

	return nil
}

func (t *tx) InsertLoan(_ context.Context, loan circulation.Loan) error {
	if _, ok := t.state.books[loan.BookID]; !ok {
		return circulation.ErrNotFound
	}

	t.state.loans[loan.LoanID] = loan

	return nil
}

func (t *tx) MarkLoanReturned(_ context.Context, loanID uuid.UUID, fine int, returnedAt time.Time) error {
	loan, ok := t.state.loans[loanID]
	if !ok {
		return circulation.ErrNotFound
	}

	loan.Returned = true
	loan.Fine = fine
	loan.ReturnedAt = returnedAt
	t.state.loans[loanID] = loan

	return nil
}

func (t *tx) AdjustAvailableCopies(_ context.Context, bookID uuid.UUID, delta int) error {
	book, ok := t.state.books[bookID]
	if !ok {
		return circulation.ErrNotFound
	}

	available := book.AvailableCopies + delta
	if available < 0 || available > book.TotalCopies {
		return circulation.ErrUnavailable
	}

	book.AvailableCopies = available
	t.state.books[bookID] = book

	return nil
}

func (t *tx) InsertBook(_ context.Context, book circulation.Book) error {
	if book.AvailableCopies < 0 || book.AvailableCopies > book.TotalCopies {
		return circulation.ErrInvalidBook
	}

	t.state.books[book.BookID] = book

	return nil
}

func (t *tx) UpdateBook(_ context.Context, book circulation.Book) error {
	if _, ok := t.state.books[book.BookID]; !ok {
		return circulation.ErrNotFound
	}

	if book.AvailableCopies < 0 || book.AvailableCopies > book.TotalCopies {
		return circulation.ErrInvalidBook
	}

	t.state.books[book.BookID] = book

	return nil
}

func (t *tx) DeleteBook(_ context.Context, bookID uuid.UUID) error {
	if _, ok := t.state.books[bookID]; !ok {
		return circulation.ErrNotFound
	}

	for loanID, loan := range t.state.loans {
		if loan.BookID == bookID && loan.Returned {
			delete(t.state.loans, loanID)
		}
	}

	for requestID, request := range t.state.requests {
		if request.BookID == bookID && request.Approved {
			delete(t.state.requests, requestID)
		}
	}

	delete(t.state.books, bookID)

	return nil
}

func (t *tx) InsertUser(ctx context.Context, user circulation.User) error {
	taken, _ := t.EmailTaken(ctx, user.Email)
	if taken {
		return circulation.ErrUserExists
	}

	t.state.users[user.UserID] = user

	return nil
}
