package sqlengine

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/rishithapentyala/Library-Management-System/circulation"
	"github.com/rishithapentyala/Library-Management-System/circulation/sqlengine/internal/adapters"
)

const (
	actionLockBook        = "lock book"
	actionLockRequest     = "lock request"
	actionLockLoan        = "lock loan"
	actionCount           = "count"
	actionLoanForRequest  = "loan for request"
	actionInsertRequest   = "insert request"
	actionApproveRequest  = "approve request"
	actionDeleteRequest   = "delete request"
	actionInsertLoan      = "insert loan"
	actionReturnLoan      = "return loan"
	actionAdjustAvailable = "adjust available copies"
	actionInsertBook      = "insert book"
	actionUpdateBook      = "update book"
	actionDeleteBook      = "delete book"
	actionInsertUser      = "insert user"
)

// sqlTx implements circulation.Tx on an open database transaction.
type sqlTx struct {
	engine *Engine
	db     adapters.DBTx
}

func (t *sqlTx) LockBook(ctx context.Context, bookID uuid.UUID) (circulation.Book, error) {
	sqlQuery, err := t.engine.statements.selectBook(bookID, true)
	if err != nil {
		return circulation.Book{}, err
	}

	return queryOne(ctx, t.engine, t.db, sqlQuery, actionLockBook, scanBook)
}

func (t *sqlTx) LockRequest(ctx context.Context, requestID uuid.UUID) (circulation.BorrowRequest, error) {
	sqlQuery, err := t.engine.statements.selectRequest(requestID, true)
	if err != nil {
		return circulation.BorrowRequest{}, err
	}

	return queryOne(ctx, t.engine, t.db, sqlQuery, actionLockRequest, scanRequest)
}

func (t *sqlTx) LockLoan(ctx context.Context, loanID uuid.UUID) (circulation.Loan, error) {
	sqlQuery, err := t.engine.statements.selectLoan(loanID, true)
	if err != nil {
		return circulation.Loan{}, err
	}

	return queryOne(ctx, t.engine, t.db, sqlQuery, actionLockLoan, scanLoan)
}

func (t *sqlTx) HasPendingRequest(ctx context.Context, userID, bookID uuid.UUID) (bool, error) {
	sqlQuery, err := t.engine.statements.countPendingRequests(userID, bookID)
	if err != nil {
		return false, err
	}

	count, err := t.engine.queryCount(ctx, t.db, sqlQuery, actionCount)

	return count > 0, err
}

func (t *sqlTx) HasActiveLoan(ctx context.Context, userID, bookID uuid.UUID) (bool, error) {
	sqlQuery, err := t.engine.statements.countActiveLoans(userID, bookID)
	if err != nil {
		return false, err
	}

	count, err := t.engine.queryCount(ctx, t.db, sqlQuery, actionCount)

	return count > 0, err
}

func (t *sqlTx) LoanForRequest(ctx context.Context, requestID uuid.UUID) (circulation.Loan, error) {
	sqlQuery, err := t.engine.statements.selectLoanForRequest(requestID)
	if err != nil {
		return circulation.Loan{}, err
	}

	return queryOne(ctx, t.engine, t.db, sqlQuery, actionLoanForRequest, scanLoan)
}

func (t *sqlTx) CountActiveLoansForBook(ctx context.Context, bookID uuid.UUID) (int, error) {
	sqlQuery, err := t.engine.statements.countActiveLoans(uuid.Nil, bookID)
	if err != nil {
		return 0, err
	}

	return t.engine.queryCount(ctx, t.db, sqlQuery, actionCount)
}

func (t *sqlTx) CountPendingRequestsForBook(ctx context.Context, bookID uuid.UUID) (int, error) {
	sqlQuery, err := t.engine.statements.countPendingRequests(uuid.Nil, bookID)
	if err != nil {
		return 0, err
	}

	return t.engine.queryCount(ctx, t.db, sqlQuery, actionCount)
}

func (t *sqlTx) EmailTaken(ctx context.Context, email string) (bool, error) {
	sqlQuery, err := t.engine.statements.countUsersWithEmail(email)
	if err != nil {
		return false, err
	}

	count, err := t.engine.queryCount(ctx, t.db, sqlQuery, actionCount)

	return count > 0, err
}

func (t *sqlTx) InsertRequest(ctx context.Context, request circulation.BorrowRequest) error {
	sqlQuery, err := t.engine.statements.insertRequest(request)
	if err != nil {
		return err
	}

	_, err = t.engine.exec(ctx, t.db, sqlQuery, actionInsertRequest)
	if err != nil && isUniqueViolation(err) {
		return errors.Join(circulation.ErrDuplicateRequest, err)
	}

	return err
}

func (t *sqlTx) MarkRequestApproved(ctx context.Context, requestID uuid.UUID) error {
	sqlQuery, err := t.engine.statements.approveRequest(requestID)
	if err != nil {
		return err
	}

	return t.execOne(ctx, sqlQuery, actionApproveRequest)
}

func (t *sqlTx) DeleteRequest(ctx context.Context, requestID uuid.UUID) error {
	sqlQuery, err := t.engine.statements.deleteRequest(requestID)
	if err != nil {
		return err
	}

	return t.execOne(ctx, sqlQuery, actionDeleteRequest)
}

func (t *sqlTx) InsertLoan(ctx context.Context, loan circulation.Loan) error {
	sqlQuery, err := t.engine.statements.insertLoan(loan)
	if err != nil {
		return err
	}

	_, err = t.engine.exec(ctx, t.db, sqlQuery, actionInsertLoan)
	if err != nil && isUniqueViolation(err) {
		return errors.Join(circulation.ErrAlreadyBorrowed, err)
	}

	return err
}

func (t *sqlTx) MarkLoanReturned(ctx context.Context, loanID uuid.UUID, fine int, returnedAt time.Time) error {
	sqlQuery, err := t.engine.statements.markLoanReturned(loanID, fine, returnedAt)
	if err != nil {
		return err
	}

	return t.execOne(ctx, sqlQuery, actionReturnLoan)
}

func (t *sqlTx) AdjustAvailableCopies(ctx context.Context, bookID uuid.UUID, delta int) error {
	if delta == 0 {
		return nil
	}

	sqlQuery, err := t.engine.statements.adjustAvailableCopies(bookID, delta)
	if err != nil {
		return err
	}

	rowsAffected, err := t.engine.exec(ctx, t.db, sqlQuery, actionAdjustAvailable)
	if err != nil {
		return err
	}

	if rowsAffected > 0 {
		return nil
	}

	// The guarded update matched nothing: either the book is gone or the counter would leave its range.
	if _, err := t.LockBook(ctx, bookID); err != nil {
		return err
	}

	return circulation.ErrUnavailable
}

func (t *sqlTx) InsertBook(ctx context.Context, book circulation.Book) error {
	if book.AvailableCopies < 0 || book.AvailableCopies > book.TotalCopies {
		return circulation.ErrInvalidBook
	}

	sqlQuery, err := t.engine.statements.insertBooks(book)
	if err != nil {
		return err
	}

	_, err = t.engine.exec(ctx, t.db, sqlQuery, actionInsertBook)

	return err
}

func (t *sqlTx) UpdateBook(ctx context.Context, book circulation.Book) error {
	if book.AvailableCopies < 0 || book.AvailableCopies > book.TotalCopies {
		return circulation.ErrInvalidBook
	}

	sqlQuery, err := t.engine.statements.updateBook(book)
	if err != nil {
		return err
	}

	return t.execOne(ctx, sqlQuery, actionUpdateBook)
}

func (t *sqlTx) DeleteBook(ctx context.Context, bookID uuid.UUID) error {
	loansQuery, err := t.engine.statements.deleteReturnedLoansOfBook(bookID)
	if err != nil {
		return err
	}

	requestsQuery, err := t.engine.statements.deleteApprovedRequestsOfBook(bookID)
	if err != nil {
		return err
	}

	bookQuery, err := t.engine.statements.deleteBook(bookID)
	if err != nil {
		return err
	}

	if _, err := t.engine.exec(ctx, t.db, loansQuery, actionDeleteBook); err != nil {
		return err
	}

	if _, err := t.engine.exec(ctx, t.db, requestsQuery, actionDeleteBook); err != nil {
		return err
	}

	return t.execOne(ctx, bookQuery, actionDeleteBook)
}

func (t *sqlTx) InsertUser(ctx context.Context, user circulation.User) error {
	sqlQuery, err := t.engine.statements.insertUsers(user)
	if err != nil {
		return err
	}

	_, err = t.engine.exec(ctx, t.db, sqlQuery, actionInsertUser)
	if err != nil && isUniqueViolation(err) {
		return errors.Join(circulation.ErrUserExists, err)
	}

	return err
}

// execOne executes a statement addressing a single row and maps zero affected rows to circulation.ErrNotFound.
func (t *sqlTx) execOne(ctx context.Context, sqlQuery, action string) error {
	rowsAffected, err := t.engine.exec(ctx, t.db, sqlQuery, action)
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return circulation.ErrNotFound
	}

	return nil
}
