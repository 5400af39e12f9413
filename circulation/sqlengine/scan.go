package sqlengine

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/rishithapentyala/Library-Management-System/circulation"
	"github.com/rishithapentyala/Library-Management-System/circulation/sqlengine/internal/adapters"
)

// Ids are scanned as text so that PostgreSQL UUID columns and MySQL CHAR(36) columns share one path.

func scanBook(rows adapters.DBRows) (circulation.Book, error) {
	var book circulation.Book
	var bookID string

	if err := rows.Scan(&bookID, &book.Title, &book.Author, &book.Edition, &book.Subject, &book.TotalCopies, &book.AvailableCopies); err != nil {
		return circulation.Book{}, err
	}

	var err error
	if book.BookID, err = uuid.Parse(bookID); err != nil {
		return circulation.Book{}, err
	}

	return book, nil
}

func requestScanDest(request *circulation.BorrowRequest, ids *[3]string) []any {
	return []any{&ids[0], &ids[1], &ids[2], &request.BookTitle, &request.Approved, &request.CreatedAt}
}

func parseRequestIDs(request *circulation.BorrowRequest, ids [3]string) error {
	var err error
	if request.RequestID, err = uuid.Parse(ids[0]); err != nil {
		return err
	}
	if request.UserID, err = uuid.Parse(ids[1]); err != nil {
		return err
	}
	if request.BookID, err = uuid.Parse(ids[2]); err != nil {
		return err
	}

	request.CreatedAt = request.CreatedAt.UTC()

	return nil
}

func scanRequest(rows adapters.DBRows) (circulation.BorrowRequest, error) {
	var request circulation.BorrowRequest
	var ids [3]string

	if err := rows.Scan(requestScanDest(&request, &ids)...); err != nil {
		return circulation.BorrowRequest{}, err
	}

	if err := parseRequestIDs(&request, ids); err != nil {
		return circulation.BorrowRequest{}, err
	}

	return request, nil
}

func scanTrackedRequest(rows adapters.DBRows) (circulation.TrackedRequest, error) {
	var tracked circulation.TrackedRequest
	var ids [3]string

	dest := requestScanDest(&tracked.BorrowRequest, &ids)
	dest = append(dest, &tracked.Requester.Name, &tracked.Requester.Email)

	if err := rows.Scan(dest...); err != nil {
		return circulation.TrackedRequest{}, err
	}

	if err := parseRequestIDs(&tracked.BorrowRequest, ids); err != nil {
		return circulation.TrackedRequest{}, err
	}

	return tracked, nil
}

type loanRow struct {
	ids        [4]string
	returnedAt sql.NullTime
}

func (r *loanRow) dest(loan *circulation.Loan) []any {
	return []any{
		&r.ids[0], &r.ids[1], &r.ids[2], &r.ids[3],
		&loan.BookTitle, &loan.IssueDate, &loan.DueDate, &loan.Fine, &loan.Returned, &r.returnedAt,
	}
}

func (r *loanRow) complete(loan *circulation.Loan) error {
	parsed := make([]uuid.UUID, len(r.ids))
	for i, id := range r.ids {
		var err error
		if parsed[i], err = uuid.Parse(id); err != nil {
			return err
		}
	}

	loan.LoanID, loan.RequestID, loan.UserID, loan.BookID = parsed[0], parsed[1], parsed[2], parsed[3]
	loan.IssueDate = loan.IssueDate.UTC()
	loan.DueDate = loan.DueDate.UTC()

	if r.returnedAt.Valid {
		loan.ReturnedAt = r.returnedAt.Time.UTC()
	} else {
		loan.ReturnedAt = time.Time{}
	}

	return nil
}

func scanLoan(rows adapters.DBRows) (circulation.Loan, error) {
	var loan circulation.Loan
	var row loanRow

	if err := rows.Scan(row.dest(&loan)...); err != nil {
		return circulation.Loan{}, err
	}

	if err := row.complete(&loan); err != nil {
		return circulation.Loan{}, err
	}

	return loan, nil
}

func scanTrackedLoan(rows adapters.DBRows) (circulation.TrackedLoan, error) {
	var tracked circulation.TrackedLoan
	var row loanRow

	dest := row.dest(&tracked.Loan)
	dest = append(dest, &tracked.Borrower.Name, &tracked.Borrower.Email)

	if err := rows.Scan(dest...); err != nil {
		return circulation.TrackedLoan{}, err
	}

	if err := row.complete(&tracked.Loan); err != nil {
		return circulation.TrackedLoan{}, err
	}

	return tracked, nil
}

func scanUser(rows adapters.DBRows) (circulation.User, error) {
	var user circulation.User
	var userID string

	if err := rows.Scan(&userID, &user.Email, &user.Name, &user.Phone); err != nil {
		return circulation.User{}, err
	}

	var err error
	if user.UserID, err = uuid.Parse(userID); err != nil {
		return circulation.User{}, err
	}

	return user, nil
}
