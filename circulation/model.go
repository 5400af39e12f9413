package circulation

import (
	"time"

	"github.com/google/uuid"
)

// Book is a catalog entry with its copy counters.
// AvailableCopies must always stay within [0, TotalCopies].
type Book struct {
	BookID          uuid.UUID
	Title           string
	Author          string
	Edition         string
	Subject         string
	TotalCopies     int
	AvailableCopies int
}

// LentCopies returns how many copies are currently out on loan.
func (b Book) LentCopies() int {
	return b.TotalCopies - b.AvailableCopies
}

// BorrowRequest is a user's request to borrow a book.
// A pending request has Approved == false. Approved requests stay as history.
type BorrowRequest struct {
	RequestID uuid.UUID
	UserID    uuid.UUID
	BookID    uuid.UUID
	BookTitle string
	Approved  bool
	CreatedAt time.Time
}

// Pending reports whether the request still waits for a librarian decision.
func (r BorrowRequest) Pending() bool {
	return !r.Approved
}

// Loan is an issued copy of a book. It is created only by approving a BorrowRequest.
// Fine is authoritative only once Returned is true.
type Loan struct {
	LoanID     uuid.UUID
	RequestID  uuid.UUID
	UserID     uuid.UUID
	BookID     uuid.UUID
	BookTitle  string
	IssueDate  time.Time
	DueDate    time.Time
	Fine       int
	Returned   bool
	ReturnedAt time.Time
}

// User is an entry of the library's user directory. Credentials are managed by the identity provider.
type User struct {
	UserID uuid.UUID
	Email  string
	Name   string
	Phone  string
}

// UserRef is the user information joined into librarian listings.
type UserRef struct {
	Name  string
	Email string
}

// TrackedLoan is a Loan together with its borrower.
type TrackedLoan struct {
	Loan
	Borrower UserRef
}

// TrackedRequest is a BorrowRequest together with its requester.
type TrackedRequest struct {
	BorrowRequest
	Requester UserRef
}

// Totals are the catalog wide counters used for the dashboard.
type Totals struct {
	TotalCopies     int
	AvailableCopies int
	Users           int
	PendingRequests int
	ActiveLoans     int
}
