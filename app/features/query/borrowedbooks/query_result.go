package borrowedbooks

import (
	"time"

	"github.com/google/uuid"
)

// LoanInfo is a loan as shown to its borrower.
type LoanInfo struct {
	LoanID     uuid.UUID  `json:"loanId"`
	BookID     uuid.UUID  `json:"bookId"`
	BookTitle  string     `json:"bookTitle"`
	IssueDate  time.Time  `json:"issueDate"`
	DueDate    time.Time  `json:"dueDate"`
	Fine       int        `json:"fine"`
	Overdue    bool       `json:"overdue"`
	Returned   bool       `json:"returned"`
	ReturnedAt *time.Time `json:"returnedAt,omitempty"`
}

// BorrowedBooks is the query result.
type BorrowedBooks struct {
	UserID      uuid.UUID  `json:"userId"`
	Loans       []LoanInfo `json:"loans"`
	Count       int        `json:"count"`
	ActiveCount int        `json:"activeCount"`
	TotalFine   int        `json:"totalFine"`
}
