package trackedloans

import (
	"github.com/google/uuid"

	"github.com/rishithapentyala/Library-Management-System/app/features/query/borrowedbooks"
)

// TrackedLoan is a loan with its borrower.
type TrackedLoan struct {
	borrowedbooks.LoanInfo
	UserID    uuid.UUID `json:"userId"`
	UserName  string    `json:"userName"`
	UserEmail string    `json:"userEmail"`
}

// TrackedLoans is the query result.
type TrackedLoans struct {
	Loans        []TrackedLoan `json:"loans"`
	Count        int           `json:"count"`
	OverdueCount int           `json:"overdueCount"`
}
