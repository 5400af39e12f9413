package trackedloans

import (
	"github.com/rishithapentyala/Library-Management-System/app/features/query/borrowedbooks"
	"github.com/rishithapentyala/Library-Management-System/circulation"
)

// Project applies the same fine projection as the student's own listing.
func Project(loans []circulation.TrackedLoan, query Query) TrackedLoans {
	result := TrackedLoans{Loans: make([]TrackedLoan, 0, len(loans))}
	at := borrowedbooks.Query{At: query.At}

	for _, loan := range loans {
		info := borrowedbooks.ToLoanInfo(loan.WithProjectedFine(query.At), at)
		if info.Overdue {
			result.OverdueCount++
		}

		result.Loans = append(result.Loans, TrackedLoan{
			LoanInfo:  info,
			UserID:    loan.UserID,
			UserName:  loan.Borrower.Name,
			UserEmail: loan.Borrower.Email,
		})
	}

	result.Count = len(result.Loans)

	return result
}
