package borrowedbooks

import (
	"github.com/rishithapentyala/Library-Management-System/circulation"
)

// Project implements the query logic, the order of the loans is kept as read.
//
//	GIVEN: The loans of a user
//	WHEN: BorrowedBooks query is executed at Query.At
//	THEN: unreturned loans carry their projected fine, returned loans their stored fine
//	DETAILS: TotalFine sums all of them
func Project(loans []circulation.Loan, query Query) BorrowedBooks {
	result := BorrowedBooks{
		UserID: query.UserID,
		Loans:  make([]LoanInfo, 0, len(loans)),
	}

	for _, loan := range loans {
		info := ToLoanInfo(loan.WithProjectedFine(query.At), query)
		if !info.Returned {
			result.ActiveCount++
		}

		result.TotalFine += info.Fine
		result.Loans = append(result.Loans, info)
	}

	result.Count = len(result.Loans)

	return result
}

// ToLoanInfo expects a loan whose fine was already projected.
func ToLoanInfo(loan circulation.Loan, query Query) LoanInfo {
	info := LoanInfo{
		LoanID:    loan.LoanID,
		BookID:    loan.BookID,
		BookTitle: loan.BookTitle,
		IssueDate: loan.IssueDate,
		DueDate:   loan.DueDate,
		Fine:      loan.Fine,
		Overdue:   loan.Overdue(query.At),
		Returned:  loan.Returned,
	}

	if loan.Returned {
		returnedAt := loan.ReturnedAt
		info.ReturnedAt = &returnedAt
	}

	return info
}
