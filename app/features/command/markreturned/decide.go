package markreturned

import (
	"github.com/rishithapentyala/Library-Management-System/app/shared/core"
	"github.com/rishithapentyala/Library-Management-System/circulation"
)

// State holds the facts Decide needs.
type State struct {
	LoanNotFound bool
	Loan         circulation.Loan
}

// Decide implements the business rules for returning a loan.
//
//	GIVEN: An unreturned loan with LoanID
//	WHEN: MarkReturned command is received
//	THEN: the loan is returned with its final fine
//	ERROR: ErrNotFound if the loan does not exist
//	ERROR: ErrAlreadyReturned if the loan was returned before
func Decide(s State, command Command) core.DecisionResult[circulation.Loan] {
	if s.LoanNotFound {
		return core.ErrorDecision[circulation.Loan](circulation.ErrNotFound)
	}

	if s.Loan.Returned {
		return core.ErrorDecision[circulation.Loan](circulation.ErrAlreadyReturned)
	}

	returned := s.Loan
	returned.Returned = true
	returned.ReturnedAt = command.OccurredAt
	returned.Fine = circulation.FineFor(s.Loan.DueDate, command.OccurredAt)

	return core.SuccessDecision(returned)
}
