package approverequest

import (
	"github.com/rishithapentyala/Library-Management-System/app/shared/core"
	"github.com/rishithapentyala/Library-Management-System/circulation"
)

// State holds the facts Decide needs, read under row locks inside the transaction.
type State struct {
	RequestNotFound bool
	Request         circulation.BorrowRequest
	BookNotFound    bool
	AvailableCopies int
}

// Decide implements the business rules for approving a borrow request.
//
// Business Rules:
//
//	GIVEN: A pending request with RequestID
//	WHEN: ApproveRequest command is received
//	THEN: a Loan issued now and due in 30 days is created
//	ERROR: ErrNotFound if the request does not exist (it may have been denied)
//	ERROR: ErrUnavailable if the book has no copy on the shelf or has been removed
//	IDEMPOTENCY: If the request is already approved, nothing changes
func Decide(s State, command Command) core.DecisionResult[circulation.Loan] {
	if s.RequestNotFound {
		return core.ErrorDecision[circulation.Loan](circulation.ErrNotFound)
	}

	if s.Request.Approved {
		return core.IdempotentDecision[circulation.Loan]()
	}

	if s.BookNotFound || s.AvailableCopies <= 0 {
		return core.ErrorDecision[circulation.Loan](circulation.ErrUnavailable)
	}

	return core.SuccessDecision(circulation.Loan{
		LoanID:    command.LoanID,
		RequestID: s.Request.RequestID,
		UserID:    s.Request.UserID,
		BookID:    s.Request.BookID,
		BookTitle: s.Request.BookTitle,
		IssueDate: command.OccurredAt,
		DueDate:   circulation.DueDateFor(command.OccurredAt),
		Fine:      0,
		Returned:  false,
	})
}
