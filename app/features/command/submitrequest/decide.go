package submitrequest

import (
	"github.com/rishithapentyala/Library-Management-System/app/shared/core"
	"github.com/rishithapentyala/Library-Management-System/circulation"
)

// State holds the facts Decide needs, read inside the transaction.
type State struct {
	HasPendingRequest bool
	HasActiveLoan     bool
	BookNotFound      bool
	AvailableCopies   int
	CatalogTitle      string
}

// Decide implements the business rules for accepting a borrow request.
//
// Business Rules (checked in this order):
//
//	GIVEN: A user with UserID and a book with BookID
//	WHEN: SubmitRequest command is received
//	THEN: a pending BorrowRequest is created
//	ERROR: ErrDuplicateRequest if the user has a pending request for this book
//	ERROR: ErrAlreadyBorrowed if the user holds an unreturned copy of this book
//	ERROR: ErrNotFound if the book is not in the catalog
//	ERROR: ErrUnavailable if no copy is on the shelf
func Decide(s State, command Command) core.DecisionResult[circulation.BorrowRequest] {
	if s.HasPendingRequest {
		return core.ErrorDecision[circulation.BorrowRequest](circulation.ErrDuplicateRequest)
	}

	if s.HasActiveLoan {
		return core.ErrorDecision[circulation.BorrowRequest](circulation.ErrAlreadyBorrowed)
	}

	if s.BookNotFound {
		return core.ErrorDecision[circulation.BorrowRequest](circulation.ErrNotFound)
	}

	if s.AvailableCopies <= 0 {
		return core.ErrorDecision[circulation.BorrowRequest](circulation.ErrUnavailable)
	}

	title := command.Title
	if title == "" {
		title = s.CatalogTitle
	}

	return core.SuccessDecision(circulation.BorrowRequest{
		RequestID: command.RequestID,
		UserID:    command.UserID,
		BookID:    command.BookID,
		BookTitle: title,
		Approved:  false,
		CreatedAt: command.OccurredAt,
	})
}
