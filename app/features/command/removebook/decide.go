package removebook

import (
	"github.com/google/uuid"

	"github.com/rishithapentyala/Library-Management-System/app/shared/core"
	"github.com/rishithapentyala/Library-Management-System/circulation"
)

// State holds the facts Decide needs.
type State struct {
	BookNotFound    bool
	ActiveLoans     int
	PendingRequests int
}

// Decide implements the business rules for removing a book.
//
//	GIVEN: A book without unreturned loans and pending requests
//	WHEN: RemoveBook command is received
//	THEN: the book, its returned loans and its approved requests are deleted
//	ERROR: ErrNotFound if the book does not exist
//	ERROR: ErrBookInCirculation if a loan or request is still open
func Decide(s State, command Command) core.DecisionResult[uuid.UUID] {
	if s.BookNotFound {
		return core.ErrorDecision[uuid.UUID](circulation.ErrNotFound)
	}

	if s.ActiveLoans > 0 || s.PendingRequests > 0 {
		return core.ErrorDecision[uuid.UUID](circulation.ErrBookInCirculation)
	}

	return core.SuccessDecision(command.BookID)
}
