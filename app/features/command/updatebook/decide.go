package updatebook

import (
	"github.com/rishithapentyala/Library-Management-System/app/shared/core"
	"github.com/rishithapentyala/Library-Management-System/circulation"
)

// State holds the facts Decide needs.
type State struct {
	BookNotFound bool
	Book         circulation.Book
}

// Decide implements the business rules for updating a book.
//
//	GIVEN: A book in the catalog
//	WHEN: UpdateBook command is received
//	THEN: the fields are replaced, AvailableCopies moves by the change of TotalCopies
//	IDEMPOTENT: if nothing changes
//	ERROR: ErrInvalidBook if a text field is empty or copies < 1
//	ERROR: ErrNotFound if the book does not exist
//	ERROR: ErrCopiesBelowBorrowed if fewer copies would remain than are lent out
func Decide(s State, command Command) core.DecisionResult[circulation.Book] {
	if command.Title == "" || command.Author == "" || command.Edition == "" || command.Subject == "" || command.Copies < 1 {
		return core.ErrorDecision[circulation.Book](circulation.ErrInvalidBook)
	}

	if s.BookNotFound {
		return core.ErrorDecision[circulation.Book](circulation.ErrNotFound)
	}

	available := s.Book.AvailableCopies + command.Copies - s.Book.TotalCopies
	if available < 0 {
		return core.ErrorDecision[circulation.Book](circulation.ErrCopiesBelowBorrowed)
	}

	updated := circulation.Book{
		BookID:          s.Book.BookID,
		Title:           command.Title,
		Author:          command.Author,
		Edition:         command.Edition,
		Subject:         command.Subject,
		TotalCopies:     command.Copies,
		AvailableCopies: available,
	}

	if updated == s.Book {
		return core.IdempotentDecision[circulation.Book]()
	}

	return core.SuccessDecision(updated)
}
