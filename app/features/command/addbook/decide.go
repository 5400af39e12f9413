package addbook

import (
	"github.com/rishithapentyala/Library-Management-System/app/shared/core"
	"github.com/rishithapentyala/Library-Management-System/circulation"
)

// State holds the facts Decide needs.
type State struct {
	AlreadyAdded bool
}

// Decide implements the business rules for adding a book.
//
//	GIVEN: A complete catalog entry with at least one copy
//	WHEN: AddBook command is received
//	THEN: the book is added with AvailableCopies == TotalCopies
//	IDEMPOTENT: if a book with this BookID exists
//	ERROR: ErrInvalidBook if a text field is empty or copies < 1
func Decide(s State, command Command) core.DecisionResult[circulation.Book] {
	if command.Title == "" || command.Author == "" || command.Edition == "" || command.Subject == "" {
		return core.ErrorDecision[circulation.Book](circulation.ErrInvalidBook)
	}

	if command.Copies < 1 {
		return core.ErrorDecision[circulation.Book](circulation.ErrInvalidBook)
	}

	if s.AlreadyAdded {
		return core.IdempotentDecision[circulation.Book]()
	}

	return core.SuccessDecision(circulation.Book{
		BookID:          command.BookID,
		Title:           command.Title,
		Author:          command.Author,
		Edition:         command.Edition,
		Subject:         command.Subject,
		TotalCopies:     command.Copies,
		AvailableCopies: command.Copies,
	})
}
