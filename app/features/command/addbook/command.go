package addbook

import (
	"github.com/google/uuid"

	"github.com/rishithapentyala/Library-Management-System/app/shared/core"
)

const (
	commandType = "AddBook"
)

// Command carries the catalog data of a new book.
type Command struct {
	BookID  uuid.UUID
	Title   string
	Author  string
	Edition string
	Subject string
	Copies  int
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID uuid.UUID, title, author, edition, subject string, copies int) Command {
	return Command{
		BookID:  bookID,
		Title:   core.NormalizeText(title),
		Author:  core.NormalizeText(author),
		Edition: core.NormalizeText(edition),
		Subject: core.NormalizeText(subject),
		Copies:  copies,
	}
}
