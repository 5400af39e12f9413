package submitrequest

import (
	"time"

	"github.com/google/uuid"

	"github.com/rishithapentyala/Library-Management-System/app/shared/core"
)

const (
	commandType = "SubmitRequest"
)

// Command represents the intent of a user to borrow a book.
// Title is the title the client displayed, it is stored as a snapshot on the request.
type Command struct {
	RequestID  uuid.UUID
	UserID     uuid.UUID
	BookID     uuid.UUID
	Title      string
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(requestID, userID, bookID uuid.UUID, title string, occurredAt time.Time) Command {
	return Command{
		RequestID:  requestID,
		UserID:     userID,
		BookID:     bookID,
		Title:      core.NormalizeText(title),
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
