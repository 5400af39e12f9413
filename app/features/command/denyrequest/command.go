package denyrequest

import (
	"time"

	"github.com/google/uuid"

	"github.com/rishithapentyala/Library-Management-System/app/shared/core"
)

const (
	commandType = "DenyRequest"
)

// Command represents a librarian denying a pending borrow request.
type Command struct {
	RequestID  uuid.UUID
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(requestID uuid.UUID, occurredAt time.Time) Command {
	return Command{
		RequestID:  requestID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
