package markreturned

import (
	"time"

	"github.com/google/uuid"

	"github.com/rishithapentyala/Library-Management-System/app/shared/core"
)

const (
	commandType = "MarkReturned"
)

// Command represents a librarian taking back a borrowed copy.
type Command struct {
	LoanID     uuid.UUID
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(loanID uuid.UUID, occurredAt time.Time) Command {
	return Command{
		LoanID:     loanID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
