package approverequest

import (
	"time"

	"github.com/google/uuid"

	"github.com/rishithapentyala/Library-Management-System/app/shared/core"
)

const (
	commandType = "ApproveRequest"
)

// Command represents a librarian approving a pending borrow request.
// LoanID is the id of the loan to create.
type Command struct {
	RequestID  uuid.UUID
	LoanID     uuid.UUID
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(requestID, loanID uuid.UUID, occurredAt time.Time) Command {
	return Command{
		RequestID:  requestID,
		LoanID:     loanID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
