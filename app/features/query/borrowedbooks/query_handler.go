package borrowedbooks

import (
	"context"

	"github.com/google/uuid"

	"github.com/rishithapentyala/Library-Management-System/circulation"
)

// Reader defines the read operations needed by the QueryHandler.
type Reader interface {
	LoansByUser(ctx context.Context, userID uuid.UUID) ([]circulation.Loan, error)
}

// QueryHandler reads a user's loans.
type QueryHandler struct {
	reader Reader
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(reader Reader) QueryHandler {
	return QueryHandler{reader: reader}
}

// Handle executes Read -> Project.
func (h QueryHandler) Handle(ctx context.Context, query Query) (BorrowedBooks, error) {
	loans, err := h.reader.LoansByUser(ctx, query.UserID)
	if err != nil {
		return BorrowedBooks{}, err
	}

	return Project(loans, query), nil
}
