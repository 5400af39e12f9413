package trackedloans

import (
	"context"

	"github.com/rishithapentyala/Library-Management-System/circulation"
)

// Reader defines the read operations needed by the QueryHandler.
type Reader interface {
	TrackedLoans(ctx context.Context) ([]circulation.TrackedLoan, error)
}

// QueryHandler reads all loans.
type QueryHandler struct {
	reader Reader
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(reader Reader) QueryHandler {
	return QueryHandler{reader: reader}
}

// Handle executes Read -> Project.
func (h QueryHandler) Handle(ctx context.Context, query Query) (TrackedLoans, error) {
	loans, err := h.reader.TrackedLoans(ctx)
	if err != nil {
		return TrackedLoans{}, err
	}

	return Project(loans, query), nil
}
