package borrowrequests

import (
	"context"

	"github.com/rishithapentyala/Library-Management-System/circulation"
)

// Reader defines the read operations needed by the QueryHandler.
type Reader interface {
	TrackedRequests(ctx context.Context) ([]circulation.TrackedRequest, error)
}

// QueryHandler reads the request queue.
type QueryHandler struct {
	reader Reader
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(reader Reader) QueryHandler {
	return QueryHandler{reader: reader}
}

// Handle executes Read -> Project.
func (h QueryHandler) Handle(ctx context.Context, query Query) (BorrowRequests, error) {
	requests, err := h.reader.TrackedRequests(ctx)
	if err != nil {
		return BorrowRequests{}, err
	}

	return Project(requests, query), nil
}
