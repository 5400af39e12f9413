package requeststatus

import (
	"context"

	"github.com/google/uuid"

	"github.com/rishithapentyala/Library-Management-System/circulation"
)

// Reader defines the read operations needed by the QueryHandler.
type Reader interface {
	LatestRequest(ctx context.Context, userID, bookID uuid.UUID) (circulation.BorrowRequest, bool, error)
}

// QueryHandler reads the status of a request.
type QueryHandler struct {
	reader Reader
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(reader Reader) QueryHandler {
	return QueryHandler{reader: reader}
}

// Handle reads with strong consistency so that a student sees their own request right after submitting it.
func (h QueryHandler) Handle(ctx context.Context, query Query) (RequestStatus, error) {
	request, found, err := h.reader.LatestRequest(ctx, query.UserID, query.BookID)
	if err != nil {
		return RequestStatus{}, err
	}

	return Project(request, found, query), nil
}
