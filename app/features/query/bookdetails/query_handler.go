package bookdetails

import (
	"context"

	"github.com/google/uuid"

	"github.com/rishithapentyala/Library-Management-System/app/features/query/catalog"
	"github.com/rishithapentyala/Library-Management-System/circulation"
)

// Reader defines the read operations needed by the QueryHandler.
type Reader interface {
	Book(ctx context.Context, bookID uuid.UUID) (circulation.Book, error)
}

// QueryHandler reads one book. It fails with circulation.ErrNotFound for unknown books.
type QueryHandler struct {
	reader Reader
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(reader Reader) QueryHandler {
	return QueryHandler{reader: reader}
}

// Handle reads the book with strong consistency, the details page is what a student requests from.
func (h QueryHandler) Handle(ctx context.Context, query Query) (catalog.BookInfo, error) {
	book, err := h.reader.Book(ctx, query.BookID)
	if err != nil {
		return catalog.BookInfo{}, err
	}

	return catalog.ToBookInfo(book), nil
}
