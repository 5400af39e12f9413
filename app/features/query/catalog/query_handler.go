package catalog

import (
	"context"

	"github.com/rishithapentyala/Library-Management-System/circulation"
)

// Reader defines the read operations needed by the QueryHandler.
type Reader interface {
	Books(ctx context.Context) ([]circulation.Book, error)
}

// QueryHandler reads the catalog.
type QueryHandler struct {
	reader Reader
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(reader Reader) QueryHandler {
	return QueryHandler{reader: reader}
}

// Handle executes Read -> Project.
func (h QueryHandler) Handle(ctx context.Context, query Query) (Catalog, error) {
	books, err := h.reader.Books(circulation.WithEventualConsistency(ctx))
	if err != nil {
		return Catalog{}, err
	}

	return Project(books, query), nil
}
