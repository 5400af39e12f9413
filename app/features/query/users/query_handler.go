package users

import (
	"context"

	"github.com/rishithapentyala/Library-Management-System/circulation"
)

// Reader defines the read operations needed by the QueryHandler.
type Reader interface {
	Users(ctx context.Context) ([]circulation.User, error)
}

// QueryHandler reads the user directory.
type QueryHandler struct {
	reader Reader
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(reader Reader) QueryHandler {
	return QueryHandler{reader: reader}
}

// Handle executes Read -> Project.
func (h QueryHandler) Handle(ctx context.Context, query Query) (Users, error) {
	directory, err := h.reader.Users(ctx)
	if err != nil {
		return Users{}, err
	}

	return Project(directory, query), nil
}
