package requeststatus

import (
	"github.com/google/uuid"
)

const (
	queryType = "RequestStatus"
)

// Query represents the intent of a user to check their request for a book.
type Query struct {
	UserID uuid.UUID
	BookID uuid.UUID
}

// BuildQuery creates a new Query with the provided parameters.
func BuildQuery(userID, bookID uuid.UUID) Query {
	return Query{UserID: userID, BookID: bookID}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
