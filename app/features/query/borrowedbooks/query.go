package borrowedbooks

import (
	"time"

	"github.com/google/uuid"
)

const (
	queryType = "BorrowedBooks"
)

// Query represents the intent of a user to see their loans. At is the instant fines are projected for.
type Query struct {
	UserID uuid.UUID
	At     time.Time
}

// BuildQuery creates a new Query with the provided parameters.
func BuildQuery(userID uuid.UUID, at time.Time) Query {
	return Query{UserID: userID, At: at.UTC()}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
