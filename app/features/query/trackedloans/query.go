package trackedloans

import (
	"time"
)

const (
	queryType = "TrackedLoans"
)

// Query represents the intent to see all loans. At is the instant fines are projected for.
type Query struct {
	At time.Time
}

// BuildQuery creates a new Query.
func BuildQuery(at time.Time) Query {
	return Query{At: at.UTC()}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
