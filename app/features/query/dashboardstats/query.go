package dashboardstats

import (
	"time"
)

const (
	queryType = "DashboardStats"
)

// Query represents the intent to see the library's counters at At.
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
