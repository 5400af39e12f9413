package borrowrequests

const (
	queryType = "BorrowRequests"
)

// Query represents the intent to see the request queue. PendingOnly hides approved history.
type Query struct {
	PendingOnly bool
}

// BuildQuery creates a new Query.
func BuildQuery(pendingOnly bool) Query {
	return Query{PendingOnly: pendingOnly}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
