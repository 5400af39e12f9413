package circulation

import "context"

// ConsistencyLevel defines which database a read may be served from.
type ConsistencyLevel int

const (
	// StrongConsistency reads from the primary database. It is the default, so that a librarian
	// who just approved a request sees the resulting loan in the next listing.
	StrongConsistency ConsistencyLevel = iota

	// EventualConsistency allows reads from a replica, if the engine has one configured.
	// Suitable for catalog browsing and dashboards that tolerate slightly stale counters.
	EventualConsistency
)

type contextKey string

// ConsistencyLevelKey is the context key used to store the consistency level preference.
const ConsistencyLevelKey contextKey = "circulation.consistency_level"

// WithStrongConsistency returns a context that routes Reader calls to the primary database.
func WithStrongConsistency(ctx context.Context) context.Context {
	return context.WithValue(ctx, ConsistencyLevelKey, StrongConsistency)
}

// WithEventualConsistency returns a context that allows Reader calls to use a replica.
//
// Example usage:
//
//	ctx = circulation.WithEventualConsistency(ctx)
//	books, err := engine.Books(ctx)
func WithEventualConsistency(ctx context.Context) context.Context {
	return context.WithValue(ctx, ConsistencyLevelKey, EventualConsistency)
}

// GetConsistencyLevel extracts the consistency level from the context, defaulting to StrongConsistency.
// Transactions always run on the primary regardless of this value.
func GetConsistencyLevel(ctx context.Context) ConsistencyLevel {
	if level, ok := ctx.Value(ConsistencyLevelKey).(ConsistencyLevel); ok {
		return level
	}

	return StrongConsistency
}

func (c ConsistencyLevel) String() string {
	switch c {
	case StrongConsistency:
		return "strong"
	case EventualConsistency:
		return "eventual"
	default:
		return "unknown"
	}
}
