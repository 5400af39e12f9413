package shell

import "context"

// Command represents the contract for all command types.
// The CommandType method enables polymorphic handling and observability instrumentation.
type Command interface {
	CommandType() string
}

// CommandHandler defines the contract for components that process commands.
// The generic parameter V is the value a successful command yields.
// Core handlers implement it with pure business logic plus retry;
// the observable wrapper implements it as a decorator.
type CommandHandler[C Command, V any] interface {
	Handle(ctx context.Context, command C) (HandlerResult[V], error)
}

// Query represents the contract for all query types.
type Query interface {
	QueryType() string
}

// QueryHandler defines the contract for components that process queries and return projections.
// Implementations read from the engine and delegate to pure projection functions.
type QueryHandler[Q Query, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// NoValue is the value of commands that do not yield an entity, e.g. denying a request.
type NoValue struct{}
