package shell

// HandlerResult is what a command handler hands back to its caller and to the observable wrapper:
// the entity the command created or changed, whether anything changed at all, and how many
// attempts the transaction needed.
type HandlerResult[V any] struct {
	// Value is the created or changed entity. For idempotent outcomes it is the entity as it
	// already existed, if the handler can read one.
	Value V

	// Idempotent is true when the command was already satisfied and nothing was written.
	Idempotent bool

	Retries RetryMetrics
}

// NewSuccessResult reports a command that changed state.
func NewSuccessResult[V any](value V, retries RetryMetrics) HandlerResult[V] {
	return HandlerResult[V]{Value: value, Retries: retries}
}

// NewIdempotentResult reports a command that found its effect already in place.
func NewIdempotentResult[V any](value V, retries RetryMetrics) HandlerResult[V] {
	return HandlerResult[V]{Value: value, Idempotent: true, Retries: retries}
}

// NewErrorResult reports a failed command, only the retry metadata is meaningful.
func NewErrorResult[V any](retries RetryMetrics) HandlerResult[V] {
	return HandlerResult[V]{Retries: retries}
}
