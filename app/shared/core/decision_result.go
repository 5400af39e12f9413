package core

// DecisionResult represents the outcome of a business decision in a Decide function.
// Effect is the change the command handler applies to storage, for example the loan to insert.
//
// IMPORTANT: DecisionResult should only be constructed using the provided factory methods:
// IdempotentDecision(), SuccessDecision(effect), or ErrorDecision(err).
type DecisionResult[E any] struct {
	Outcome string // "idempotent", "success", or "error"
	Effect  E      // zero value unless the outcome is success
	Err     error
}

const (
	idempotentOutcome = "idempotent"
	successOutcome    = "success"
	errorOutcome      = "error"
)

// IdempotentDecision creates a DecisionResult indicating no state change is needed.
func IdempotentDecision[E any]() DecisionResult[E] {
	return DecisionResult[E]{
		Outcome: idempotentOutcome,
	}
}

// SuccessDecision creates a DecisionResult indicating a state change described by effect.
func SuccessDecision[E any](effect E) DecisionResult[E] {
	return DecisionResult[E]{
		Outcome: successOutcome,
		Effect:  effect,
	}
}

// ErrorDecision creates a DecisionResult indicating a business rule violation.
func ErrorDecision[E any](err error) DecisionResult[E] {
	return DecisionResult[E]{
		Outcome: errorOutcome,
		Err:     err,
	}
}

// HasEffectToApply returns true if the handler has to write the effect.
func (r DecisionResult[E]) HasEffectToApply() bool {
	return r.Outcome == successOutcome
}

// IsIdempotent returns true if the command was already fulfilled.
func (r DecisionResult[E]) IsIdempotent() bool {
	return r.Outcome == idempotentOutcome
}

// HasError returns the error if there is one, otherwise nil.
func (r DecisionResult[E]) HasError() error {
	if r.Outcome == errorOutcome {
		return r.Err
	}

	return nil
}
