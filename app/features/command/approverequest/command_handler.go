package approverequest

import (
	"context"
	"errors"

	"github.com/rishithapentyala/Library-Management-System/app/shared/shell"
	"github.com/rishithapentyala/Library-Management-System/circulation"
)

// Engine defines the storage operations needed by the CommandHandler.
type Engine interface {
	WithinTx(ctx context.Context, fn circulation.TxFunc) error
}

// CommandHandler runs Gather -> Decide -> Apply in one transaction and retries on concurrency conflicts.
type CommandHandler struct {
	engine       Engine
	retryOptions []shell.RetryOption
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithRetryOptions sets a custom retry configuration for the handler.
func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(h *CommandHandler) {
		h.retryOptions = opts
	}
}

// NewCommandHandler creates a new CommandHandler with optional configuration.
func NewCommandHandler(engine Engine, opts ...Option) CommandHandler {
	handler := CommandHandler{engine: engine}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle approves the request and returns the loan. For an idempotent approval the loan
// created by the first approval is returned.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult[circulation.Loan], error) {
	var (
		loan         circulation.Loan
		isIdempotent bool
	)

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		var execErr error
		loan, isIdempotent, execErr = h.executeCommand(retryCtx, command)

		return execErr
	}, h.retryOptions...)

	if err != nil {
		return shell.NewErrorResult[circulation.Loan](retryMetrics), err
	}

	if isIdempotent {
		return shell.NewIdempotentResult(loan, retryMetrics), nil
	}

	return shell.NewSuccessResult(loan, retryMetrics), nil
}

func (h CommandHandler) executeCommand(ctx context.Context, command Command) (circulation.Loan, bool, error) {
	var (
		loan         circulation.Loan
		isIdempotent bool
	)

	err := h.engine.WithinTx(ctx, func(ctx context.Context, tx circulation.Tx) error {
		s, err := gatherState(ctx, tx, command)
		if err != nil {
			return err
		}

		result := Decide(s, command)
		if decisionErr := result.HasError(); decisionErr != nil {
			return decisionErr
		}

		if result.IsIdempotent() {
			isIdempotent = true
			loan, err = tx.LoanForRequest(ctx, command.RequestID)

			return err
		}

		// the guarded decrement comes first, it is the write that can fail under contention
		if err = tx.AdjustAvailableCopies(ctx, result.Effect.BookID, -1); err != nil {
			return err
		}

		if err = tx.MarkRequestApproved(ctx, command.RequestID); err != nil {
			return err
		}

		if err = tx.InsertLoan(ctx, result.Effect); err != nil {
			return err
		}

		loan = result.Effect

		return nil
	})

	return loan, isIdempotent, err
}

// gatherState locks the request and then the book, the same order every writer uses.
func gatherState(ctx context.Context, tx circulation.Tx, command Command) (State, error) {
	request, err := tx.LockRequest(ctx, command.RequestID)
	if errors.Is(err, circulation.ErrNotFound) {
		return State{RequestNotFound: true}, nil
	}
	if err != nil {
		return State{}, err
	}

	s := State{Request: request}
	if request.Approved {
		return s, nil
	}

	book, err := tx.LockBook(ctx, request.BookID)
	switch {
	case errors.Is(err, circulation.ErrNotFound):
		s.BookNotFound = true
	case err != nil:
		return State{}, err
	default:
		s.AvailableCopies = book.AvailableCopies
	}

	return s, nil
}
