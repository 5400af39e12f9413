package removebook

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

// CommandHandler removes books.
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

// Handle removes the book.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult[shell.NoValue], error) {
	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		return h.executeCommand(retryCtx, command)
	}, h.retryOptions...)

	if err != nil {
		return shell.NewErrorResult[shell.NoValue](retryMetrics), err
	}

	return shell.NewSuccessResult(shell.NoValue{}, retryMetrics), nil
}

func (h CommandHandler) executeCommand(ctx context.Context, command Command) error {
	return h.engine.WithinTx(ctx, func(ctx context.Context, tx circulation.Tx) error {
		s, err := gatherState(ctx, tx, command)
		if err != nil {
			return err
		}

		result := Decide(s, command)
		if decisionErr := result.HasError(); decisionErr != nil {
			return decisionErr
		}

		return tx.DeleteBook(ctx, result.Effect)
	})
}

// gatherState locks the book first so that no request or approval can slip in between counting and deleting.
func gatherState(ctx context.Context, tx circulation.Tx, command Command) (State, error) {
	_, err := tx.LockBook(ctx, command.BookID)
	if errors.Is(err, circulation.ErrNotFound) {
		return State{BookNotFound: true}, nil
	}
	if err != nil {
		return State{}, err
	}

	activeLoans, err := tx.CountActiveLoansForBook(ctx, command.BookID)
	if err != nil {
		return State{}, err
	}

	pendingRequests, err := tx.CountPendingRequestsForBook(ctx, command.BookID)
	if err != nil {
		return State{}, err
	}

	return State{ActiveLoans: activeLoans, PendingRequests: pendingRequests}, nil
}
