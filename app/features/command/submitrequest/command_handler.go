package submitrequest

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
// External wrappers handle all observability concerns.
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

// Handle submits the request and returns it.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult[circulation.BorrowRequest], error) {
	var request circulation.BorrowRequest

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		var execErr error
		request, execErr = h.executeCommand(retryCtx, command)

		return execErr
	}, h.retryOptions...)

	if err != nil {
		return shell.NewErrorResult[circulation.BorrowRequest](retryMetrics), err
	}

	return shell.NewSuccessResult(request, retryMetrics), nil
}

func (h CommandHandler) executeCommand(ctx context.Context, command Command) (circulation.BorrowRequest, error) {
	var request circulation.BorrowRequest

	err := h.engine.WithinTx(ctx, func(ctx context.Context, tx circulation.Tx) error {
		s, err := gatherState(ctx, tx, command)
		if err != nil {
			return err
		}

		result := Decide(s, command)
		if decisionErr := result.HasError(); decisionErr != nil {
			return decisionErr
		}

		if err = tx.InsertRequest(ctx, result.Effect); err != nil {
			return err
		}

		request = result.Effect

		return nil
	})

	return request, err
}

// gatherState locks the book first, which serializes concurrent requests for the same book.
func gatherState(ctx context.Context, tx circulation.Tx, command Command) (State, error) {
	s := State{}

	book, err := tx.LockBook(ctx, command.BookID)
	switch {
	case errors.Is(err, circulation.ErrNotFound):
		s.BookNotFound = true
	case err != nil:
		return State{}, err
	default:
		s.AvailableCopies = book.AvailableCopies
		s.CatalogTitle = book.Title
	}

	if s.HasPendingRequest, err = tx.HasPendingRequest(ctx, command.UserID, command.BookID); err != nil {
		return State{}, err
	}

	if s.HasActiveLoan, err = tx.HasActiveLoan(ctx, command.UserID, command.BookID); err != nil {
		return State{}, err
	}

	return s, nil
}
