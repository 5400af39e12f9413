package denyrequest

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

// CommandHandler deletes pending requests.
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

// Handle denies the request and returns it as it was before deletion,
// so that the requester can be notified.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult[circulation.BorrowRequest], error) {
	var denied circulation.BorrowRequest

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		var execErr error
		denied, execErr = h.executeCommand(retryCtx, command)

		return execErr
	}, h.retryOptions...)

	if err != nil {
		return shell.NewErrorResult[circulation.BorrowRequest](retryMetrics), err
	}

	return shell.NewSuccessResult(denied, retryMetrics), nil
}

func (h CommandHandler) executeCommand(ctx context.Context, command Command) (circulation.BorrowRequest, error) {
	var denied circulation.BorrowRequest

	err := h.engine.WithinTx(ctx, func(ctx context.Context, tx circulation.Tx) error {
		s := State{}

		request, err := tx.LockRequest(ctx, command.RequestID)
		switch {
		case errors.Is(err, circulation.ErrNotFound):
			s.RequestNotFound = true
		case err != nil:
			return err
		default:
			s.Request = request
		}

		result := Decide(s, command)
		if decisionErr := result.HasError(); decisionErr != nil {
			return decisionErr
		}

		if err = tx.DeleteRequest(ctx, command.RequestID); err != nil {
			return err
		}

		denied = result.Effect

		return nil
	})

	return denied, err
}
