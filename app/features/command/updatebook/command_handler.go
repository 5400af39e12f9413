package updatebook

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

// CommandHandler updates catalog entries.
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

// Handle updates the book and returns it as stored.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult[circulation.Book], error) {
	var (
		book         circulation.Book
		isIdempotent bool
	)

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		var execErr error
		book, isIdempotent, execErr = h.executeCommand(retryCtx, command)

		return execErr
	}, h.retryOptions...)

	if err != nil {
		return shell.NewErrorResult[circulation.Book](retryMetrics), err
	}

	if isIdempotent {
		return shell.NewIdempotentResult(book, retryMetrics), nil
	}

	return shell.NewSuccessResult(book, retryMetrics), nil
}

func (h CommandHandler) executeCommand(ctx context.Context, command Command) (circulation.Book, bool, error) {
	var (
		book         circulation.Book
		isIdempotent bool
	)

	err := h.engine.WithinTx(ctx, func(ctx context.Context, tx circulation.Tx) error {
		s := State{}

		current, err := tx.LockBook(ctx, command.BookID)
		switch {
		case errors.Is(err, circulation.ErrNotFound):
			s.BookNotFound = true
		case err != nil:
			return err
		default:
			s.Book = current
		}

		result := Decide(s, command)
		if decisionErr := result.HasError(); decisionErr != nil {
			return decisionErr
		}

		if result.IsIdempotent() {
			book, isIdempotent = current, true
			return nil
		}

		book = result.Effect

		return tx.UpdateBook(ctx, book)
	})

	return book, isIdempotent, err
}
