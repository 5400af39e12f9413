package addbook

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

// CommandHandler adds books to the catalog.
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

// Handle adds the book and returns it as stored.
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
		existing, err := tx.LockBook(ctx, command.BookID)
		if err != nil && !errors.Is(err, circulation.ErrNotFound) {
			return err
		}

		result := Decide(State{AlreadyAdded: err == nil}, command)
		if decisionErr := result.HasError(); decisionErr != nil {
			return decisionErr
		}

		if result.IsIdempotent() {
			book, isIdempotent = existing, true
			return nil
		}

		book = result.Effect

		return tx.InsertBook(ctx, book)
	})

	return book, isIdempotent, err
}
