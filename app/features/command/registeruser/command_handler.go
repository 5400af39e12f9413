package registeruser

import (
	"context"

	"github.com/rishithapentyala/Library-Management-System/app/shared/shell"
	"github.com/rishithapentyala/Library-Management-System/circulation"
)

// Engine defines the storage operations needed by the CommandHandler.
type Engine interface {
	WithinTx(ctx context.Context, fn circulation.TxFunc) error
}

// CommandHandler registers users.
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

// Handle registers the user and returns the directory entry.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult[circulation.User], error) {
	var user circulation.User

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		var execErr error
		user, execErr = h.executeCommand(retryCtx, command)

		return execErr
	}, h.retryOptions...)

	if err != nil {
		return shell.NewErrorResult[circulation.User](retryMetrics), err
	}

	return shell.NewSuccessResult(user, retryMetrics), nil
}

func (h CommandHandler) executeCommand(ctx context.Context, command Command) (circulation.User, error) {
	var user circulation.User

	err := h.engine.WithinTx(ctx, func(ctx context.Context, tx circulation.Tx) error {
		taken, err := tx.EmailTaken(ctx, command.Email)
		if err != nil {
			return err
		}

		result := Decide(State{EmailTaken: taken}, command)
		if decisionErr := result.HasError(); decisionErr != nil {
			return decisionErr
		}

		// the unique index still guards against a concurrent registration of the same email
		if err = tx.InsertUser(ctx, result.Effect); err != nil {
			return err
		}

		user = result.Effect

		return nil
	})

	return user, err
}
