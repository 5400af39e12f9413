package markreturned

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

// CommandHandler closes loans.
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

// Handle returns the loan and the copy, it reports the returned loan with its final fine.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult[circulation.Loan], error) {
	var loan circulation.Loan

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		var execErr error
		loan, execErr = h.executeCommand(retryCtx, command)

		return execErr
	}, h.retryOptions...)

	if err != nil {
		return shell.NewErrorResult[circulation.Loan](retryMetrics), err
	}

	return shell.NewSuccessResult(loan, retryMetrics), nil
}

func (h CommandHandler) executeCommand(ctx context.Context, command Command) (circulation.Loan, error) {
	var returned circulation.Loan

	err := h.engine.WithinTx(ctx, func(ctx context.Context, tx circulation.Tx) error {
		s := State{}

		loan, err := tx.LockLoan(ctx, command.LoanID)
		switch {
		case errors.Is(err, circulation.ErrNotFound):
			s.LoanNotFound = true
		case err != nil:
			return err
		default:
			s.Loan = loan
		}

		result := Decide(s, command)
		if decisionErr := result.HasError(); decisionErr != nil {
			return decisionErr
		}

		returned = result.Effect

		if err = tx.MarkLoanReturned(ctx, returned.LoanID, returned.Fine, returned.ReturnedAt); err != nil {
			return err
		}

		return tx.AdjustAvailableCopies(ctx, returned.BookID, +1)
	})

	return returned, err
}
