package notify

import (
	"context"
	"time"

	"github.com/rishithapentyala/Library-Management-System/circulation"
)

const (
	// DueSoonWindow is how long before the due date the reminder is sent.
	DueSoonWindow = 24 * time.Hour

	logMsgScanStarted   = "overdue scan started"
	logMsgScanCompleted = "overdue scan completed"
	logMsgScanFailed    = "overdue scan failed"
	logMsgPublishFailed = "publishing notification failed"
	logAttrDueSoon      = "due_soon"
	logAttrOverdue      = "overdue"
)

// LoanReader defines the read operations needed by the OverdueNotifier.
type LoanReader interface {
	ActiveLoans(ctx context.Context) ([]circulation.Loan, error)
}

// ScanResult counts the notifications of one scan.
type ScanResult struct {
	DueSoon int
	Overdue int
}

// OverdueNotifier periodically reminds borrowers of due and overdue loans.
// An overdue loan is reported on every scan until it is returned.
type OverdueNotifier struct {
	reader    LoanReader
	publisher Publisher
	interval  time.Duration
	now       func() time.Time
	logger    circulation.ContextualLogger
}

// NotifierOption configures an OverdueNotifier.
type NotifierOption func(*OverdueNotifier)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) NotifierOption {
	return func(n *OverdueNotifier) {
		n.now = now
	}
}

// WithNotifierLogger sets the logger of the OverdueNotifier.
func WithNotifierLogger(logger circulation.ContextualLogger) NotifierOption {
	return func(n *OverdueNotifier) {
		n.logger = logger
	}
}

// NewOverdueNotifier creates an OverdueNotifier scanning every interval.
func NewOverdueNotifier(reader LoanReader, publisher Publisher, interval time.Duration, opts ...NotifierOption) *OverdueNotifier {
	n := &OverdueNotifier{
		reader:    reader,
		publisher: publisher,
		interval:  interval,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Run scans once right away and then on every tick until ctx is done.
func (n *OverdueNotifier) Run(ctx context.Context) {
	ticker := time.NewTicker(n.interval)
	defer ticker.Stop()

	for {
		if _, err := n.Scan(ctx); err != nil && ctx.Err() == nil {
			n.log().ErrorContext(ctx, logMsgScanFailed, logAttrError, err.Error())
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Scan publishes a reminder for each loan due within DueSoonWindow and a warning for each overdue loan.
func (n *OverdueNotifier) Scan(ctx context.Context) (ScanResult, error) {
	n.log().DebugContext(ctx, logMsgScanStarted)

	loans, err := n.reader.ActiveLoans(circulation.WithEventualConsistency(ctx))
	if err != nil {
		return ScanResult{}, err
	}

	now := n.now().UTC()
	result := ScanResult{}

	for _, loan := range loans {
		var notification Notification

		switch untilDue := loan.DueDate.Sub(now); {
		case loan.Overdue(now):
			notification = Overdue(loan, now)
			result.Overdue++
		case untilDue > 0 && untilDue <= DueSoonWindow:
			notification = DueSoon(loan, now)
			result.DueSoon++
		default:
			continue
		}

		if err = n.publisher.Publish(ctx, notification); err != nil {
			n.log().WarnContext(ctx, logMsgPublishFailed, logAttrUserID, loan.UserID.String(), logAttrError, err.Error())

			if ctx.Err() != nil {
				return result, ctx.Err()
			}
		}
	}

	n.log().InfoContext(ctx, logMsgScanCompleted, logAttrDueSoon, result.DueSoon, logAttrOverdue, result.Overdue)

	return result, nil
}

func (n *OverdueNotifier) log() circulation.ContextualLogger {
	return orDiscard(n.logger)
}

func orDiscard(logger circulation.ContextualLogger) circulation.ContextualLogger {
	if logger == nil {
		return discardLogger{}
	}

	return logger
}

type discardLogger struct{}

func (discardLogger) DebugContext(context.Context, string, ...any) {}
func (discardLogger) InfoContext(context.Context, string, ...any)  {}
func (discardLogger) WarnContext(context.Context, string, ...any)  {}
func (discardLogger) ErrorContext(context.Context, string, ...any) {}
