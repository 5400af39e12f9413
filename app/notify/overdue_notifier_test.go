package notify_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishithapentyala/Library-Management-System/app/notify"
	"github.com/rishithapentyala/Library-Management-System/circulation"
	"github.com/rishithapentyala/Library-Management-System/testutil/fixtures"
	"github.com/rishithapentyala/Library-Management-System/testutil/observability/testdoubles"
)

const day = 24 * time.Hour

type loanReaderStub struct {
	loans []circulation.Loan
	err   error
}

func (s loanReaderStub) ActiveLoans(context.Context) ([]circulation.Loan, error) {
	return s.loans, s.err
}

type publisherSpy struct {
	mu            sync.Mutex
	notifications []notify.Notification
	err           error
}

func (p *publisherSpy) Publish(_ context.Context, notification notify.Notification) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.notifications = append(p.notifications, notification)

	return p.err
}

func (p *publisherSpy) published() []notify.Notification {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]notify.Notification(nil), p.notifications...)
}

func loanDue(due time.Time) circulation.Loan {
	return circulation.Loan{
		LoanID:    uuid.New(),
		RequestID: uuid.New(),
		UserID:    uuid.New(),
		BookID:    uuid.New(),
		BookTitle: "Clean Code",
		IssueDate: due.Add(-30 * day),
		DueDate:   due,
	}
}

func Test_OverdueNotifier_Scan_RemindsAndWarns(t *testing.T) {
	// setup
	now := fixtures.FakeClock().Add(100 * day)
	overdue := loanDue(now.Add(-5 * day))
	dueSoon := loanDue(now.Add(12 * time.Hour))
	dueLater := loanDue(now.Add(10 * day))
	publisher := &publisherSpy{}
	logger := testdoubles.NewContextualLoggerSpy()
	notifier := notify.NewOverdueNotifier(
		loanReaderStub{loans: []circulation.Loan{overdue, dueSoon, dueLater}},
		publisher,
		time.Hour,
		notify.WithClock(func() time.Time { return now }),
		notify.WithNotifierLogger(logger),
	)

	// act
	result, err := notifier.Scan(context.Background())

	// assert
	require.NoError(t, err)
	assert.Equal(t, notify.ScanResult{DueSoon: 1, Overdue: 1}, result)

	published := publisher.published()
	require.Len(t, published, 2)

	assert.Equal(t, notify.KindOverdue, published[0].Kind)
	assert.Equal(t, overdue.UserID, published[0].UserID)
	assert.Equal(t, 5, published[0].Fine)
	assert.Contains(t, published[0].Message, "Clean Code")

	assert.Equal(t, notify.KindDueSoon, published[1].Kind)
	assert.Equal(t, dueSoon.UserID, published[1].UserID)
	assert.Zero(t, published[1].Fine)

	assert.True(t, logger.HasLog("info", "overdue scan completed"))
}

func Test_OverdueNotifier_Scan_ContinuesWhenPublishingFails(t *testing.T) {
	// setup
	now := fixtures.FakeClock().Add(100 * day)
	publisher := &publisherSpy{err: errors.New("hub is full")}
	logger := testdoubles.NewContextualLoggerSpy()
	notifier := notify.NewOverdueNotifier(
		loanReaderStub{loans: []circulation.Loan{loanDue(now.Add(-day)), loanDue(now.Add(-2 * day))}},
		publisher,
		time.Hour,
		notify.WithClock(func() time.Time { return now }),
		notify.WithNotifierLogger(logger),
	)

	// act
	result, err := notifier.Scan(context.Background())

	// assert
	require.NoError(t, err)
	assert.Equal(t, 2, result.Overdue)
	assert.Len(t, publisher.published(), 2)
	assert.Len(t, logger.RecordsAt("warn"), 2)
}

func Test_OverdueNotifier_Scan_ReturnsReaderError(t *testing.T) {
	// setup
	readErr := errors.New("database down")
	notifier := notify.NewOverdueNotifier(loanReaderStub{err: readErr}, &publisherSpy{}, time.Hour)

	// act
	_, err := notifier.Scan(context.Background())

	// assert
	assert.ErrorIs(t, err, readErr)
}

func Test_OverdueNotifier_Run_ScansImmediatelyAndStops(t *testing.T) {
	// setup
	now := fixtures.FakeClock().Add(100 * day)
	publisher := &publisherSpy{}
	notifier := notify.NewOverdueNotifier(
		loanReaderStub{loans: []circulation.Loan{loanDue(now.Add(-day))}},
		publisher,
		time.Hour,
		notify.WithClock(func() time.Time { return now }),
	)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	// act
	go func() {
		notifier.Run(ctx)
		close(done)
	}()

	// assert
	assert.Eventually(t, func() bool { return len(publisher.published()) == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	assert.Eventually(t, func() bool {
		select {
		case <-done:
			return true
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}

func requestOf(loan circulation.Loan) circulation.BorrowRequest {
	return circulation.BorrowRequest{
		RequestID: loan.RequestID,
		UserID:    loan.UserID,
		BookID:    loan.BookID,
		BookTitle: loan.BookTitle,
		CreatedAt: loan.IssueDate,
	}
}
