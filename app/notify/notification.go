package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/rishithapentyala/Library-Management-System/circulation"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Notification kinds.
const (
	KindRequestApproved = "request_approved"
	KindRequestDenied   = "request_denied"
	KindLoanReturned    = "loan_returned"
	KindDueSoon         = "due_soon"
	KindOverdue         = "overdue"
)

// Notification is the JSON message sent to a user.
type Notification struct {
	Kind      string     `json:"kind"`
	UserID    uuid.UUID  `json:"userId"`
	Message   string     `json:"message"`
	BookID    uuid.UUID  `json:"bookId"`
	BookTitle string     `json:"bookTitle"`
	RequestID *uuid.UUID `json:"requestId,omitempty"`
	LoanID    *uuid.UUID `json:"loanId,omitempty"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
	Fine      int        `json:"fine"`
	SentAt    time.Time  `json:"sentAt"`
}

// Publisher delivers notifications.
type Publisher interface {
	Publish(ctx context.Context, notification Notification) error
}

// RequestApproved builds the notification for an approved request.
func RequestApproved(loan circulation.Loan, at time.Time) Notification {
	loanID, requestID, dueDate := loan.LoanID, loan.RequestID, loan.DueDate

	return Notification{
		Kind:      KindRequestApproved,
		UserID:    loan.UserID,
		Message:   fmt.Sprintf("Your request for %q was approved, it is due on %s.", loan.BookTitle, loan.DueDate.Format(time.DateOnly)),
		BookID:    loan.BookID,
		BookTitle: loan.BookTitle,
		RequestID: &requestID,
		LoanID:    &loanID,
		DueDate:   &dueDate,
		SentAt:    at,
	}
}

// RequestDenied builds the notification for a denied request.
func RequestDenied(request circulation.BorrowRequest, at time.Time) Notification {
	requestID := request.RequestID

	return Notification{
		Kind:      KindRequestDenied,
		UserID:    request.UserID,
		Message:   fmt.Sprintf("Your request for %q was denied.", request.BookTitle),
		BookID:    request.BookID,
		BookTitle: request.BookTitle,
		RequestID: &requestID,
		SentAt:    at,
	}
}

// LoanReturned builds the notification for a returned loan, it carries the final fine.
func LoanReturned(loan circulation.Loan, at time.Time) Notification {
	loanID := loan.LoanID
	message := fmt.Sprintf("%q was returned.", loan.BookTitle)
	if loan.Fine > 0 {
		message = fmt.Sprintf("%q was returned late, the fine is %d.", loan.BookTitle, loan.Fine)
	}

	return Notification{
		Kind:      KindLoanReturned,
		UserID:    loan.UserID,
		Message:   message,
		BookID:    loan.BookID,
		BookTitle: loan.BookTitle,
		LoanID:    &loanID,
		Fine:      loan.Fine,
		SentAt:    at,
	}
}

// DueSoon builds the reminder for a loan that is due within a day.
func DueSoon(loan circulation.Loan, at time.Time) Notification {
	loanID, dueDate := loan.LoanID, loan.DueDate

	return Notification{
		Kind:      KindDueSoon,
		UserID:    loan.UserID,
		Message:   fmt.Sprintf("Reminder: %q is due on %s.", loan.BookTitle, loan.DueDate.Format(time.DateOnly)),
		BookID:    loan.BookID,
		BookTitle: loan.BookTitle,
		LoanID:    &loanID,
		DueDate:   &dueDate,
		SentAt:    at,
	}
}

// Overdue builds the warning for an overdue loan with the fine projected at at.
func Overdue(loan circulation.Loan, at time.Time) Notification {
	loanID, dueDate := loan.LoanID, loan.DueDate
	fine := loan.ProjectedFine(at)

	return Notification{
		Kind:      KindOverdue,
		UserID:    loan.UserID,
		Message:   fmt.Sprintf("%q is overdue since %s, the fine so far is %d.", loan.BookTitle, loan.DueDate.Format(time.DateOnly), fine),
		BookID:    loan.BookID,
		BookTitle: loan.BookTitle,
		LoanID:    &loanID,
		DueDate:   &dueDate,
		Fine:      fine,
		SentAt:    at,
	}
}

// Encode returns the wire form of a notification.
func Encode(notification Notification) ([]byte, error) {
	return json.Marshal(notification)
}
