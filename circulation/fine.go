package circulation

import "time"

const (
	// LoanPeriodDays is the number of days a copy may be kept.
	LoanPeriodDays = 30

	// FinePerOverdueDay is charged for each whole day a copy is kept past its due date.
	FinePerOverdueDay = 1

	day = 24 * time.Hour
)

// DueDateFor returns the due date of a loan issued at issueDate.
func DueDateFor(issueDate time.Time) time.Time {
	return issueDate.Add(LoanPeriodDays * day)
}

// FineFor returns the fine for a copy that is due at dueDate and returned (or still held) at now.
// Partial days are not charged.
func FineFor(dueDate, now time.Time) int {
	if !now.After(dueDate) {
		return 0
	}

	overdueDays := int(now.Sub(dueDate) / day)

	return overdueDays * FinePerOverdueDay
}

// ProjectedFine returns the fine the loan would carry at now.
// Returned loans keep their stored fine, unreturned loans are projected without mutating the loan.
func (l Loan) ProjectedFine(now time.Time) int {
	if l.Returned {
		return l.Fine
	}

	return FineFor(l.DueDate, now)
}

// WithProjectedFine returns a copy of the loan with Fine set to ProjectedFine(now).
func (l Loan) WithProjectedFine(now time.Time) Loan {
	l.Fine = l.ProjectedFine(now)
	return l
}

// Overdue reports whether an unreturned loan is past its due date at now.
func (l Loan) Overdue(now time.Time) bool {
	return !l.Returned && now.After(l.DueDate)
}
