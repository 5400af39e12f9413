package dashboardstats

import (
	"github.com/rishithapentyala/Library-Management-System/circulation"
)

// Project combines the stored counters with the fines projected from the active loans.
func Project(totals circulation.Totals, activeLoans []circulation.Loan, query Query) DashboardStats {
	stats := DashboardStats{
		TotalCopies:     totals.TotalCopies,
		AvailableCopies: totals.AvailableCopies,
		Users:           totals.Users,
		PendingRequests: totals.PendingRequests,
		ActiveLoans:     totals.ActiveLoans,
	}

	for _, loan := range activeLoans {
		if loan.Overdue(query.At) {
			stats.OverdueLoans++
		}

		stats.OutstandingFines += loan.ProjectedFine(query.At)
	}

	return stats
}
