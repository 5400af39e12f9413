package dashboardstats

import (
	"context"

	"github.com/rishithapentyala/Library-Management-System/circulation"
)

// Reader defines the read operations needed by the QueryHandler.
type Reader interface {
	Totals(ctx context.Context) (circulation.Totals, error)
	ActiveLoans(ctx context.Context) ([]circulation.Loan, error)
}

// QueryHandler reads the dashboard counters.
type QueryHandler struct {
	reader Reader
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(reader Reader) QueryHandler {
	return QueryHandler{reader: reader}
}

// Handle reads with eventual consistency, the dashboard tolerates replica lag.
func (h QueryHandler) Handle(ctx context.Context, query Query) (DashboardStats, error) {
	ctx = circulation.WithEventualConsistency(ctx)

	totals, err := h.reader.Totals(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	activeLoans, err := h.reader.ActiveLoans(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	return Project(totals, activeLoans, query), nil
}
