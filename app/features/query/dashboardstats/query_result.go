package dashboardstats

// DashboardStats is the query result.
type DashboardStats struct {
	TotalCopies      int `json:"totalCopies"`
	AvailableCopies  int `json:"availableCopies"`
	Users            int `json:"users"`
	PendingRequests  int `json:"pendingRequests"`
	ActiveLoans      int `json:"activeLoans"`
	OverdueLoans     int `json:"overdueLoans"`
	OutstandingFines int `json:"outstandingFines"`
}
