package borrowrequests

import (
	"time"

	"github.com/google/uuid"
)

// RequestInfo is a request with its requester.
type RequestInfo struct {
	RequestID uuid.UUID `json:"requestId"`
	BookID    uuid.UUID `json:"bookId"`
	BookTitle string    `json:"bookTitle"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    uuid.UUID `json:"userId"`
	UserName  string    `json:"userName"`
	UserEmail string    `json:"userEmail"`
}

// BorrowRequests is the query result.
type BorrowRequests struct {
	Requests     []RequestInfo `json:"requests"`
	Count        int           `json:"count"`
	PendingCount int           `json:"pendingCount"`
}
