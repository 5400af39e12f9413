package requeststatus

import (
	"time"

	"github.com/google/uuid"
)

// Status values of a RequestStatus.
const (
	StatusNone     = "none"
	StatusPending  = "pending"
	StatusApproved = "approved"
)

// RequestStatus is the query result. Request fields are zero when Status is StatusNone.
type RequestStatus struct {
	UserID    uuid.UUID  `json:"userId"`
	BookID    uuid.UUID  `json:"bookId"`
	Status    string     `json:"status"`
	RequestID *uuid.UUID `json:"requestId,omitempty"`
	BookTitle string     `json:"bookTitle,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}
