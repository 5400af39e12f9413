package requeststatus

import (
	"github.com/rishithapentyala/Library-Management-System/circulation"
)

// Project derives the status from the latest request, found is false if the user never asked for the book.
func Project(request circulation.BorrowRequest, found bool, query Query) RequestStatus {
	status := RequestStatus{
		UserID: query.UserID,
		BookID: query.BookID,
		Status: StatusNone,
	}

	if !found {
		return status
	}

	status.Status = StatusPending
	if request.Approved {
		status.Status = StatusApproved
	}

	requestID, createdAt := request.RequestID, request.CreatedAt
	status.RequestID = &requestID
	status.CreatedAt = &createdAt
	status.BookTitle = request.BookTitle

	return status
}
