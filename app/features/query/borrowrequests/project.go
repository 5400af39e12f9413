package borrowrequests

import (
	"github.com/rishithapentyala/Library-Management-System/circulation"
)

// Project keeps the newest first order of the reader.
func Project(requests []circulation.TrackedRequest, query Query) BorrowRequests {
	result := BorrowRequests{Requests: make([]RequestInfo, 0, len(requests))}

	for _, request := range requests {
		if request.Pending() {
			result.PendingCount++
		} else if query.PendingOnly {
			continue
		}

		result.Requests = append(result.Requests, RequestInfo{
			RequestID: request.RequestID,
			BookID:    request.BookID,
			BookTitle: request.BookTitle,
			Approved:  request.Approved,
			CreatedAt: request.CreatedAt,
			UserID:    request.UserID,
			UserName:  request.Requester.Name,
			UserEmail: request.Requester.Email,
		})
	}

	result.Count = len(result.Requests)

	return result
}
