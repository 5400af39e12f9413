package denyrequest

import (
	"github.com/rishithapentyala/Library-Management-System/app/shared/core"
	"github.com/rishithapentyala/Library-Management-System/circulation"
)

// State holds the facts Decide needs.
type State struct {
	RequestNotFound bool
	Request         circulation.BorrowRequest
}

// Decide implements the business rules for denying a borrow request.
//
//	GIVEN: A pending request with RequestID
//	WHEN: DenyRequest command is received
//	THEN: the request is deleted, counters are untouched
//	ERROR: ErrNotFound if the request does not exist
//	ERROR: ErrRequestAlreadyApproved if the request was approved
func Decide(s State, _ Command) core.DecisionResult[circulation.BorrowRequest] {
	if s.RequestNotFound {
		return core.ErrorDecision[circulation.BorrowRequest](circulation.ErrNotFound)
	}

	if s.Request.Approved {
		return core.ErrorDecision[circulation.BorrowRequest](circulation.ErrRequestAlreadyApproved)
	}

	return core.SuccessDecision(s.Request)
}
