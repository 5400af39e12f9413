package httpapi

import (
	"net/http"
	"strconv"

	"github.com/rishithapentyala/Library-Management-System/app/features/command/approverequest"
	"github.com/rishithapentyala/Library-Management-System/app/features/command/denyrequest"
	"github.com/rishithapentyala/Library-Management-System/app/features/command/markreturned"
	"github.com/rishithapentyala/Library-Management-System/app/features/command/registeruser"
	"github.com/rishithapentyala/Library-Management-System/app/features/query/borrowedbooks"
	"github.com/rishithapentyala/Library-Management-System/app/features/query/borrowrequests"
	"github.com/rishithapentyala/Library-Management-System/app/features/query/dashboardstats"
	"github.com/rishithapentyala/Library-Management-System/app/features/query/trackedloans"
	"github.com/rishithapentyala/Library-Management-System/app/features/query/users"
	"github.com/rishithapentyala/Library-Management-System/app/notify"
)

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	result, err := s.handlers.Users.Handle(r.Context(), users.BuildQuery())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) registerUser(w http.ResponseWriter, r *http.Request) {
	var body userBody
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}

	userID, err := s.newID()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.handlers.RegisterUser.Handle(r.Context(),
		registeruser.BuildCommand(userID, body.Email, body.Name, body.Phone))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, users.UserInfo(result.Value))
}

func (s *Server) borrowRequests(w http.ResponseWriter, r *http.Request) {
	pendingOnly, _ := strconv.ParseBool(r.URL.Query().Get("pending"))

	result, err := s.handlers.BorrowRequests.Handle(r.Context(), borrowrequests.BuildQuery(pendingOnly))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) approveRequest(w http.ResponseWriter, r *http.Request) {
	requestID, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	loanID, err := s.newID()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	now := s.now()

	result, err := s.handlers.ApproveRequest.Handle(r.Context(), approverequest.BuildCommand(requestID, loanID, now))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if !result.Idempotent {
		s.publish(r.Context(), notify.RequestApproved(result.Value, now))
	}

	writeJSON(w, http.StatusOK, borrowedbooks.ToLoanInfo(result.Value, borrowedbooks.BuildQuery(result.Value.UserID, now)))
}

func (s *Server) denyRequest(w http.ResponseWriter, r *http.Request) {
	requestID, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	now := s.now()

	result, err := s.handlers.DenyRequest.Handle(r.Context(), denyrequest.BuildCommand(requestID, now))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.publish(r.Context(), notify.RequestDenied(result.Value, now))

	writeMessage(w, http.StatusOK, "Request denied successfully")
}

func (s *Server) trackedLoans(w http.ResponseWriter, r *http.Request) {
	result, err := s.handlers.TrackedLoans.Handle(r.Context(), trackedloans.BuildQuery(s.now()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) markReturned(w http.ResponseWriter, r *http.Request) {
	loanID, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	now := s.now()

	result, err := s.handlers.MarkReturned.Handle(r.Context(), markreturned.BuildCommand(loanID, now))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.publish(r.Context(), notify.LoanReturned(result.Value, now))

	writeJSON(w, http.StatusOK, borrowedbooks.ToLoanInfo(result.Value, borrowedbooks.BuildQuery(result.Value.UserID, now)))
}

func (s *Server) dashboardStats(w http.ResponseWriter, r *http.Request) {
	result, err := s.handlers.DashboardStats.Handle(r.Context(), dashboardstats.BuildQuery(s.now()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
