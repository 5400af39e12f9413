package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/rishithapentyala/Library-Management-System/circulation"
)

const maxBodyBytes = 1 << 20

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrInvalidBody is returned for bodies that are not the expected JSON document.
var ErrInvalidBody = errors.New("invalid request body")

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

func decodeBody(r *http.Request, dest any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return errors.Join(ErrInvalidBody, err)
	}

	if err = json.Unmarshal(body, dest); err != nil {
		return errors.Join(ErrInvalidBody, err)
	}

	return nil
}

// statusOf maps errors to HTTP status codes. Everything outside the taxonomy is a 500.
func statusOf(err error) int {
	switch {
	case errors.Is(err, circulation.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, circulation.ErrDuplicateRequest),
		errors.Is(err, circulation.ErrAlreadyBorrowed),
		errors.Is(err, circulation.ErrUnavailable),
		errors.Is(err, circulation.ErrAlreadyReturned),
		errors.Is(err, circulation.ErrRequestAlreadyApproved),
		errors.Is(err, circulation.ErrBookInCirculation),
		errors.Is(err, circulation.ErrUserExists):
		return http.StatusConflict
	case errors.Is(err, circulation.ErrInvalidBook),
		errors.Is(err, circulation.ErrInvalidUser),
		errors.Is(err, circulation.ErrCopiesBelowBorrowed),
		errors.Is(err, ErrInvalidBody),
		errors.Is(err, errInvalidPathID):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status < http.StatusInternalServerError {
		writeMessage(w, status, err.Error())
		return
	}

	s.logger.ErrorContext(r.Context(), logMsgRequestFailed,
		logAttrMethod, r.Method,
		logAttrPath, r.URL.Path,
		logAttrStatus, status,
		logAttrError, err.Error(),
	)

	writeMessage(w, status, "internal server error")
}
