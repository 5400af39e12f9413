package httpapi

import (
	"time"

	"github.com/google/uuid"

	"github.com/rishithapentyala/Library-Management-System/circulation"
)

type submitRequestBody struct {
	BookID uuid.UUID `json:"bookId"`
	Title  string    `json:"title"`
}

type bookBody struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Edition string `json:"edition"`
	Subject string `json:"subject"`
	Copies  int    `json:"copies"`
}

type userBody struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type requestResponse struct {
	RequestID uuid.UUID `json:"requestId"`
	UserID    uuid.UUID `json:"userId"`
	BookID    uuid.UUID `json:"bookId"`
	BookTitle string    `json:"bookTitle"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"createdAt"`
}

func toRequestResponse(request circulation.BorrowRequest) requestResponse {
	return requestResponse{
		RequestID: request.RequestID,
		UserID:    request.UserID,
		BookID:    request.BookID,
		BookTitle: request.BookTitle,
		Approved:  request.Approved,
		CreatedAt: request.CreatedAt,
	}
}
