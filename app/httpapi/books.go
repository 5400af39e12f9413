package httpapi

import (
	"net/http"

	"github.com/rishithapentyala/Library-Management-System/app/features/command/addbook"
	"github.com/rishithapentyala/Library-Management-System/app/features/command/removebook"
	"github.com/rishithapentyala/Library-Management-System/app/features/command/submitrequest"
	"github.com/rishithapentyala/Library-Management-System/app/features/command/updatebook"
	"github.com/rishithapentyala/Library-Management-System/app/features/query/bookdetails"
	"github.com/rishithapentyala/Library-Management-System/app/features/query/borrowedbooks"
	"github.com/rishithapentyala/Library-Management-System/app/features/query/catalog"
	"github.com/rishithapentyala/Library-Management-System/app/features/query/requeststatus"
)

func (s *Server) listBooks(w http.ResponseWriter, r *http.Request) {
	result, err := s.handlers.Catalog.Handle(r.Context(), catalog.BuildQuery())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) bookDetails(w http.ResponseWriter, r *http.Request) {
	bookID, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.handlers.BookDetails.Handle(r.Context(), bookdetails.BuildQuery(bookID))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) submitRequest(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFrom(r.Context())

	var body submitRequestBody
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}

	requestID, err := s.newID()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.handlers.SubmitRequest.Handle(r.Context(),
		submitrequest.BuildCommand(requestID, identity.UserID, body.BookID, body.Title, s.now()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRequestResponse(result.Value))
}

func (s *Server) requestStatus(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFrom(r.Context())

	bookID, err := pathID(r, "bookId")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.handlers.RequestStatus.Handle(r.Context(), requeststatus.BuildQuery(identity.UserID, bookID))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) borrowedBooks(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFrom(r.Context())

	result, err := s.handlers.BorrowedBooks.Handle(r.Context(), borrowedbooks.BuildQuery(identity.UserID, s.now()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) addBook(w http.ResponseWriter, r *http.Request) {
	var body bookBody
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}

	bookID, err := s.newID()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.handlers.AddBook.Handle(r.Context(),
		addbook.BuildCommand(bookID, body.Title, body.Author, body.Edition, body.Subject, body.Copies))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, catalog.ToBookInfo(result.Value))
}

func (s *Server) updateBook(w http.ResponseWriter, r *http.Request) {
	bookID, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var body bookBody
	if err = decodeBody(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.handlers.UpdateBook.Handle(r.Context(),
		updatebook.BuildCommand(bookID, body.Title, body.Author, body.Edition, body.Subject, body.Copies))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, catalog.ToBookInfo(result.Value))
}

func (s *Server) removeBook(w http.ResponseWriter, r *http.Request) {
	bookID, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if _, err = s.handlers.RemoveBook.Handle(r.Context(), removebook.BuildCommand(bookID)); err != nil {
		s.writeError(w, r, err)
		return
	}

	writeMessage(w, http.StatusOK, "Book deleted successfully")
}
