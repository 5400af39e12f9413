package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/rishithapentyala/Library-Management-System/app/features/command/addbook"
	"github.com/rishithapentyala/Library-Management-System/app/features/command/approverequest"
	"github.com/rishithapentyala/Library-Management-System/app/features/command/denyrequest"
	"github.com/rishithapentyala/Library-Management-System/app/features/command/markreturned"
	"github.com/rishithapentyala/Library-Management-System/app/features/command/registeruser"
	"github.com/rishithapentyala/Library-Management-System/app/features/command/removebook"
	"github.com/rishithapentyala/Library-Management-System/app/features/command/submitrequest"
	"github.com/rishithapentyala/Library-Management-System/app/features/command/updatebook"
	"github.com/rishithapentyala/Library-Management-System/app/features/query/bookdetails"
	"github.com/rishithapentyala/Library-Management-System/app/features/query/borrowedbooks"
	"github.com/rishithapentyala/Library-Management-System/app/features/query/borrowrequests"
	"github.com/rishithapentyala/Library-Management-System/app/features/query/catalog"
	"github.com/rishithapentyala/Library-Management-System/app/features/query/dashboardstats"
	"github.com/rishithapentyala/Library-Management-System/app/features/query/requeststatus"
	"github.com/rishithapentyala/Library-Management-System/app/features/query/trackedloans"
	"github.com/rishithapentyala/Library-Management-System/app/features/query/users"
	"github.com/rishithapentyala/Library-Management-System/app/notify"
	"github.com/rishithapentyala/Library-Management-System/app/shared/shell"
	"github.com/rishithapentyala/Library-Management-System/circulation"
)

const (
	logMsgRequestFailed = "http request failed"
	logMsgPublishFailed = "publishing notification failed"
	logAttrMethod       = "method"
	logAttrPath         = "path"
	logAttrStatus       = "status"
	logAttrError        = "error"
	logAttrKind         = "kind"
)

// Handlers are the use cases served by the API. Usually they are the observable wrappers around the feature handlers.
type Handlers struct {
	SubmitRequest  shell.CommandHandler[submitrequest.Command, circulation.BorrowRequest]
	ApproveRequest shell.CommandHandler[approverequest.Command, circulation.Loan]
	DenyRequest    shell.CommandHandler[denyrequest.Command, circulation.BorrowRequest]
	MarkReturned   shell.CommandHandler[markreturned.Command, circulation.Loan]
	AddBook        shell.CommandHandler[addbook.Command, circulation.Book]
	UpdateBook     shell.CommandHandler[updatebook.Command, circulation.Book]
	RemoveBook     shell.CommandHandler[removebook.Command, shell.NoValue]
	RegisterUser   shell.CommandHandler[registeruser.Command, circulation.User]

	Catalog        shell.QueryHandler[catalog.Query, catalog.Catalog]
	BookDetails    shell.QueryHandler[bookdetails.Query, catalog.BookInfo]
	RequestStatus  shell.QueryHandler[requeststatus.Query, requeststatus.RequestStatus]
	BorrowedBooks  shell.QueryHandler[borrowedbooks.Query, borrowedbooks.BorrowedBooks]
	TrackedLoans   shell.QueryHandler[trackedloans.Query, trackedloans.TrackedLoans]
	BorrowRequests shell.QueryHandler[borrowrequests.Query, borrowrequests.BorrowRequests]
	Users          shell.QueryHandler[users.Query, users.Users]
	DashboardStats shell.QueryHandler[dashboardstats.Query, dashboardstats.DashboardStats]
}

// Server routes HTTP requests to the Handlers.
type Server struct {
	handlers  Handlers
	hub       *notify.Hub
	publisher notify.Publisher
	logger    circulation.ContextualLogger
	now       func() time.Time
	newID     func() (uuid.UUID, error)
}

// Option configures a Server.
type Option func(*Server)

// WithNotificationHub serves the websocket feed and publishes lifecycle notifications to hub.
func WithNotificationHub(hub *notify.Hub) Option {
	return func(s *Server) {
		s.hub = hub
		s.publisher = hub
	}
}

// WithPublisher publishes lifecycle notifications without serving a websocket feed.
func WithPublisher(publisher notify.Publisher) Option {
	return func(s *Server) {
		s.publisher = publisher
	}
}

// WithLogger sets the logger for failed requests.
func WithLogger(logger circulation.ContextualLogger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// WithIDGenerator replaces uuid.NewV7 for new request, loan, book and user ids.
func WithIDGenerator(newID func() (uuid.UUID, error)) Option {
	return func(s *Server) {
		s.newID = newID
	}
}

// NewServer creates a Server.
func NewServer(handlers Handlers, opts ...Option) *Server {
	s := &Server{
		handlers: handlers,
		logger:   discardLogger{},
		now:      time.Now,
		newID:    uuid.NewV7,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Handler returns the routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	student := func(h http.HandlerFunc) http.Handler { return authenticated(requireRole(RoleStudent, h)) }
	librarian := func(h http.HandlerFunc) http.Handler { return authenticated(requireRole(RoleLibrarian, h)) }
	anyone := func(h http.HandlerFunc) http.Handler { return authenticated(h) }

	mux.HandleFunc("GET /healthz", s.healthz)

	mux.Handle("GET /api/books", anyone(s.listBooks))
	mux.Handle("GET /api/books/{id}", anyone(s.bookDetails))
	mux.Handle("POST /api/books/request", student(s.submitRequest))
	mux.Handle("GET /api/books/user-request/{bookId}", student(s.requestStatus))
	mux.Handle("GET /api/books/borrowed", student(s.borrowedBooks))
	mux.Handle("GET /api/notifications/ws", anyone(s.notifications))

	mux.Handle("POST /api/books", librarian(s.addBook))
	mux.Handle("PUT /api/books/{id}", librarian(s.updateBook))
	mux.Handle("DELETE /api/books/{id}", librarian(s.removeBook))

	mux.Handle("GET /api/admin/users", librarian(s.listUsers))
	mux.Handle("POST /api/admin/users", librarian(s.registerUser))
	mux.Handle("GET /api/admin/requests", librarian(s.borrowRequests))
	mux.Handle("PUT /api/admin/requests/{id}/approve", librarian(s.approveRequest))
	mux.Handle("PUT /api/admin/requests/{id}/deny", librarian(s.denyRequest))
	mux.Handle("GET /api/admin/borrowed-books", librarian(s.trackedLoans))
	mux.Handle("PUT /api/admin/returns/{id}/mark-returned", librarian(s.markReturned))
	mux.Handle("GET /api/admin/dashboard-stats", librarian(s.dashboardStats))

	return mux
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) notifications(w http.ResponseWriter, r *http.Request) {
	if s.hub == nil {
		writeMessage(w, http.StatusNotFound, "notifications are not enabled")
		return
	}

	identity, _ := IdentityFrom(r.Context())
	s.hub.ServeWS(w, r, identity.UserID)
}

// publish runs after the command committed, a failure only costs the live notification.
func (s *Server) publish(ctx context.Context, notification notify.Notification) {
	if s.publisher == nil {
		return
	}

	if err := s.publisher.Publish(context.WithoutCancel(ctx), notification); err != nil {
		s.logger.WarnContext(ctx, logMsgPublishFailed, logAttrKind, notification.Kind, logAttrError, err.Error())
	}
}

var errInvalidPathID = errors.New("invalid id in path")

func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, errors.Join(errInvalidPathID, err)
	}

	return id, nil
}

type discardLogger struct{}

func (discardLogger) DebugContext(context.Context, string, ...any) {}
func (discardLogger) InfoContext(context.Context, string, ...any)  {}
func (discardLogger) WarnContext(context.Context, string, ...any)  {}
func (discardLogger) ErrorContext(context.Context, string, ...any) {}
