package httpapi

import (
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
	"github.com/rishithapentyala/Library-Management-System/app/shared/shell"
	"github.com/rishithapentyala/Library-Management-System/app/shared/shell/observable"
	"github.com/rishithapentyala/Library-Management-System/circulation"
)

// Instrumentation is applied to every handler built by NewHandlers. Nil members are skipped.
type Instrumentation struct {
	Metrics shell.MetricsCollector
	Tracing shell.TracingCollector
	Logger  shell.ContextualLogger
}

// NewHandlers builds all feature handlers on engine, each wrapped for observability.
func NewHandlers(engine circulation.Engine, in Instrumentation, retryOptions ...shell.RetryOption) (Handlers, error) {
	var (
		h   Handlers
		err error
	)

	if h.SubmitRequest, err = wrapCommand[submitrequest.Command, circulation.BorrowRequest](
		submitrequest.NewCommandHandler(engine, submitrequest.WithRetryOptions(retryOptions...)), in); err != nil {
		return Handlers{}, err
	}

	if h.ApproveRequest, err = wrapCommand[approverequest.Command, circulation.Loan](
		approverequest.NewCommandHandler(engine, approverequest.WithRetryOptions(retryOptions...)), in); err != nil {
		return Handlers{}, err
	}

	if h.DenyRequest, err = wrapCommand[denyrequest.Command, circulation.BorrowRequest](
		denyrequest.NewCommandHandler(engine, denyrequest.WithRetryOptions(retryOptions...)), in); err != nil {
		return Handlers{}, err
	}

	if h.MarkReturned, err = wrapCommand[markreturned.Command, circulation.Loan](
		markreturned.NewCommandHandler(engine, markreturned.WithRetryOptions(retryOptions...)), in); err != nil {
		return Handlers{}, err
	}

	if h.AddBook, err = wrapCommand[addbook.Command, circulation.Book](
		addbook.NewCommandHandler(engine, addbook.WithRetryOptions(retryOptions...)), in); err != nil {
		return Handlers{}, err
	}

	if h.UpdateBook, err = wrapCommand[updatebook.Command, circulation.Book](
		updatebook.NewCommandHandler(engine, updatebook.WithRetryOptions(retryOptions...)), in); err != nil {
		return Handlers{}, err
	}

	if h.RemoveBook, err = wrapCommand[removebook.Command, shell.NoValue](
		removebook.NewCommandHandler(engine, removebook.WithRetryOptions(retryOptions...)), in); err != nil {
		return Handlers{}, err
	}

	if h.RegisterUser, err = wrapCommand[registeruser.Command, circulation.User](
		registeruser.NewCommandHandler(engine, registeruser.WithRetryOptions(retryOptions...)), in); err != nil {
		return Handlers{}, err
	}

	if h.Catalog, err = wrapQuery[catalog.Query, catalog.Catalog](catalog.NewQueryHandler(engine), in); err != nil {
		return Handlers{}, err
	}

	if h.BookDetails, err = wrapQuery[bookdetails.Query, catalog.BookInfo](bookdetails.NewQueryHandler(engine), in); err != nil {
		return Handlers{}, err
	}

	if h.RequestStatus, err = wrapQuery[requeststatus.Query, requeststatus.RequestStatus](requeststatus.NewQueryHandler(engine), in); err != nil {
		return Handlers{}, err
	}

	if h.BorrowedBooks, err = wrapQuery[borrowedbooks.Query, borrowedbooks.BorrowedBooks](borrowedbooks.NewQueryHandler(engine), in); err != nil {
		return Handlers{}, err
	}

	if h.TrackedLoans, err = wrapQuery[trackedloans.Query, trackedloans.TrackedLoans](trackedloans.NewQueryHandler(engine), in); err != nil {
		return Handlers{}, err
	}

	if h.BorrowRequests, err = wrapQuery[borrowrequests.Query, borrowrequests.BorrowRequests](borrowrequests.NewQueryHandler(engine), in); err != nil {
		return Handlers{}, err
	}

	if h.Users, err = wrapQuery[users.Query, users.Users](users.NewQueryHandler(engine), in); err != nil {
		return Handlers{}, err
	}

	if h.DashboardStats, err = wrapQuery[dashboardstats.Query, dashboardstats.DashboardStats](dashboardstats.NewQueryHandler(engine), in); err != nil {
		return Handlers{}, err
	}

	return h, nil
}

func wrapCommand[C shell.Command, V any](core shell.CommandHandler[C, V], in Instrumentation) (shell.CommandHandler[C, V], error) {
	var opts []observable.CommandOption[C, V]
	if in.Metrics != nil {
		opts = append(opts, observable.WithCommandMetrics[C, V](in.Metrics))
	}
	if in.Tracing != nil {
		opts = append(opts, observable.WithCommandTracing[C, V](in.Tracing))
	}
	if in.Logger != nil {
		opts = append(opts, observable.WithCommandContextualLogging[C, V](in.Logger))
	}

	wrapper, err := observable.NewCommandWrapper(core, opts...)
	if err != nil {
		return nil, err
	}

	return wrapper, nil
}

func wrapQuery[Q shell.Query, R any](core shell.QueryHandler[Q, R], in Instrumentation) (shell.QueryHandler[Q, R], error) {
	var opts []observable.QueryOption[Q, R]
	if in.Metrics != nil {
		opts = append(opts, observable.WithQueryMetrics[Q, R](in.Metrics))
	}
	if in.Tracing != nil {
		opts = append(opts, observable.WithQueryTracing[Q, R](in.Tracing))
	}
	if in.Logger != nil {
		opts = append(opts, observable.WithQueryContextualLogging[Q, R](in.Logger))
	}

	wrapper, err := observable.NewQueryWrapper(core, opts...)
	if err != nil {
		return nil, err
	}

	return wrapper, nil
}
