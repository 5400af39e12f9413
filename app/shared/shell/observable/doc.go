// Package observable provides wrappers that instrument command and query handlers
// with metrics, tracing and logging while the handlers themselves stay pure business logic.
//
// The wrappers are applied explicitly at wiring time:
//
//	coreHandler := approverequest.NewCommandHandler(engine)
//
//	handler, err := observable.NewCommandWrapper(
//		coreHandler,
//		observable.WithCommandMetrics[approverequest.Command, circulation.Loan](metricsCollector),
//		observable.WithCommandTracing[approverequest.Command, circulation.Loan](tracingCollector),
//		observable.WithCommandContextualLogging[approverequest.Command, circulation.Loan](logger),
//	)
//
// Tests of business rules use the core handlers directly.
package observable
