// Package shell holds the infrastructure pieces shared by the circulation features:
// command and query contracts, retry with exponential backoff for concurrency conflicts,
// handler results and the observability helpers used by the observable wrappers.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'infrastructure' layer.
package shell
