// Package core contains the pure building blocks shared by the circulation features.
//
// Each command feature gathers the facts it needs inside an engine transaction and hands them
// to a pure Decide function. Decide returns a DecisionResult that names the outcome
// (idempotent, success or error) and, on success, the effect the handler has to apply.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
