// Package catalog implements the Catalog query use case.
//
// It lists every book ordered by title together with its copy counters. The catalog is read
// with eventual consistency, a slightly stale availability count is fine for browsing since
// the approval re-checks it under a row lock.
package catalog
