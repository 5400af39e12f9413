// Package requeststatus implements the Request Status query use case: what happened to the
// latest request a student made for a book.
package requeststatus
