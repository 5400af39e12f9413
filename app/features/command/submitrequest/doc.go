// Package submitrequest implements the Submit Borrow Request use case.
//
// A student asks to borrow a book. The request is stored as pending and waits for a librarian
// to approve or deny it. Submitting has no effect on the available copies of the book,
// those only change when a request is approved.
package submitrequest
