// Package markreturned implements the Return Loan use case.
//
// The loan is closed, the fine for every whole overdue day is persisted and the copy goes back on the shelf,
// all in one transaction.
package markreturned
