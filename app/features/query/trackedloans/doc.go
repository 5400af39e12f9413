// Package trackedloans implements the Tracked Loans query use case: the librarian's table of
// every loan with its borrower, unreturned first, with projected fines.
package trackedloans
