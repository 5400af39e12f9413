// Package borrowedbooks implements the Borrowed Books query use case.
//
// A student sees all of their loans, unreturned first and then by due date. Fines of unreturned
// overdue loans are projected at the query time and never written back.
package borrowedbooks
