// Package addbook implements the Add Book use case: a librarian puts a new title into the catalog
// with all of its copies on the shelf.
package addbook
