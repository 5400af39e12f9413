// Package updatebook implements the Update Book use case.
// Changing the number of copies moves the available counter by the same delta.
package updatebook
