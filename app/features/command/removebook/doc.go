// Package removebook implements the Remove Book use case.
// A book leaves the catalog together with its history once nothing about it is open anymore.
package removebook
