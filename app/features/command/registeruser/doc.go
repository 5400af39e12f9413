// Package registeruser implements the Register User use case for the library's user directory.
package registeruser
