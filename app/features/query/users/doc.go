// Package users implements the User Directory query use case.
package users
