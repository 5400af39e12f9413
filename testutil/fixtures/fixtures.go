package fixtures

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/rishithapentyala/Library-Management-System/circulation"
	"github.com/rishithapentyala/Library-Management-System/circulation/memengine"
)

// FakeClock is the start time of all feature tests.
func FakeClock() time.Time {
	return time.Unix(0, 0).UTC()
}

// Book returns a book with all copies on the shelf.
func Book(title string, copies int) circulation.Book {
	return circulation.Book{
		BookID:          uuid.New(),
		Title:           title,
		Author:          "Robert C. Martin",
		Edition:         "1st",
		Subject:         "Software Engineering",
		TotalCopies:     copies,
		AvailableCopies: copies,
	}
}

// User returns a directory entry.
func User(name, email string) circulation.User {
	return circulation.User{
		UserID: uuid.New(),
		Email:  email,
		Name:   name,
		Phone:  "9876543210",
	}
}

// NewEngine creates an in-memory engine holding books and users.
func NewEngine(t *testing.T, books []circulation.Book, users ...circulation.User) *memengine.Engine {
	t.Helper()

	engine, err := memengine.New(memengine.WithBooks(books...), memengine.WithUsers(users...))
	require.NoError(t, err)

	return engine
}
