package catalog

import (
	"github.com/google/uuid"
)

// BookInfo is a catalog row.
type BookInfo struct {
	BookID          uuid.UUID `json:"bookId"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Edition         string    `json:"edition"`
	Subject         string    `json:"subject"`
	TotalCopies     int       `json:"totalCopies"`
	AvailableCopies int       `json:"availableCopies"`
	Available       bool      `json:"available"`
}

// Catalog is the query result.
type Catalog struct {
	Books []BookInfo `json:"books"`
	Count int        `json:"count"`
}
