package catalog

import (
	"github.com/rishithapentyala/Library-Management-System/circulation"
)

// Project maps the stored books, which already come ordered by title, to catalog rows.
func Project(books []circulation.Book, _ Query) Catalog {
	infos := make([]BookInfo, 0, len(books))
	for _, book := range books {
		infos = append(infos, ToBookInfo(book))
	}

	return Catalog{Books: infos, Count: len(infos)}
}

// ToBookInfo maps a single book, it is shared with the book details query.
func ToBookInfo(book circulation.Book) BookInfo {
	return BookInfo{
		BookID:          book.BookID,
		Title:           book.Title,
		Author:          book.Author,
		Edition:         book.Edition,
		Subject:         book.Subject,
		TotalCopies:     book.TotalCopies,
		AvailableCopies: book.AvailableCopies,
		Available:       book.AvailableCopies > 0,
	}
}
