package circulation

import "github.com/google/uuid"

// SeedBooks returns the starter catalog loaded into an empty database.
func SeedBooks() []Book {
	return []Book{
		seedBook("0197a1c0-0000-7000-8000-000000000001", "Data Structures and Algorithms", "Thomas H. Cormen", "3rd Edition", "Computer Science", 5),
		seedBook("0197a1c0-0000-7000-8000-000000000002", "Introduction to Machine Learning", "Andrew Ng", "2nd Edition", "Artificial Intelligence", 3),
		seedBook("0197a1c0-0000-7000-8000-000000000003", "Fundamentals of Database Systems", "Ramez Elmasri", "7th Edition", "Database Management", 4),
		seedBook("0197a1c0-0000-7000-8000-000000000004", "Computer Networks", "Andrew S. Tanenbaum", "5th Edition", "Networking", 3),
		seedBook("0197a1c0-0000-7000-8000-000000000005", "Operating System Concepts", "Abraham Silberschatz", "10th Edition", "Operating Systems", 6),
		seedBook("0197a1c0-0000-7000-8000-000000000006", "Artificial Intelligence: A Modern Approach", "Stuart Russell", "4th Edition", "Artificial Intelligence", 2),
		seedBook("0197a1c0-0000-7000-8000-000000000007", "Software Engineering", "Ian Sommerville", "10th Edition", "Software Development", 4),
		seedBook("0197a1c0-0000-7000-8000-000000000008", "Computer Organization and Architecture", "William Stallings", "11th Edition", "Computer Architecture", 3),
		seedBook("0197a1c0-0000-7000-8000-000000000009", "Introduction to Algorithms", "Thomas H. Cormen", "4th Edition", "Computer Science", 5),
		seedBook("0197a1c0-0000-7000-8000-00000000000a", "Discrete Mathematics", "Kenneth H. Rosen", "8th Edition", "Mathematics", 4),
	}
}

// SeedUsers returns the starter user directory.
func SeedUsers() []User {
	return []User{
		{UserID: uuid.MustParse("0197a1c0-0000-7000-8000-000000000101"), Email: "student1@srmap.edu.in", Name: "John Doe", Phone: "9876543210"},
		{UserID: uuid.MustParse("0197a1c0-0000-7000-8000-000000000102"), Email: "student2@srmap.edu.in", Name: "Jane Smith", Phone: "9876543211"},
	}
}

func seedBook(id, title, author, edition, subject string, copies int) Book {
	return Book{
		BookID:          uuid.MustParse(id),
		Title:           title,
		Author:          author,
		Edition:         edition,
		Subject:         subject,
		TotalCopies:     copies,
		AvailableCopies: copies,
	}
}
