package sqlengine

import (
	"errors"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/dialect/mysql"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"

	"github.com/rishithapentyala/Library-Management-System/circulation"
)

const (
	dialectPostgres = "postgres"
	dialectMySQL    = "circulation_mysql"

	mysqlTimeFormat = "2006-01-02 15:04:05.999999"

	tableBooks      = "books"
	tableRequests   = "requests"
	tableLoans      = "loans"
	tableUsers      = "users"
	tableMigrations = "schema_migrations"

	colBookID          = "book_id"
	colTitle           = "title"
	colAuthor          = "author"
	colEdition         = "edition"
	colSubject         = "subject"
	colTotalCopies     = "total_copies"
	colAvailableCopies = "available_copies"
	colRequestID       = "request_id"
	colUserID          = "user_id"
	colBookTitle       = "book_title"
	colApproved        = "approved"
	colCreatedAt       = "created_at"
	colLoanID          = "loan_id"
	colIssueDate       = "issue_date"
	colDueDate         = "due_date"
	colFine            = "fine"
	colReturned        = "returned"
	colReturnedAt      = "returned_at"
	colEmail           = "email"
	colName            = "name"
	colPhone           = "phone"
	colFilename        = "filename"
	colAppliedAt       = "applied_at"
)

func init() {
	// goqu's stock MySQL options render times in RFC 3339, which DATETIME columns reject.
	opts := mysql.DialectOptions()
	opts.TimeFormat = mysqlTimeFormat
	goqu.RegisterDialect(dialectMySQL, opts)
}

var (
	bookColumns    = []any{colBookID, colTitle, colAuthor, colEdition, colSubject, colTotalCopies, colAvailableCopies}
	requestColumns = []any{colRequestID, colUserID, colBookID, colBookTitle, colApproved, colCreatedAt}
	loanColumns    = []any{colLoanID, colRequestID, colUserID, colBookID, colBookTitle, colIssueDate, colDueDate, colFine, colReturned, colReturnedAt}
	userColumns    = []any{colUserID, colEmail, colName, colPhone}
)

type sqlBuilder interface {
	ToSQL() (string, []any, error)
}

// statements builds every SQL string the engine executes for one dialect.
type statements struct {
	dialect goqu.DialectWrapper
}

func newStatements(dialect string) statements {
	return statements{dialect: goqu.Dialect(dialect)}
}

func toSQL(builder sqlBuilder) (string, error) {
	sqlQuery, _, err := builder.ToSQL()
	if err != nil {
		return "", errors.Join(circulation.ErrBuildingQueryFailed, err)
	}

	return sqlQuery, nil
}

func lockIf(ds *goqu.SelectDataset, lock bool) *goqu.SelectDataset {
	if lock {
		return ds.ForUpdate(exp.Wait)
	}

	return ds
}

func qualified(table string, columns []any) []any {
	out := make([]any, 0, len(columns))
	for _, column := range columns {
		out = append(out, goqu.T(table).Col(column))
	}

	return out
}

func (s statements) selectBook(bookID uuid.UUID, lock bool) (string, error) {
	ds := s.dialect.From(tableBooks).
		Select(bookColumns...).
		Where(goqu.C(colBookID).Eq(bookID.String()))

	return toSQL(lockIf(ds, lock))
}

func (s statements) selectBooks() (string, error) {
	return toSQL(s.dialect.From(tableBooks).
		Select(bookColumns...).
		Order(goqu.C(colTitle).Asc(), goqu.C(colBookID).Asc()))
}

func (s statements) selectRequest(requestID uuid.UUID, lock bool) (string, error) {
	ds := s.dialect.From(tableRequests).
		Select(requestColumns...).
		Where(goqu.C(colRequestID).Eq(requestID.String()))

	return toSQL(lockIf(ds, lock))
}

func (s statements) selectLatestRequest(userID, bookID uuid.UUID) (string, error) {
	return toSQL(s.dialect.From(tableRequests).
		Select(requestColumns...).
		Where(
			goqu.C(colUserID).Eq(userID.String()),
			goqu.C(colBookID).Eq(bookID.String()),
		).
		Order(goqu.C(colCreatedAt).Desc(), goqu.C(colRequestID).Desc()).
		Limit(1))
}

func (s statements) selectTrackedRequests() (string, error) {
	columns := append(qualified(tableRequests, requestColumns), userRefColumns()...)

	return toSQL(s.dialect.From(tableRequests).
		LeftJoin(goqu.T(tableUsers), goqu.On(goqu.T(tableUsers).Col(colUserID).Eq(goqu.T(tableRequests).Col(colUserID)))).
		Select(columns...).
		Order(goqu.T(tableRequests).Col(colCreatedAt).Desc(), goqu.T(tableRequests).Col(colRequestID).Desc()))
}

func (s statements) selectLoan(loanID uuid.UUID, lock bool) (string, error) {
	ds := s.dialect.From(tableLoans).
		Select(loanColumns...).
		Where(goqu.C(colLoanID).Eq(loanID.String()))

	return toSQL(lockIf(ds, lock))
}

func (s statements) selectLoanForRequest(requestID uuid.UUID) (string, error) {
	return toSQL(s.dialect.From(tableLoans).
		Select(loanColumns...).
		Where(goqu.C(colRequestID).Eq(requestID.String())).
		Limit(1))
}

func (s statements) selectLoansByUser(userID uuid.UUID) (string, error) {
	return toSQL(s.dialect.From(tableLoans).
		Select(loanColumns...).
		Where(goqu.C(colUserID).Eq(userID.String())).
		Order(goqu.C(colReturned).Asc(), goqu.C(colDueDate).Asc(), goqu.C(colLoanID).Asc()))
}

func (s statements) selectActiveLoans() (string, error) {
	return toSQL(s.dialect.From(tableLoans).
		Select(loanColumns...).
		Where(goqu.C(colReturned).IsFalse()).
		Order(goqu.C(colDueDate).Asc(), goqu.C(colLoanID).Asc()))
}

func (s statements) selectTrackedLoans() (string, error) {
	columns := append(qualified(tableLoans, loanColumns), userRefColumns()...)

	return toSQL(s.dialect.From(tableLoans).
		LeftJoin(goqu.T(tableUsers), goqu.On(goqu.T(tableUsers).Col(colUserID).Eq(goqu.T(tableLoans).Col(colUserID)))).
		Select(columns...).
		Order(
			goqu.T(tableLoans).Col(colReturned).Asc(),
			goqu.T(tableLoans).Col(colDueDate).Asc(),
			goqu.T(tableLoans).Col(colLoanID).Asc(),
		))
}

func userRefColumns() []any {
	return []any{
		goqu.COALESCE(goqu.T(tableUsers).Col(colName), "").As(colName),
		goqu.COALESCE(goqu.T(tableUsers).Col(colEmail), "").As(colEmail),
	}
}

func (s statements) selectUsers() (string, error) {
	return toSQL(s.dialect.From(tableUsers).
		Select(userColumns...).
		Order(goqu.C(colName).Asc(), goqu.C(colEmail).Asc()))
}

func (s statements) countPendingRequests(userID, bookID uuid.UUID) (string, error) {
	ex := goqu.Ex{colApproved: false}
	if userID != uuid.Nil {
		ex[colUserID] = userID.String()
	}
	if bookID != uuid.Nil {
		ex[colBookID] = bookID.String()
	}

	return toSQL(s.dialect.From(tableRequests).Select(goqu.COUNT(goqu.Star())).Where(ex))
}

func (s statements) countActiveLoans(userID, bookID uuid.UUID) (string, error) {
	ex := goqu.Ex{colReturned: false}
	if userID != uuid.Nil {
		ex[colUserID] = userID.String()
	}
	if bookID != uuid.Nil {
		ex[colBookID] = bookID.String()
	}

	return toSQL(s.dialect.From(tableLoans).Select(goqu.COUNT(goqu.Star())).Where(ex))
}

func (s statements) countUsersWithEmail(email string) (string, error) {
	return toSQL(s.dialect.From(tableUsers).
		Select(goqu.COUNT(goqu.Star())).
		Where(goqu.Func("LOWER", goqu.C(colEmail)).Eq(strings.ToLower(email))))
}

func (s statements) countUsers() (string, error) {
	return toSQL(s.dialect.From(tableUsers).Select(goqu.COUNT(goqu.Star())))
}

func (s statements) countBooks() (string, error) {
	return toSQL(s.dialect.From(tableBooks).Select(goqu.COUNT(goqu.Star())))
}

func (s statements) sumCopies() (string, error) {
	return toSQL(s.dialect.From(tableBooks).Select(
		goqu.COALESCE(goqu.SUM(colTotalCopies), 0),
		goqu.COALESCE(goqu.SUM(colAvailableCopies), 0),
	))
}

func (s statements) insertRequest(request circulation.BorrowRequest) (string, error) {
	return toSQL(s.dialect.Insert(tableRequests).Rows(goqu.Record{
		colRequestID: request.RequestID.String(),
		colUserID:    request.UserID.String(),
		colBookID:    request.BookID.String(),
		colBookTitle: request.BookTitle,
		colApproved:  request.Approved,
		colCreatedAt: request.CreatedAt.UTC(),
	}))
}

func (s statements) approveRequest(requestID uuid.UUID) (string, error) {
	return toSQL(s.dialect.Update(tableRequests).
		Set(goqu.Record{colApproved: true}).
		Where(goqu.C(colRequestID).Eq(requestID.String())))
}

func (s statements) deleteRequest(requestID uuid.UUID) (string, error) {
	return toSQL(s.dialect.Delete(tableRequests).
		Where(goqu.C(colRequestID).Eq(requestID.String())))
}

func (s statements) insertLoan(loan circulation.Loan) (string, error) {
	record := goqu.Record{
		colLoanID:     loan.LoanID.String(),
		colRequestID:  loan.RequestID.String(),
		colUserID:     loan.UserID.String(),
		colBookID:     loan.BookID.String(),
		colBookTitle:  loan.BookTitle,
		colIssueDate:  loan.IssueDate.UTC(),
		colDueDate:    loan.DueDate.UTC(),
		colFine:       loan.Fine,
		colReturned:   loan.Returned,
		colReturnedAt: nil,
	}

	if loan.Returned {
		record[colReturnedAt] = loan.ReturnedAt.UTC()
	}

	return toSQL(s.dialect.Insert(tableLoans).Rows(record))
}

func (s statements) markLoanReturned(loanID uuid.UUID, fine int, returnedAt time.Time) (string, error) {
	return toSQL(s.dialect.Update(tableLoans).
		Set(goqu.Record{
			colReturned:   true,
			colFine:       fine,
			colReturnedAt: returnedAt.UTC(),
		}).
		Where(goqu.C(colLoanID).Eq(loanID.String())))
}

// adjustAvailableCopies only matches when the result stays within [0, total_copies].
func (s statements) adjustAvailableCopies(bookID uuid.UUID, delta int) (string, error) {
	return toSQL(s.dialect.Update(tableBooks).
		Set(goqu.Record{colAvailableCopies: goqu.L(colAvailableCopies+" + ?", delta)}).
		Where(
			goqu.C(colBookID).Eq(bookID.String()),
			goqu.L(colAvailableCopies+" + ? >= 0", delta),
			goqu.L(colAvailableCopies+" + ? <= "+colTotalCopies, delta),
		))
}

func (s statements) insertBooks(books ...circulation.Book) (string, error) {
	rows := make([]any, 0, len(books))
	for _, book := range books {
		rows = append(rows, bookRecord(book))
	}

	return toSQL(s.dialect.Insert(tableBooks).Rows(rows...))
}

func (s statements) updateBook(book circulation.Book) (string, error) {
	record := bookRecord(book)
	delete(record, colBookID)

	return toSQL(s.dialect.Update(tableBooks).
		Set(record).
		Where(goqu.C(colBookID).Eq(book.BookID.String())))
}

func (s statements) deleteReturnedLoansOfBook(bookID uuid.UUID) (string, error) {
	return toSQL(s.dialect.Delete(tableLoans).
		Where(goqu.Ex{colBookID: bookID.String(), colReturned: true}))
}

func (s statements) deleteApprovedRequestsOfBook(bookID uuid.UUID) (string, error) {
	return toSQL(s.dialect.Delete(tableRequests).
		Where(goqu.Ex{colBookID: bookID.String(), colApproved: true}))
}

func (s statements) deleteBook(bookID uuid.UUID) (string, error) {
	return toSQL(s.dialect.Delete(tableBooks).
		Where(goqu.C(colBookID).Eq(bookID.String())))
}

func (s statements) insertUsers(users ...circulation.User) (string, error) {
	rows := make([]any, 0, len(users))
	for _, user := range users {
		rows = append(rows, goqu.Record{
			colUserID: user.UserID.String(),
			colEmail:  user.Email,
			colName:   user.Name,
			colPhone:  user.Phone,
		})
	}

	return toSQL(s.dialect.Insert(tableUsers).Rows(rows...))
}

func (s statements) selectAppliedMigration(filename string) (string, error) {
	return toSQL(s.dialect.From(tableMigrations).
		Select(goqu.COUNT(goqu.Star())).
		Where(goqu.C(colFilename).Eq(filename)))
}

func (s statements) insertAppliedMigration(filename string, appliedAt time.Time) (string, error) {
	return toSQL(s.dialect.Insert(tableMigrations).Rows(goqu.Record{
		colFilename:  filename,
		colAppliedAt: appliedAt.UTC(),
	}))
}

func bookRecord(book circulation.Book) goqu.Record {
	return goqu.Record{
		colBookID:          book.BookID.String(),
		colTitle:           book.Title,
		colAuthor:          book.Author,
		colEdition:         book.Edition,
		colSubject:         book.Subject,
		colTotalCopies:     book.TotalCopies,
		colAvailableCopies: book.AvailableCopies,
	}
}
