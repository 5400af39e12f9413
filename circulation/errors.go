package circulation

import "errors"

// Domain errors of the borrowing lifecycle.
var (
	ErrNotFound               = errors.New("not found")
	ErrDuplicateRequest       = errors.New("a pending request for this book already exists")
	ErrAlreadyBorrowed        = errors.New("this book is already borrowed and not returned")
	ErrUnavailable            = errors.New("no copies of this book are available")
	ErrAlreadyReturned        = errors.New("this loan was already returned")
	ErrRequestAlreadyApproved = errors.New("this request was already approved")
	ErrCopiesBelowBorrowed    = errors.New("total copies cannot be lower than the copies currently lent out")
	ErrBookInCirculation      = errors.New("book has unreturned loans or pending requests")
	ErrInvalidBook            = errors.New("invalid book")
	ErrInvalidUser            = errors.New("invalid user")
	ErrUserExists             = errors.New("a user with this email already exists")
)

// Infrastructure errors returned by engines.
var (
	ErrConcurrencyConflict     = errors.New("concurrency conflict, the transaction was rolled back")
	ErrNilDatabaseConnection   = errors.New("database connection must not be nil")
	ErrBuildingQueryFailed     = errors.New("building query failed")
	ErrQueryingFailed          = errors.New("querying failed")
	ErrScanningDBRowFailed     = errors.New("scanning db row failed")
	ErrExecutingFailed         = errors.New("executing statement failed")
	ErrBeginningTxFailed       = errors.New("beginning transaction failed")
	ErrCommittingTxFailed      = errors.New("committing transaction failed")
	ErrGettingRowsAffectedFail = errors.New("getting rows affected failed")
)

// IsDomainError reports whether err carries one of the domain errors above,
// i.e. a business rule rejected the operation rather than the infrastructure failing.
func IsDomainError(err error) bool {
	for _, domainErr := range []error{
		ErrNotFound,
		ErrDuplicateRequest,
		ErrAlreadyBorrowed,
		ErrUnavailable,
		ErrAlreadyReturned,
		ErrRequestAlreadyApproved,
		ErrCopiesBelowBorrowed,
		ErrBookInCirculation,
		ErrInvalidBook,
		ErrInvalidUser,
		ErrUserExists,
	} {
		if errors.Is(err, domainErr) {
			return true
		}
	}

	return false
}
