package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a point read, update or delete targets a
	// primary key that does not exist (or a filtered singular fetch comes
	// back empty). Handlers map it to 404.
	ErrNotFound = errors.New("registro no encontrado")

	// ErrNoUserWasFound is returned when the login lookup matches no active
	// user row.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrInsertFailed is returned when an INSERT ... RETURNING id yields no
	// row; the transaction is rolled back and handlers answer 500.
	ErrInsertFailed = errors.New("insert returned no id")

	// ErrDuplicate is returned when a write violates a unique constraint
	// (e.g. a second usuario with the same login). Handlers map it to 409.
	ErrDuplicate = errors.New("registro duplicado")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an empty SET clause after allow-list filtering).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("error beginning transaction")

	// ErrCommitingTransaction is returned when committing the per-request
	// transaction fails.
	ErrCommitingTransaction = errors.New("error commiting transaction")

	// ErrScanningRow is returned when a fetched row cannot be scanned into
	// its destination values.
	ErrScanningRow = errors.New("error scanning row")

	// ErrScanningRows is returned when iterating a result set fails after
	// some rows were already consumed.
	ErrScanningRows = errors.New("error scanning rows")
)
