package store

import "errors"

// Sentinel errors returned by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrUserAlreadyExists is returned when the email or phone of a new
	// account is already registered.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrNoUserWasFound is returned when a lookup matches no account.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoSession is returned by the client session repository when no token
	// has been persisted.
	ErrNoSession = errors.New("no session was saved")

	// ErrNilDatabase is returned when a repository constructor receives a nil
	// connection.
	ErrNilDatabase = errors.New("database connection is nil")
)

// Low-level database operation errors, wrapped by repository methods when a
// SQL-level operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrCacheUnavailable wraps Redis failures other than a cache miss.
	ErrCacheUnavailable = errors.New("climate cache is unavailable")
)
