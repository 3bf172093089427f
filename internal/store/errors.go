package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCounterAlreadyExists is returned when a counter is created under a
	// name that is already registered. The existing counter is left untouched.
	ErrCounterAlreadyExists = errors.New("counter already exists")

	// ErrCounterNotFound is returned when a read, increment or delete targets
	// a name that is not registered.
	ErrCounterNotFound = errors.New("counter not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or a statement
	// with a RETURNING clause fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan counter row")

	// ErrUnknownBackend is returned by [NewStorages] for a backend name it
	// does not know how to build.
	ErrUnknownBackend = errors.New("unknown storage backend")
)
