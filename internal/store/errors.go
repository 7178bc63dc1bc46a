package store

import (
	"errors"
	"fmt"
)

// ErrStorageUnavailable is returned when the local database cannot be opened,
// pinged or migrated. The client cannot run without it.
var ErrStorageUnavailable = errors.New("local storage unavailable")

// ErrTransactionFailure is the parent of every per-operation storage error.
// Callers can match any failed read or write with errors.Is(err, ErrTransactionFailure).
var ErrTransactionFailure = errors.New("storage transaction failed")

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrProductNotFound is returned by GetProduct when the product is not
	// present in the local cache.
	ErrProductNotFound = errors.New("product was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails. All of them match
// [ErrTransactionFailure].
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = fmt.Errorf("%w: error building sql query", ErrTransactionFailure)

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = fmt.Errorf("%w: error executing sql query", ErrTransactionFailure)

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = fmt.Errorf("%w: failed to begin transaction", ErrTransactionFailure)

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = fmt.Errorf("%w: failed to commit transaction", ErrTransactionFailure)

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = fmt.Errorf("%w: failed to execute statement", ErrTransactionFailure)

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = fmt.Errorf("%w: failed to scan row", ErrTransactionFailure)

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = fmt.Errorf("%w: failed to scan rows", ErrTransactionFailure)
)
