package domain

import "fmt"

// ErrCompanyNotFound is returned by single-row lookups that matched no
// company.
var ErrCompanyNotFound = errString("company not found")

type errString string

func (e errString) Error() string { return string(e) }

// ValidationError carries per-field messages for rejected query
// parameters. A request either validates fully or fails with every
// violated field listed; filters are never partially applied.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// QueryError wraps a database failure (connectivity, timeout, pool
// exhaustion). Handlers render it as a generic 500.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *QueryError) Unwrap() error { return e.Err }
