package repository

import "errors"

// ErrNotFound is wrapped with entity context by repository methods when a
// lookup matches no row.
var ErrNotFound = errors.New("not found")
