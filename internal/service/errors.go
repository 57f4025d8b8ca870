package service

import "errors"

// ErrConflict marks a mutation rejected before any write: a semester load cap
// would be exceeded, or the student already plans the course elsewhere.
var ErrConflict = errors.New("conflict")
