package badger

import "errors"

// ErrBackendRequired is returned when a repository is constructed without
// an open backend.
var ErrBackendRequired = errors.New("backend required")
