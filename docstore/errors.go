package docstore

import "errors"

// ErrNotFound is returned when the requested document does not exist.
var ErrNotFound = errors.New("document not found")
