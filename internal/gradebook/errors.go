package gradebook

import "errors"

// ErrLoadDegraded is returned by Load when a document exists but could not be
// used. The roster is left as it was; the wrapped error says why.
var ErrLoadDegraded = errors.New("roster document ignored")
