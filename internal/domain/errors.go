package domain

import "errors"

// ErrAuthentication indicates a missing or rejected API key.
// It is fatal: the run stops on the first occurrence.
var ErrAuthentication = errors.New("authentication failed")
