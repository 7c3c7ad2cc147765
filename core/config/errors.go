package config

import "errors"

// ErrInvalidConfigType is returned when Load receives anything other than a
// non-nil pointer to a struct.
var ErrInvalidConfigType = errors.New("config: expected non-nil struct pointer")
