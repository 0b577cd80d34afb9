package generator

import "errors"

// ErrInvalidInput is returned when a query is empty or whitespace only.
var ErrInvalidInput = errors.New("invalid input: query is required")
