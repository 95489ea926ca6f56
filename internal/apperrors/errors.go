package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrNetwork indicates the external rate feed was unreachable or answered
// with a non-success status.
var ErrNetwork = errors.New("feed network error")

// ErrParse indicates the feed payload could not be parsed into rate records.
var ErrParse = errors.New("feed parse error")

// ErrPersistence indicates a database transaction failed and was rolled back.
var ErrPersistence = errors.New("persistence error")
