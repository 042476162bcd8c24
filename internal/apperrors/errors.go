package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that no authenticated caller identity was available.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the caller identity does not match the record's owner.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates a state conflict, such as acting on a record in a terminal state.
var ErrConflict = errors.New("conflict")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")
