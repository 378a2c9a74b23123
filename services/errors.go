package services

import "errors"

// Sentinel errors returned by the service layer. Controllers translate
// them into HTTP status codes; everything else is a 500.
var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("invalid input")
)
