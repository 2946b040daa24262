// Package validation checks request values before they are sent.
//
// Validate runs go-playground/validator `validate` struct tags; Validator is
// a small builder for request types that implement their own checks. Both
// report failures as an *errors.AppError with code INVALID_INPUT.
package validation
