package internal

import "fmt"

// ValidationError is a user input problem; nothing has been fetched when it is returned.
type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string { return e.Message }

func Invalid(code, msg string) *ValidationError { return &ValidationError{Code: code, Message: msg} }

// FetchError ties a failed request to the date it was for.
type FetchError struct {
	Date DateKey
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch rates for %s: %v", e.Date, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
