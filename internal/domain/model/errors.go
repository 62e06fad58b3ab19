package model

import "fmt"

// DependencyError reports that an environment dependency (a directory API
// endpoint) could not be verified during bootstrap.
type DependencyError struct {
	Name   string
	Reason string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("dependency %s unavailable: %s", e.Name, e.Reason)
}

// AuthError reports a failure to establish or use a directory API session.
type AuthError struct {
	Op  string
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth: %s: %v", e.Op, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// APIError reports a non-success response from the directory API.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s failed with status %d: %s", e.Op, e.StatusCode, e.Body)
}
