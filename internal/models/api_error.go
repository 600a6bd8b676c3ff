package models

import "fmt"

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Endpoint   string
	StatusCode int
	// BodyParsed reports whether the error body was valid JSON.
	BodyParsed bool
	// Detail is the string "detail" field of the body, if any.
	Detail string
	// Message is the string "message" field of the body, if any.
	Message string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: http %d: %s", e.Endpoint, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("%s: http %d", e.Endpoint, e.StatusCode)
}
