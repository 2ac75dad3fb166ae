package entity

import "fmt"

// ValidationError reports which field of an entity failed validation and why.
// Handlers map it to a 400 response.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
