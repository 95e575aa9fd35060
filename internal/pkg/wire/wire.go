package wire

import "fmt"

// Error reports an upstream payload that is missing a field the mapper
// requires. Mappers never silently default a required field; the error
// propagates to the view boundary.
type Error struct {
	Entity string
	Field  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s payload is missing required field %q", e.Entity, e.Field)
}
