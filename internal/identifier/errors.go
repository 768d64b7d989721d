package identifier

import (
	"errors"
	"fmt"
)

// ErrLength is matched by every *LengthError.
var ErrLength = errors.New("invalid identifier length")

// LengthError reports a decode target whose length, counted in characters,
// does not fit its kind.
type LengthError struct {
	Kind    Kind
	Want    int
	Max     int // when set, any length from Want to Max is accepted
	Got     int
	AtLeast bool // Want is a minimum
}

func (e *LengthError) Error() string {
	switch {
	case e.AtLeast:
		return fmt.Sprintf("%s: expected at least %d characters, got %d", e.Kind, e.Want, e.Got)
	case e.Max == e.Want+1:
		return fmt.Sprintf("%s: expected %d or %d characters, got %d", e.Kind, e.Want, e.Max, e.Got)
	case e.Max > e.Want:
		return fmt.Sprintf("%s: expected %d to %d characters, got %d", e.Kind, e.Want, e.Max, e.Got)
	default:
		return fmt.Sprintf("%s: expected %d characters, got %d", e.Kind, e.Want, e.Got)
	}
}

func (e *LengthError) Is(target error) bool {
	return target == ErrLength
}
