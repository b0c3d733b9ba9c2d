package rating

import (
	"errors"
	"fmt"
)

// InvalidRatingError reports a star value outside the allowed 1-5 range.
//
// The UI only emits values in range, so hitting this error indicates
// programmatic misuse rather than a user mistake.
type InvalidRatingError struct {
	Stars int
}

func (e *InvalidRatingError) Error() string {
	return fmt.Sprintf("invalid rating %d: stars must be between 1 and 5", e.Stars)
}

// IsInvalidRating reports whether err is an InvalidRatingError.
func IsInvalidRating(err error) bool {
	var invalid *InvalidRatingError
	return errors.As(err, &invalid)
}
