package board

import "github.com/pkg/errors"

// ErrIllegalMove is returned when a place/move precondition is violated.
// The state is left unchanged whenever this error is returned.
var ErrIllegalMove = errors.New("board: illegal move")

// illegalf wraps ErrIllegalMove with a formatted reason.
func illegalf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrIllegalMove, format, args...)
}
