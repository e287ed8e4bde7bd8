package binary

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by every error returned from this package.
// These are all caller mistakes: retrying with the same input will fail again.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	ErrNilBuffer      = fmt.Errorf("%w: destination is nil", ErrInvalidArgument)
	ErrNegativeOffset = fmt.Errorf("%w: negative offset", ErrInvalidArgument)
	ErrBufferTooSmall = fmt.Errorf("%w: destination too small", ErrInvalidArgument)
	ErrOutOfOrder     = fmt.Errorf("%w: keys out of order", ErrInvalidArgument)
)
