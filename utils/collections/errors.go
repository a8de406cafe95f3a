package collections

import "github.com/pkg/errors"

var (
	ErrInvalidArgument        = errors.New("invalid argument")
	ErrNilComparer            = errors.New("comparer is nil")
	ErrNilInput               = errors.New("input is nil")
	ErrConcurrentModification = errors.New("set modified during enumeration")
)
