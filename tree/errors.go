package tree

import "github.com/pkg/errors"

var (
	ErrMalformedInput = errors.New("malformed input")
	ErrPrecondition   = errors.New("precondition violated")

	ErrEmptyTree      = errors.Wrap(ErrPrecondition, "empty tree")
	ErrUnsupportedTag = errors.Wrap(ErrPrecondition, "unsupported tag")
)
