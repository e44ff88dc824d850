package objpath

import (
	"errors"
	"fmt"

	"github.com/signadot/objpath/ir"
)

var (
	ErrPathNotFound = errors.New("path not found")
	ErrPathConflict = errors.New("path conflict")
	ErrBadSelector  = errors.New("bad selector")
)

// PathNotFoundError is returned in strict mode when Path, the prefix of the
// requested path up to the first segment which could not be resolved, does
// not exist.
type PathNotFoundError struct {
	Path string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrPathNotFound, e.Path)
}

func (e *PathNotFoundError) Unwrap() error {
	return ErrPathNotFound
}

// PathConflictError is returned in strict mode when a write cannot descend
// through Path because it holds a value of kind Kind.
type PathConflictError struct {
	Path string
	Kind ir.Type
}

func (e *PathConflictError) Error() string {
	return fmt.Sprintf("%s: %q holds %s", ErrPathConflict, e.Path, e.Kind)
}

func (e *PathConflictError) Unwrap() error {
	return ErrPathConflict
}
