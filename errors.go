package disjointset

import "github.com/cockroachdb/errors"

// ErrNotFound is returned when an operation names an element the forest
// does not manage. Use errors.Is to test for it.
var ErrNotFound = errors.New("disjointset: element not found")

func notFound(op string, e any) error {
	return errors.Wrapf(ErrNotFound, "%s %v", op, e)
}
