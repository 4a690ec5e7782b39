package hnsw

import (
	"fmt"

	"github.com/arborvector/hnsw/vector"
)

// ErrInvalidArgument is the sentinel wrapped by every failure this package
// returns: duplicate ids on Insert, malformed SearchRequests, and
// dimension mismatches surfaced from the vector/metric layers all unwrap
// to this one error kind, per the core's single-error-kind design. It is
// the same value as vector.ErrInvalidArgument and metric.ErrInvalidArgument.
var ErrInvalidArgument = vector.ErrInvalidArgument

// DuplicateIDError reports an Insert call whose vector id already exists
// in the index. The index and its entry point are left unmodified when
// this error is returned.
type DuplicateIDError struct {
	ID int64
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("hnsw: id %d already present", e.ID)
}

func (e *DuplicateIDError) Unwrap() error { return ErrInvalidArgument }
