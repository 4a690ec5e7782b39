package hnsw

import (
	"fmt"
	"math"
	"sort"

	"github.com/arborvector/hnsw/vector"
)

// unboundedDepth is the sentinel used when a caller does not specify
// MaxSearchDepth: it is validated but never consulted during traversal.
const unboundedDepth = math.MaxInt

// SearchRequest describes a top-k query against an Index.
type SearchRequest struct {
	query          vector.Vector
	topK           int
	maxSearchDepth int
}

// NewSearchRequest constructs a validated SearchRequest. topK must be
// positive. maxSearchDepth defaults to an unbounded sentinel; the core
// accepts and validates it but does not throttle traversal by it.
func NewSearchRequest(query vector.Vector, topK int, maxSearchDepth ...int) (SearchRequest, error) {
	if topK <= 0 {
		return SearchRequest{}, fmt.Errorf("%w: topK must be > 0, got %d", ErrInvalidArgument, topK)
	}

	depth := unboundedDepth
	if len(maxSearchDepth) > 0 {
		depth = maxSearchDepth[0]
		if depth <= 0 {
			return SearchRequest{}, fmt.Errorf("%w: maxSearchDepth must be > 0, got %d", ErrInvalidArgument, depth)
		}
	}

	return SearchRequest{query: query, topK: topK, maxSearchDepth: depth}, nil
}

// TopK returns the requested number of neighbors.
func (r SearchRequest) TopK() int { return r.topK }

// MaxSearchDepth returns the configured traversal depth cap, or the
// unbounded sentinel if none was set.
func (r SearchRequest) MaxSearchDepth() int { return r.maxSearchDepth }

// Query returns the vector being searched for.
func (r SearchRequest) Query() vector.Vector { return r.query }

func (r SearchRequest) String() string {
	return fmt.Sprintf("SearchRequest(id=%d, topK=%d, maxSearchDepth=%d)", r.query.ID(), r.topK, r.maxSearchDepth)
}

// SearchResult is a single hit: an id and its distance to the query,
// orderable ascending by distance.
type SearchResult struct {
	ID       int64
	Distance float32
}

func (r SearchResult) String() string {
	return fmt.Sprintf("SearchResult(id=%d, distance=%f)", r.ID, r.Distance)
}

func sortResultsAscending(results []SearchResult) {
	sort.Slice(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})
}
