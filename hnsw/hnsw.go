package hnsw

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/arborvector/hnsw/vector"
)

// DistanceFunc computes the distance between two vectors. The graph is
// built and searched against whatever DistanceFunc the Index is
// configured with; the default is Euclidean.
type DistanceFunc func(a, b vector.Vector) (float32, error)

func defaultDistanceFunc(a, b vector.Vector) (float32, error) {
	return a.Distance(b)
}

// Options configures an Index beyond the required M/mL parameters.
type Options struct {
	rng          *rand.Rand
	distanceFunc DistanceFunc
}

// Option mutates Options during NewIndex.
type Option func(*Options)

// WithRNG makes level generation deterministic, for reproducible tests.
// Passing a fixed-seed rand.Rand does not change how levels are drawn,
// only whether the draw is reproducible across runs.
func WithRNG(r *rand.Rand) Option {
	return func(o *Options) { o.rng = r }
}

// WithDistanceFunc overrides the distance function used to build and
// search the graph. The default is Euclidean; a caller wanting a
// cosine-similarity graph can pass one built on metric.CosineSimilarity
// (inverted to a distance, since the kernel treats smaller as closer).
func WithDistanceFunc(f DistanceFunc) Option {
	return func(o *Options) { o.distanceFunc = f }
}

// Index owns every Node, keyed by vector id, and tracks the current
// entry point and maximum layer. Nodes exclusively own their Vector;
// neighbor sets hold ids only, never pointers back into the node map, so
// the graph has no ownership cycles despite being cyclic.
//
// Index is not internally synchronized: it is a single-threaded,
// blocking component per design. Concurrent use requires an external
// lock, which is deliberately not this package's concern.
type Index struct {
	nodes map[int64]*node

	m     int     // target degree at layers >= 1
	mMax0 int     // degree cap at layer 0 (2*m)
	mL    float64 // level-generation multiplier

	entryPoint *int64
	maxLevel   int

	rng          *rand.Rand
	distanceFunc DistanceFunc
}

// NewIndex constructs an empty Index. M must be at least 2 and mL must be
// positive; a typical mL is 1/ln(2).
func NewIndex(m int, mL float64, opts ...Option) (*Index, error) {
	if m < 2 {
		return nil, fmt.Errorf("%w: M must be >= 2, got %d", ErrInvalidArgument, m)
	}
	if mL <= 0 {
		return nil, fmt.Errorf("%w: mL must be > 0, got %f", ErrInvalidArgument, mL)
	}

	o := Options{
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec
		distanceFunc: defaultDistanceFunc,
	}
	for _, fn := range opts {
		fn(&o)
	}

	return &Index{
		nodes:        make(map[int64]*node),
		m:            m,
		mMax0:        2 * m,
		mL:           mL,
		maxLevel:     -1,
		rng:          o.rng,
		distanceFunc: o.distanceFunc,
	}, nil
}

// Size returns the number of vectors currently indexed.
func (idx *Index) Size() int {
	return len(idx.nodes)
}

// Contains reports whether id has already been inserted.
func (idx *Index) Contains(id int64) bool {
	_, ok := idx.nodes[id]
	return ok
}

// randomLevel draws a layer per the geometric distribution
// floor(-ln(U) * mL), guarding U away from 0 to avoid +Inf.
func (idx *Index) randomLevel() int {
	u := idx.rng.Float64()
	for u <= 0 {
		u = idx.rng.Float64()
	}
	return int(math.Floor(-math.Log(u) * idx.mL))
}

// Insert adds v to the index. It fails with ErrInvalidArgument if v's id
// is already present; the node map and entry point are left unmodified
// in that case.
func (idx *Index) Insert(v vector.Vector) error {
	id := v.ID()

	if idx.Contains(id) {
		return &DuplicateIDError{ID: id}
	}

	level := idx.randomLevel()
	n := newNode(v, level)

	// Register before touching neighbor structures: subsequent distance
	// computations reference this node through idx.nodes.
	idx.nodes[id] = n

	if idx.entryPoint == nil {
		ep := id
		idx.entryPoint = &ep
		idx.maxLevel = level
		return nil
	}

	nearest := *idx.entryPoint

	// Zoom-in descent through layers above level, where the new node does
	// not yet participate.
	for layer := idx.maxLevel; layer > level; layer-- {
		res, err := idx.searchLayer(v, []int64{nearest}, 1, layer)
		if err != nil {
			return err
		}
		if len(res) > 0 {
			nearest = res[0].id
		}
	}

	top := level
	if idx.maxLevel < top {
		top = idx.maxLevel
	}

	for layer := top; layer >= 0; layer-- {
		candidates, err := idx.searchLayer(v, []int64{nearest}, idx.m, layer)
		if err != nil {
			return err
		}

		mCap := idx.m
		if layer == 0 {
			mCap = idx.mMax0
		}

		for _, c := range candidates {
			n.AddNeighbor(layer, c.id)
			idx.nodes[c.id].AddNeighbor(layer, id)

			if idx.nodes[c.id].Degree(layer) > mCap {
				if err := idx.prune(c.id, mCap, layer); err != nil {
					return err
				}
			}
		}

		if len(candidates) > 0 {
			nearest = candidates[0].id
		}
	}

	if level > idx.maxLevel {
		idx.maxLevel = level
		ep := id
		idx.entryPoint = &ep
	}

	return nil
}

// Search performs a top-k approximate nearest-neighbor query.
func (idx *Index) Search(req SearchRequest) ([]SearchResult, error) {
	if idx.Size() == 0 {
		return nil, nil
	}

	nearest := *idx.entryPoint

	for layer := idx.maxLevel; layer > 0; layer-- {
		res, err := idx.searchLayer(req.query, []int64{nearest}, 1, layer)
		if err != nil {
			return nil, err
		}
		if len(res) > 0 {
			nearest = res[0].id
		}
	}

	ef := idx.m
	if req.topK > ef {
		ef = req.topK
	}

	cands, err := idx.searchLayer(req.query, []int64{nearest}, ef, 0)
	if err != nil {
		return nil, err
	}

	n := req.topK
	if len(cands) < n {
		n = len(cands)
	}

	out := make([]SearchResult, n)
	for i := 0; i < n; i++ {
		out[i] = SearchResult{ID: cands[i].id, Distance: cands[i].distance}
	}

	return out, nil
}

// BruteSearch is an exhaustive O(N) reference search, kept only to
// cross-check recall in tests; it is not part of the graph traversal
// path and never mutates state.
func (idx *Index) BruteSearch(query vector.Vector, k int) ([]SearchResult, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: k must be > 0, got %d", ErrInvalidArgument, k)
	}

	all := make([]SearchResult, 0, len(idx.nodes))
	for id, n := range idx.nodes {
		d, err := idx.distanceFunc(query, n.vector)
		if err != nil {
			return nil, err
		}
		all = append(all, SearchResult{ID: id, Distance: d})
	}

	sortResultsAscending(all)

	if k > len(all) {
		k = len(all)
	}

	return all[:k], nil
}
