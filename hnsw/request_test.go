package hnsw

import (
	"errors"
	"strings"
	"testing"

	"github.com/arborvector/hnsw/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearchRequestValidation(t *testing.T) {
	q := vector.New(1, []float32{1, 2})

	_, err := NewSearchRequest(q, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = NewSearchRequest(q, -1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = NewSearchRequest(q, 5, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	req, err := NewSearchRequest(q, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, req.TopK())
	assert.Equal(t, unboundedDepth, req.MaxSearchDepth())

	req, err = NewSearchRequest(q, 5, 42)
	require.NoError(t, err)
	assert.Equal(t, 42, req.MaxSearchDepth())
}

func TestSearchRequestStringIsInformational(t *testing.T) {
	q := vector.New(3, []float32{1})
	req, err := NewSearchRequest(q, 2)
	require.NoError(t, err)

	s := req.String()
	assert.True(t, strings.Contains(s, "topK=2"))
}

func TestSearchResultStringIsInformational(t *testing.T) {
	r := SearchResult{ID: 7, Distance: 1.5}
	assert.Contains(t, r.String(), "7")
}
