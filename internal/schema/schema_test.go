package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xmldiff/xmldiff/internal/bigram"
)

func TestFormatUnknownSignature(t *testing.T) {
	r := NewRegistry()
	id, vec := r.Format("root.never.seen", nil)
	assert.Equal(t, -1, id)
	assert.Nil(t, vec)
}

func TestSameSignatureSameID(t *testing.T) {
	r := NewRegistry()
	r.AddPropertyNames("root.movie", []string{"title"})
	r.AddPropertyNames("root.movie", []string{"episode"})

	id1, vec1 := r.Format("root.movie", map[string]bigram.Bigram{"title": bigram.New("A New Hope")})
	id2, vec2 := r.Format("root.movie", map[string]bigram.Bigram{"episode": bigram.New("IV")})

	require.Equal(t, id1, id2)
	assert.Len(t, vec1, 2)
	assert.Len(t, vec2, 2)
}

func TestColumnOrderIsFirstSeen(t *testing.T) {
	r := NewRegistry()
	r.AddPropertyNames("root.movie", []string{"episode", "title"})
	r.AddPropertyNames("root.movie", []string{"release_date"})

	assert.Equal(t, 3, r.ColumnCount("root.movie"))

	_, vec := r.Format("root.movie", map[string]bigram.Bigram{
		"episode":      bigram.New("IV"),
		"title":        bigram.New("A New Hope"),
		"release_date": bigram.New("05/25/1977"),
	})
	require.Len(t, vec, 3)
	assert.Equal(t, bigram.New("IV"), vec[0])
	assert.Equal(t, bigram.New("A New Hope"), vec[1])
	assert.Equal(t, bigram.New("05/25/1977"), vec[2])
}

func TestFormatMissingPropertyIsEmptyBigram(t *testing.T) {
	r := NewRegistry()
	r.AddPropertyNames("root.movie", []string{"title", "rating"})

	_, vec := r.Format("root.movie", map[string]bigram.Bigram{"title": bigram.New("A New Hope")})
	require.Len(t, vec, 2)
	assert.True(t, vec[1].IsEmpty())
}

func TestDistinctSignaturesGetDistinctIDs(t *testing.T) {
	r := NewRegistry()
	r.AddPropertyNames("root.movie", []string{"title"})
	r.AddPropertyNames("root.movie.title", nil)

	idA, _ := r.Format("root.movie", nil)
	idB, _ := r.Format("root.movie.title", nil)
	assert.NotEqual(t, idA, idB)
}
