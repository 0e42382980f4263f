package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "detective_quest/internal/errors"
)

func TestNewSuspectHashStorage_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		s, err := NewSuspectHashStorage(size)
		assert.ErrorIs(t, err, errs.ErrInvalidTableSize)
		assert.Nil(t, s)
	}
}

func TestGenerateHash(t *testing.T) {
	tests := []struct {
		key    string
		hash   uint64
		bucket int
	}{
		{key: "", hash: 5381, bucket: 1},
		{key: "a", hash: 177670, bucket: 0},
		{key: "ab", hash: 5863208, bucket: 8},
	}

	s, err := NewSuspectHashStorage(10)
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.hash, generateHash(tt.key))
			assert.Equal(t, tt.bucket, s.bucketIndex(tt.key))
		})
	}
}

func TestGenerateHash_LongKeyWrapsAround(t *testing.T) {
	key := "Cofre trancado com arranhões, lenço com iniciais bordadas e luvas manchadas de graxa"
	assert.Equal(t, generateHash(key), generateHash(key))

	s, err := NewSuspectHashStorage(7)
	require.NoError(t, err)
	idx := s.bucketIndex(key)
	assert.GreaterOrEqual(t, idx, 0)
	assert.Less(t, idx, 7)
}

func TestSuspectHashStorage_InsertLookup(t *testing.T) {
	s, err := NewSuspectHashStorage(10)
	require.NoError(t, err)

	s.Insert("Carta ameaçadora", "Sr. Black")
	s.Insert("Cofre trancado com arranhões", "Sr. Black")
	s.Insert("Livro faltando na estante", "Sra. Scarlet")

	suspect, ok := s.Lookup("Carta ameaçadora")
	assert.True(t, ok)
	assert.Equal(t, "Sr. Black", suspect)

	suspect, ok = s.Lookup("Livro faltando na estante")
	assert.True(t, ok)
	assert.Equal(t, "Sra. Scarlet", suspect)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 10, s.Size())
}

func TestSuspectHashStorage_LookupMiss(t *testing.T) {
	s, err := NewSuspectHashStorage(10)
	require.NoError(t, err)
	s.Insert("Carta ameaçadora", "Sr. Black")

	suspect, ok := s.Lookup("carta ameaçadora")
	assert.False(t, ok)
	assert.Empty(t, suspect)

	_, ok = s.Lookup("Carta ameaçadora ")
	assert.False(t, ok)
}

func TestSuspectHashStorage_OverwriteKeepsSingleEntry(t *testing.T) {
	s, err := NewSuspectHashStorage(10)
	require.NoError(t, err)

	s.Insert("Faca sumida do faqueiro", "Sr. Black")
	s.Insert("Faca sumida do faqueiro", "Coronel Mustard")

	suspect, ok := s.Lookup("Faca sumida do faqueiro")
	assert.True(t, ok)
	assert.Equal(t, "Coronel Mustard", suspect)
	assert.Equal(t, 1, s.Len())
}

func TestSuspectHashStorage_SingleBucketChains(t *testing.T) {
	s, err := NewSuspectHashStorage(1)
	require.NoError(t, err)

	pairs := map[string]string{
		"a":  "Sr. Black",
		"ab": "Sra. Scarlet",
		"":   "Coronel Mustard",
		"b":  "Sr. Green",
	}
	for clue, suspect := range pairs {
		s.Insert(clue, suspect)
	}

	assert.Equal(t, len(pairs), s.Len())
	for clue, want := range pairs {
		got, ok := s.Lookup(clue)
		assert.True(t, ok, clue)
		assert.Equal(t, want, got, clue)
	}

	s.Insert("ab", "Professor Plum")
	got, _ := s.Lookup("ab")
	assert.Equal(t, "Professor Plum", got)
	assert.Equal(t, len(pairs), s.Len())
}

func TestSuspectHashStorage_Teardown(t *testing.T) {
	s, err := NewSuspectHashStorage(3)
	require.NoError(t, err)
	s.Insert("Carta ameaçadora", "Sr. Black")
	s.Insert("Livro faltando na estante", "Sra. Scarlet")
	s.Insert("Luvas manchadas de graxa", "Coronel Mustard")

	assert.Equal(t, 3, s.Teardown())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.Teardown())

	_, ok := s.Lookup("Carta ameaçadora")
	assert.False(t, ok)

	s.Insert("Carta ameaçadora", "Sr. Black")
	assert.Equal(t, 1, s.Len())
}

func TestSuspectHashStorage_ZeroValue(t *testing.T) {
	var s SuspectHashStorage

	suspect, ok := s.Lookup("Carta ameaçadora")
	assert.False(t, ok)
	assert.Empty(t, suspect)
	assert.Equal(t, 0, s.Teardown())
	assert.Equal(t, 0, s.Size())

	s.Insert("Carta ameaçadora", "Sr. Black")
	assert.Equal(t, defaultTableSize, s.Size())
	suspect, ok = s.Lookup("Carta ameaçadora")
	assert.True(t, ok)
	assert.Equal(t, "Sr. Black", suspect)
}
