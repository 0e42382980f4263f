package repo

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "detective_quest/internal/errors"
)

func TestCasebookStorage_Names(t *testing.T) {
	names, err := NewCasebookStorage().Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"coleta", "mansao"}, names)
}

func TestCasebookStorage_LoadMansao(t *testing.T) {
	cb, err := NewCasebookStorage().Load("mansao")
	require.NoError(t, err)

	assert.Equal(t, "mansao", cb.Name)
	assert.Equal(t, "Detective Quest: O Caso da Mansão", cb.Title)
	require.NotNil(t, cb.Root)
	assert.Equal(t, "Hall de Entrada", cb.Root.Name)
	assert.Equal(t, "Pegadas de lama no tapete", cb.Root.Clue)
	assert.Equal(t, 9, cb.Root.Count())

	require.NotNil(t, cb.Root.Left)
	assert.Equal(t, "Sala de Estar", cb.Root.Left.Name)
	require.NotNil(t, cb.Root.Right)
	assert.Equal(t, "Cozinha", cb.Root.Right.Name)

	assert.Len(t, cb.Associations, 7)
	suspects := map[string]string{}
	for _, a := range cb.Associations {
		suspects[a.Clue] = a.Suspect
	}
	assert.Equal(t, "Sr. Black", suspects["Carta ameaçadora"])
	assert.Equal(t, "Sr. Black", suspects["Cofre trancado com arranhões"])
}

func TestCasebookStorage_LoadColeta(t *testing.T) {
	cb, err := NewCasebookStorage().Load("coleta")
	require.NoError(t, err)

	assert.Equal(t, 6, cb.Root.Count())
	assert.Empty(t, cb.Associations)
	assert.False(t, cb.Root.Left.HasClue())
	require.NotNil(t, cb.Root.Right.Right)
	assert.Nil(t, cb.Root.Right.Left)
	assert.Equal(t, "Porão", cb.Root.Right.Right.Name)
}

func TestCasebookStorage_LoadErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"casebooks/broken.yaml":    {Data: []byte("title: [unterminated")},
		"casebooks/noroot.yaml":    {Data: []byte("title: Vazio\n")},
		"casebooks/unnamed.yaml":   {Data: []byte("mansion:\n  name: Hall\n  left:\n    clue: sem nome\n")},
		"casebooks/nosuspect.yaml": {Data: []byte("mansion:\n  name: Hall\nsuspects:\n  - clue: Carta\n")},
		"casebooks/ok.yaml":        {Data: []byte("title: Mínimo\nmansion:\n  name: Hall\n  clue: Carta\nsuspects:\n  - clue: Carta\n    suspect: Sr. Black\n")},
		"casebooks/notes.txt":      {Data: []byte("ignored")},
	}
	storage := NewCasebookStorageFS(fsys)

	tests := []struct {
		name string
		want error
	}{
		{name: "missing", want: errs.ErrCasebookNotFound},
		{name: "broken", want: errs.ErrInvalidCasebook},
		{name: "noroot", want: errs.ErrInvalidCasebook},
		{name: "unnamed", want: errs.ErrInvalidCasebook},
		{name: "nosuspect", want: errs.ErrInvalidCasebook},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb, err := storage.Load(tt.name)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, cb)
		})
	}

	cb, err := storage.Load("ok")
	require.NoError(t, err)
	assert.True(t, cb.Root.IsLeaf())
	assert.Len(t, cb.Associations, 1)

	names, err := storage.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"broken", "noroot", "nosuspect", "ok", "unnamed"}, names)
}
