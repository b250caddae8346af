package grammardata

import (
	"io/fs"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/cky/internal/cky"
	"github.com/dusk-indust/cky/internal/grammar"
)

func load(t *testing.T, name string) *grammar.Grammar {
	t.Helper()
	g, err := grammar.Load(grammar.FS(FS, path.Join(Dir, name)))
	require.NoError(t, err)
	return g
}

func TestEmbeddedGrammarsLoad(t *testing.T) {
	entries, err := fs.ReadDir(FS, Dir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, e := range entries {
		t.Run(e.Name(), func(t *testing.T) {
			g := load(t, e.Name())
			assert.True(t, g.Has(cky.DefaultStartSymbol))
		})
	}
}

func TestJurafsky(t *testing.T) {
	p := cky.New(load(t, "jurafsky.json"))

	tests := []struct {
		sentence  string
		derivable bool
	}{
		{"I prefer a morning flight", true},
		{"I book the flight through Huston", true},
		{"does she prefer the meal", true},
		{"you never ever drink", true},
		{"she like me", true},
		{"flight the prefer", false},
		{"I prefer a morning flight please", false},
		{"i prefer a morning flight", false},
	}
	for _, tt := range tests {
		t.Run(tt.sentence, func(t *testing.T) {
			res := p.Parse(tt.sentence)
			assert.Equal(t, tt.derivable, res.Derivable())
			if tree, ok := res.Witness(); ok {
				assert.Equal(t, tt.sentence, tree.Sentence())
			}
		})
	}
}

func TestArithmetic(t *testing.T) {
	p := cky.New(load(t, "arithmetic.yml"))
	assert.True(t, p.Parse("1 + 2 * 3").Derivable())
	assert.True(t, p.Parse("2").Derivable())
	assert.False(t, p.Parse("1 +").Derivable())
	assert.False(t, p.Parse("* 1").Derivable())
}
