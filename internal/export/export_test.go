package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/cky/internal/parsetree"
)

func sampleTree() parsetree.Node {
	return parsetree.Branch("S", parsetree.Preterminal("A", "a"), parsetree.Preterminal("B", "b"))
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleTree()))

	want := `{
  "symbol": "S",
  "children": [
    {
      "symbol": "A",
      "children": [
        {
          "symbol": "a",
          "children": []
        }
      ]
    },
    {
      "symbol": "B",
      "children": [
        {
          "symbol": "b",
          "children": []
        }
      ]
    }
  ]
}
`
	assert.Equal(t, want, buf.String())
}

func TestWriteJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.json")
	require.NoError(t, WriteJSONFile(path, sampleTree()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var rec parsetree.Record
	require.NoError(t, json.Unmarshal(data, &rec))
	back, err := parsetree.FromRecord(rec)
	require.NoError(t, err)
	assert.True(t, sampleTree().Equal(back))
}

func TestWriteJSONFile_BadPath(t *testing.T) {
	err := WriteJSONFile(filepath.Join(t.TempDir(), "missing", "out.json"), sampleTree())
	assert.Error(t, err)
}

func TestTreeExport_OmitsTreeWhenNotDerivable(t *testing.T) {
	data, err := json.Marshal(TreeExport{Sentence: "b a"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"sentence":"b a","derivable":false}`, string(data))
}

func TestGenerateMermaid(t *testing.T) {
	want := `graph TD
  N0["S"]
  N1["A"]
  N2("a")
  N1 --> N2
  N0 --> N1
  N3["B"]
  N4("b")
  N3 --> N4
  N0 --> N3
`
	assert.Equal(t, want, GenerateMermaid(sampleTree()))
}

func TestGenerateMermaid_EscapesQuotes(t *testing.T) {
	out := GenerateMermaid(parsetree.Preterminal("Q", `"`))
	assert.Contains(t, out, `N1("#quot;")`)
}

func TestRenderText(t *testing.T) {
	want := "S\n" +
		"|____A\n" +
		"|    |____a\n" +
		"|____B\n" +
		"     |____b\n"
	assert.Equal(t, want, RenderText(sampleTree()))
}

func TestWriteExport(t *testing.T) {
	tree := sampleTree()

	var buf bytes.Buffer
	require.NoError(t, WriteExport(&buf, NewTreeExport("ab", "a b", &tree)))

	var got TreeExport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "ab", got.Grammar)
	assert.True(t, got.Derivable)
	require.NotNil(t, got.Tree)
	assert.Equal(t, tree.Record(), *got.Tree)

	buf.Reset()
	require.NoError(t, WriteExport(&buf, NewTreeExport("ab", "b a", nil)))
	assert.JSONEq(t, `{"grammar":"ab","sentence":"b a","derivable":false}`, buf.String())
}
