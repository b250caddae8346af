package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/cky/internal/export"
	"github.com/dusk-indust/cky/internal/grammar"
	"github.com/dusk-indust/cky/internal/parsetree"
)

const dogsWitness = "(S (NP I) (VP (V chased) (NP (Det the) (N dog))))"

// runCLI executes the root command against an empty config directory
// unless args already name one.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	hasConfig := false
	for _, a := range args {
		if a == "--config" {
			hasConfig = true
		}
	}
	if !hasConfig {
		args = append([]string{"--config", t.TempDir()}, args...)
	}

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}

func TestParse_Arguments(t *testing.T) {
	out, err := runCLI(t, "", "parse", "--grammar", "dogs", "--format", "bracket", "I", "chased", "the", "dog")
	require.NoError(t, err)
	assert.Equal(t, "derivable\n"+dogsWitness+"\n", out)
}

func TestParse_NotDerivable(t *testing.T) {
	out, err := runCLI(t, "", "parse", "-g", "dogs", "dog", "the", "chased")
	require.NoError(t, err)
	assert.Equal(t, "not derivable\n", out)
}

func TestParse_TextFormatDefault(t *testing.T) {
	out, err := runCLI(t, "", "parse", "-g", "dogs", "I chased the dog")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "derivable\nS\n|____NP\n"), out)
}

func TestParse_Stdin(t *testing.T) {
	stdin := "I chased the dog\n\n  dog the  \nQuit\nI chased the dog\n"
	out, err := runCLI(t, stdin, "parse", "-g", "dogs", "-f", "bracket")
	require.NoError(t, err)
	assert.Equal(t, "derivable\n"+dogsWitness+"\nnot derivable\n", out)
}

func TestParse_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sentences.txt")
	require.NoError(t, os.WriteFile(path, []byte("I chased the dog\n\ndog the\nthe dog chased I\n"), 0o644))

	out, err := runCLI(t, "", "parse", "-g", "dogs", "-f", "bracket", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "derivable\n"+dogsWitness+"\n"+
		"not derivable\n"+
		"derivable\n(S (NP (Det the) (N dog)) (VP (V chased) (NP I)))\n", out)

	_, err = runCLI(t, "", "parse", "-g", "dogs", "--file", path, "I")
	assert.Error(t, err)
}

func TestParse_JSONAndOutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.json")
	out, err := runCLI(t, "", "parse", "-g", "dogs", "-f", "json", "-o", path, "I chased the dog")
	require.NoError(t, err)

	var exp export.TreeExport
	require.NoError(t, json.Unmarshal([]byte(out), &exp))
	assert.Equal(t, "dogs", exp.Grammar)
	assert.Equal(t, "I chased the dog", exp.Sentence)
	assert.True(t, exp.Derivable)
	require.NotNil(t, exp.Tree)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var rec parsetree.Record
	require.NoError(t, json.Unmarshal(data, &rec))
	assert.Equal(t, *exp.Tree, rec)
}

func TestParse_JSONNotDerivable(t *testing.T) {
	out, err := runCLI(t, "", "parse", "-g", "dogs", "-f", "json", "dog")
	require.NoError(t, err)
	assert.JSONEq(t, `{"grammar":"dogs","sentence":"dog","derivable":false}`, out)
}

func TestParse_AllTrees(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "amb.yml")
	require.NoError(t, os.WriteFile(path, []byte("S: [[A, A], [B, B]]\nA: [[x]]\nB: [[x]]\n"), 0o644))

	out, err := runCLI(t, "", "parse", "-g", path, "-f", "bracket", "--all", "x x")
	require.NoError(t, err)
	assert.Equal(t, "derivable\n(S (A x) (A x))\n(S (B x) (B x))\n", out)
}

func TestParse_Mermaid(t *testing.T) {
	out, err := runCLI(t, "", "parse", "-g", "dogs", "-f", "mermaid", "I chased the dog")
	require.NoError(t, err)
	assert.Contains(t, out, "graph TD\n")
	assert.Contains(t, out, `N0["S"]`)
}

func TestParse_Errors(t *testing.T) {
	_, err := runCLI(t, "", "parse", "-g", "dogs", "-f", "yaml", "I")
	assert.ErrorContains(t, err, "unknown format")

	_, err = runCLI(t, "", "parse", "-g", "missing", "I")
	require.Error(t, err)
	assert.True(t, errors.Is(err, grammar.ErrNotFound))
}

func TestParse_ConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cky.yml"), []byte("defaultGrammar: dogs\nformat: bracket\n"), 0o644))

	out, err := runCLI(t, "", "--config", dir, "parse", "I chased the dog")
	require.NoError(t, err)
	assert.Equal(t, "derivable\n"+dogsWitness+"\n", out)
}

func TestParse_ConfigGrammarDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "grammars"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "grammars", "dogs.json"),
		[]byte(`{"S": [["N", "V"]], "N": [["dogs"]], "V": [["bark"]]}`), 0o644))

	out, err := runCLI(t, "", "--config", dir, "parse", "-g", "dogs", "-f", "bracket", "dogs bark")
	require.NoError(t, err)
	assert.Equal(t, "derivable\n(S (N dogs) (V bark))\n", out)
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "g.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"S": [["A", "B"]], "A": [["a"]], "B": [["b"]], "C": [["c"]]}`), 0o644))

	out, err := runCLI(t, "", "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "4 productions, 4 non-terminals, 3 terminals")
	assert.Contains(t, out, "unreachable:")

	_, err = runCLI(t, "", "check", "--strict", path)
	assert.Error(t, err)
}

func TestCheck_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"S": [["A", "B", "C"]]}`), 0o644))

	_, err := runCLI(t, "", "check", path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, grammar.ErrMalformed))
	assert.Contains(t, err.Error(), "malformed production")
}

func TestGrammars(t *testing.T) {
	out, err := runCLI(t, "", "grammars")
	require.NoError(t, err)
	assert.Contains(t, out, "dogs")
	assert.Contains(t, out, "jurafsky")
	assert.Contains(t, out, "(built-in)")
}

func TestShow(t *testing.T) {
	out, err := runCLI(t, "", "show", "dogs")
	require.NoError(t, err)
	assert.Contains(t, out, `"chased"`)

	_, err = runCLI(t, "", "show", "nope")
	assert.True(t, errors.Is(err, grammar.ErrNotFound))
}
