// Package export renders parse trees for people and for other programs.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dusk-indust/cky/internal/parsetree"
)

// TreeExport is the top-level JSON export of a parse: the sentence, whether
// it was derivable and the witness tree record when it was.
type TreeExport struct {
	Grammar   string            `json:"grammar,omitempty"`
	Sentence  string            `json:"sentence"`
	Derivable bool              `json:"derivable"`
	Tree      *parsetree.Record `json:"tree,omitempty"`
}

// MarshalTree returns the pretty-printed JSON record of n.
func MarshalTree(n parsetree.Node) ([]byte, error) {
	return json.MarshalIndent(n.Record(), "", "  ")
}

// WriteJSON writes the pretty-printed JSON record of n followed by a newline.
func WriteJSON(w io.Writer, n parsetree.Node) error {
	out, err := MarshalTree(n)
	if err != nil {
		return fmt.Errorf("marshal tree: %w", err)
	}
	_, err = w.Write(append(out, '\n'))
	return err
}

// WriteJSONFile writes the JSON record of n to path, replacing any file there.
func WriteJSONFile(path string, n parsetree.Node) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(f, n); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// NewTreeExport builds the export for one parse of sentence. A nil tree
// marks the sentence as not derivable.
func NewTreeExport(grammarName, sentence string, tree *parsetree.Node) TreeExport {
	e := TreeExport{Grammar: grammarName, Sentence: sentence}
	if tree != nil {
		rec := tree.Record()
		e.Derivable = true
		e.Tree = &rec
	}
	return e
}

// WriteExport writes e as indented JSON followed by a newline.
func WriteExport(w io.Writer, e TreeExport) error {
	out, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal export: %w", err)
	}
	_, err = w.Write(append(out, '\n'))
	return err
}
