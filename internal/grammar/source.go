package grammar

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source supplies the rules of a grammar. Use File, FS, Bytes or Static.
type Source interface {
	// Name identifies the source in error messages.
	Name() string

	// Rules reads and decodes the rule set.
	Rules() (Rules, error)
}

// Load reads src and builds a Grammar. Any failure is a *LoadError; a
// Grammar is only returned when the whole source was valid.
func Load(src Source) (*Grammar, error) {
	rules, err := src.Rules()
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			return nil, le
		}
		return nil, &LoadError{Kind: KindNotFound, Source: src.Name(), Err: err}
	}

	g, err := New(rules)
	if err != nil {
		return nil, &LoadError{Kind: KindMalformed, Source: src.Name(), Err: err}
	}
	return g, nil
}

// File returns a Source that reads a grammar document from disk.
func File(p string) Source {
	return fileSource{path: p}
}

type fileSource struct {
	path string
}

func (s fileSource) Name() string { return s.path }

func (s fileSource) Rules() (Rules, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &LoadError{Kind: KindNotFound, Source: s.path, Err: err}
	}
	return Decode(filepath.Base(s.path), data)
}

// FS returns a Source that reads a grammar document from fsys.
func FS(fsys fs.FS, name string) Source {
	return fsSource{fsys: fsys, name: name}
}

type fsSource struct {
	fsys fs.FS
	name string
}

func (s fsSource) Name() string { return s.name }

func (s fsSource) Rules() (Rules, error) {
	data, err := fs.ReadFile(s.fsys, s.name)
	if err != nil {
		return nil, &LoadError{Kind: KindNotFound, Source: s.name, Err: err}
	}
	return Decode(path.Base(s.name), data)
}

// Bytes returns a Source over an in-memory document. name selects the
// decoder by extension, as in Decode.
func Bytes(name string, data []byte) Source {
	return bytesSource{name: name, data: data}
}

type bytesSource struct {
	name string
	data []byte
}

func (s bytesSource) Name() string { return s.name }

func (s bytesSource) Rules() (Rules, error) {
	return Decode(s.name, s.data)
}

// Static returns a Source over rules that are already in memory.
func Static(name string, rules Rules) Source {
	return staticSource{name: name, rules: rules}
}

type staticSource struct {
	name  string
	rules Rules
}

func (s staticSource) Name() string { return s.name }

func (s staticSource) Rules() (Rules, error) {
	if s.rules == nil {
		return nil, &LoadError{Kind: KindNotFound, Source: s.name, Err: errors.New("no rules")}
	}
	return s.rules, nil
}

// Decode parses a grammar document. Names ending in .json are decoded as
// JSON; .yml and .yaml as YAML. Other names are sniffed: a document starting
// with '{' is JSON, anything else YAML.
func Decode(name string, data []byte) (Rules, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, &LoadError{Kind: KindMalformed, Source: name, Err: errors.New("empty document")}
	}

	var doc map[string][][]string
	var err error
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		err = json.Unmarshal(trimmed, &doc)
	case ".yml", ".yaml":
		err = yaml.Unmarshal(trimmed, &doc)
	default:
		if trimmed[0] == '{' {
			err = json.Unmarshal(trimmed, &doc)
		} else {
			err = yaml.Unmarshal(trimmed, &doc)
		}
	}
	if err != nil {
		return nil, &LoadError{Kind: KindMalformed, Source: name, Err: fmt.Errorf("decode: %w", err)}
	}
	if doc == nil {
		return nil, &LoadError{Kind: KindMalformed, Source: name, Err: errors.New("document is not a rule mapping")}
	}

	rules := make(Rules, len(doc))
	for lhs, prods := range doc {
		converted := make([]Production, len(prods))
		for i, p := range prods {
			converted[i] = Production(p)
		}
		rules[lhs] = converted
	}
	return rules, nil
}
