// Package catalog finds grammars by name across grammar directories and
// the grammars embedded in the binary.
package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/dusk-indust/cky/internal/grammar"
	"github.com/dusk-indust/cky/internal/grammardata"
)

// Entry describes one grammar available in the catalog.
type Entry struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Embedded bool   `json:"embedded"`
}

func (e Entry) key() string {
	if e.Embedded {
		return "embedded:" + e.Path
	}
	return e.Path
}

// Catalog lists and loads grammars. Directories are searched in order and
// shadow the embedded grammars. Loaded grammars are cached; a Catalog is
// safe for concurrent use.
type Catalog struct {
	dirs        []string
	embedded    fs.FS
	embeddedDir string

	mu    sync.RWMutex
	cache map[string]*grammar.Grammar
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithEmbedded replaces the embedded grammar set. A nil fsys disables it.
func WithEmbedded(fsys fs.FS, dir string) Option {
	return func(c *Catalog) {
		c.embedded = fsys
		c.embeddedDir = dir
	}
}

// New returns a Catalog over dirs and the grammars in grammardata.
func New(dirs []string, opts ...Option) *Catalog {
	c := &Catalog{
		dirs:        append([]string(nil), dirs...),
		embedded:    grammardata.FS,
		embeddedDir: grammardata.Dir,
		cache:       make(map[string]*grammar.Grammar),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsGrammarFile reports whether name has a grammar document extension.
func IsGrammarFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yml", ".yaml":
		return true
	}
	return false
}

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// List returns every grammar in the catalog sorted by name. Missing
// directories are skipped.
func (c *Catalog) List() ([]Entry, error) {
	seen := make(map[string]bool)
	var entries []Entry

	for _, dir := range c.dirs {
		files, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("read grammar dir: %w", err)
		}
		for _, f := range files {
			if f.IsDir() || !IsGrammarFile(f.Name()) {
				continue
			}
			name := stem(f.Name())
			if seen[name] {
				continue
			}
			seen[name] = true
			entries = append(entries, Entry{Name: name, Path: filepath.Join(dir, f.Name())})
		}
	}

	if c.embedded != nil {
		files, err := fs.ReadDir(c.embedded, c.embeddedDir)
		if err != nil {
			return nil, fmt.Errorf("read embedded grammars: %w", err)
		}
		for _, f := range files {
			if f.IsDir() || !IsGrammarFile(f.Name()) {
				continue
			}
			name := stem(f.Name())
			if seen[name] {
				continue
			}
			seen[name] = true
			entries = append(entries, Entry{Name: name, Path: path.Join(c.embeddedDir, f.Name()), Embedded: true})
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Lookup finds the entry for name. A name with a grammar file extension is
// treated as a path on disk.
func (c *Catalog) Lookup(name string) (Entry, error) {
	if IsGrammarFile(name) {
		return Entry{Name: stem(filepath.Base(name)), Path: name}, nil
	}
	entries, err := c.List()
	if err != nil {
		return Entry{}, err
	}
	for _, e := range entries {
		if e.Name == name {
			return e, nil
		}
	}
	return Entry{}, &grammar.LoadError{
		Kind:   grammar.KindNotFound,
		Source: name,
		Err:    fmt.Errorf("no grammar named %q", name),
	}
}

// Source returns the grammar source for name.
func (c *Catalog) Source(name string) (grammar.Source, error) {
	e, err := c.Lookup(name)
	if err != nil {
		return nil, err
	}
	return c.source(e), nil
}

func (c *Catalog) source(e Entry) grammar.Source {
	if e.Embedded {
		return grammar.FS(c.embedded, e.Path)
	}
	return grammar.File(e.Path)
}

// Load loads and caches the grammar called name.
func (c *Catalog) Load(name string) (*grammar.Grammar, error) {
	e, err := c.Lookup(name)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	g, ok := c.cache[e.key()]
	c.mu.RUnlock()
	if ok {
		return g, nil
	}

	g, err = grammar.Load(c.source(e))
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache[e.key()] = g
	c.mu.Unlock()
	return g, nil
}

// Text returns the raw grammar document for name.
func (c *Catalog) Text(name string) (string, error) {
	e, err := c.Lookup(name)
	if err != nil {
		return "", err
	}
	var data []byte
	if e.Embedded {
		data, err = fs.ReadFile(c.embedded, e.Path)
	} else {
		data, err = os.ReadFile(e.Path)
	}
	if err != nil {
		return "", &grammar.LoadError{Kind: grammar.KindNotFound, Source: e.Path, Err: err}
	}
	return string(data), nil
}
