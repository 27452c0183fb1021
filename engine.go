package sortscript

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Clydinite/SortScript/internal/dsl"
	"github.com/Clydinite/SortScript/internal/snap"
)

// OrderFileName is the file the library reads ordering rules from.
const OrderFileName = ".order"

// Engine applies a parsed ordering file to directory snapshots. It holds
// only the immutable AST and an optional stat lookup; every Order call
// compiles scopes fresh, so one Engine may serve concurrent calls over
// different snapshots.
type Engine struct {
	ast  *dsl.OrderFile
	stat snap.StatFunc
}

// Option configures an Engine.
type Option func(*Engine)

// WithStat injects the stat lookup consulted by the size, modified, and
// created tiebreakers for nodes whose snapshot carries no stat fields. A
// failed lookup degrades the affected comparison to equal.
func WithStat(fn StatFunc) Option {
	return func(e *Engine) {
		e.stat = fn
	}
}

// New creates an Engine for the given AST. A nil AST behaves as an empty
// ordering file: default alphabetical order, directories first.
func New(ast *OrderFile, opts ...Option) *Engine {
	if ast == nil {
		ast = &dsl.OrderFile{}
	}
	e := &Engine{ast: ast}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Parse parses ordering-file source text into an immutable AST. A lexical or
// grammar violation aborts the whole parse; no partial AST is returned.
func Parse(src string) (*OrderFile, error) {
	return dsl.Parse(src)
}

// LoadOrderFile parses <dir>/.order. A missing file yields the empty AST; a
// present but invalid file returns the parse error so the host can surface
// it and fall back to default ordering.
func LoadOrderFile(dir string) (*OrderFile, error) {
	src, err := os.ReadFile(filepath.Join(dir, OrderFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return &dsl.OrderFile{}, nil
		}
		return nil, fmt.Errorf("read order file: %w", err)
	}
	return dsl.Parse(string(src))
}

// Walk builds a snapshot of the filesystem rooted at root, capturing the
// stat fields the tiebreakers use. The engine itself never performs I/O;
// hosts may supply snapshots from any source.
func Walk(root string) (*Directory, error) {
	return snap.Walk(root)
}
