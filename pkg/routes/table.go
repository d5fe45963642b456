// Package routes maps route names to RFC 6570 URI templates and expands them
// into link targets.
package routes

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-adminkit/pkg/links"
	"github.com/yosida95/uritemplate/v3"
)

var (
	// ErrRouteNotFound is returned when no route is registered under a name.
	ErrRouteNotFound = errors.New("routes: route not found")
	// ErrRouteName is returned when registering a route without a name.
	ErrRouteName = errors.New("routes: route name is required")
)

// Table is a concurrency-safe registry of named URI templates.
type Table struct {
	mu     sync.RWMutex
	routes map[string]*uritemplate.Template
}

var _ links.URLResolver = (*Table)(nil)

// NewTable returns an empty route table.
func NewTable() *Table {
	return &Table{routes: make(map[string]*uritemplate.Template)}
}

// Register parses template and stores it under name, replacing any previous
// route with the same name.
func (t *Table) Register(name, template string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrRouteName
	}
	tpl, err := uritemplate.New(template)
	if err != nil {
		return fmt.Errorf("routes: parse %s: %w", name, err)
	}
	t.mu.Lock()
	t.routes[name] = tpl
	t.mu.Unlock()
	return nil
}

// RegisterAll registers every name/template pair, stopping at the first error.
func (t *Table) RegisterAll(routes map[string]string) error {
	for name, template := range routes {
		if err := t.Register(name, template); err != nil {
			return err
		}
	}
	return nil
}

// Has reports whether name is registered.
func (t *Table) Has(name string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.routes[strings.TrimSpace(name)]
	return ok
}

// URL expands the named route with params.
func (t *Table) URL(name string, params map[string]string) (string, error) {
	t.mu.RLock()
	tpl, ok := t.routes[strings.TrimSpace(name)]
	t.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrRouteNotFound, name)
	}

	values := uritemplate.Values{}
	for k, v := range params {
		values.Set(k, uritemplate.String(v))
	}
	url, err := tpl.Expand(values)
	if err != nil {
		return "", fmt.Errorf("routes: expand %s: %w", name, err)
	}
	return url, nil
}

// Resolve implements links.URLResolver, returning links.DefaultURL when the
// route is unknown or cannot be expanded.
func (t *Table) Resolve(name string, params map[string]string) string {
	if t == nil {
		return links.DefaultURL
	}
	url, err := t.URL(name, params)
	if err != nil || url == "" {
		return links.DefaultURL
	}
	return url
}
