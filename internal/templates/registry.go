package templates

import (
	"strings"
	"sync"
)

// Partial is a named view fragment rendered with go-template.
type Partial struct {
	Name   string
	Source string
	Schema Schema
}

var actionSchema = Schema{Required: []string{"url"}}

// DefaultPartials returns the built-in action partials. Each one renders a
// single icon link for its action and accepts "url" and "disabled".
func DefaultPartials() []Partial {
	actions := []string{"show", "create", "edit", "enable", "disable", "restore", "delete"}
	partials := make([]Partial, 0, len(actions)+2)
	for _, action := range actions {
		partials = append(partials, Partial{
			Name:   "actions." + action + "-icon-link",
			Source: `{{ icon_link("` + action + `", url, disabled)|safe }}`,
			Schema: actionSchema,
		})
	}
	partials = append(partials,
		Partial{
			Name:   "actions.link",
			Source: `{{ link(action, url, disabled)|safe }}`,
			Schema: Schema{Required: []string{"action", "url"}},
		},
		Partial{
			Name:   "actions.icon-link",
			Source: `{{ icon_link(action, url, disabled)|safe }}`,
			Schema: Schema{Required: []string{"action", "url"}},
		},
	)
	return partials
}

type registry struct {
	mu       sync.RWMutex
	partials map[string]Partial
}

func newRegistry() *registry {
	return &registry{
		partials: make(map[string]Partial),
	}
}

func (r *registry) Upsert(p Partial) {
	key := normalizeKey(p.Name)
	if key == "" {
		return
	}
	p.Schema = sanitizeSchema(p.Schema)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.partials[key] = p
}

func (r *registry) Resolve(name string) (Partial, error) {
	key := normalizeKey(name)
	if key == "" {
		return Partial{}, ErrPartialNotFound
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.partials[key]
	if !ok {
		return Partial{}, ErrPartialNotFound
	}
	return p, nil
}

func (r *registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.partials))
	for _, p := range r.partials {
		names = append(names, p.Name)
	}
	return names
}

func normalizeKey(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
