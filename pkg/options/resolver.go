package options

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-adminkit/pkg/config"
	"github.com/goliatone/go-adminkit/pkg/links"
	opts "github.com/goliatone/go-options"
	layering "github.com/goliatone/go-options/layering"
)

// Snapshot captures the immutable payload associated with a scope layer.
type Snapshot struct {
	Scope      opts.Scope
	Data       map[string]any
	SnapshotID string
}

// Resolver wraps a go-options Options value and answers the dotted style
// lookups made while rendering links.
type Resolver struct {
	options *opts.Options[map[string]any]
}

var _ links.ConfigLookup = (*Resolver)(nil)

var (
	// ErrNoSnapshots signals that at least one scope snapshot must be provided.
	ErrNoSnapshots = errors.New("options: at least one snapshot is required")
	// ErrNotInitialised is returned by resolvers built without NewResolver.
	ErrNotInitialised = errors.New("options: resolver not initialised")
)

// DefaultsScope returns the lowest priority scope, used for built-in tables.
func DefaultsScope() opts.Scope {
	return opts.NewScope("defaults", opts.ScopePrioritySystem-1000, opts.WithScopeLabel("Defaults"))
}

// SystemScope returns the scope holding application configuration.
func SystemScope() opts.Scope {
	return opts.NewScope("system", opts.ScopePrioritySystem, opts.WithScopeLabel("System"))
}

// TenantScope returns the scope holding per-tenant overrides.
func TenantScope() opts.Scope {
	return opts.NewScope("tenant", opts.ScopePriorityTenant, opts.WithScopeLabel("Tenant"))
}

// UserScope returns the scope holding per-user overrides.
func UserScope() opts.Scope {
	return opts.NewScope("user", opts.ScopePriorityUser, opts.WithScopeLabel("User"))
}

// ConfigSnapshot projects the link tables of cfg into a snapshot for scope.
func ConfigSnapshot(scope opts.Scope, cfg config.Config) Snapshot {
	return Snapshot{Scope: scope, Data: cfg.LinkSnapshot()}
}

// NewResolver merges the provided scope snapshots ordered by their scope
// priority and returns a resolver exposing trace + lookup helpers.
func NewResolver(snapshots ...Snapshot) (*Resolver, error) {
	if len(snapshots) == 0 {
		return nil, ErrNoSnapshots
	}

	layers := make([]opts.Layer[map[string]any], 0, len(snapshots))
	for _, snap := range snapshots {
		if snap.Scope.Name == "" {
			return nil, fmt.Errorf("options: snapshot scope name is required")
		}
		layerOpts := []opts.LayerOption[map[string]any]{}
		if snap.SnapshotID != "" {
			layerOpts = append(layerOpts, opts.WithSnapshotID[map[string]any](snap.SnapshotID))
		}
		payload := cloneMap(snap.Data)
		layers = append(layers, opts.NewLayer(snap.Scope, payload, layerOpts...))
	}

	stack, err := opts.NewStack(layers...)
	if err != nil {
		return nil, err
	}
	merged, err := stack.Merge()
	if err != nil {
		return nil, err
	}
	return &Resolver{options: merged}, nil
}

// Resolve fetches the value stored at path and returns the accompanying trace.
func (r *Resolver) Resolve(path string) (any, opts.Trace, error) {
	if r == nil || r.options == nil {
		return nil, opts.Trace{Path: path}, ErrNotInitialised
	}
	return r.options.ResolveWithTrace(path)
}

// ResolveString resolves the value at path and ensures it is a string.
func (r *Resolver) ResolveString(path string) (string, opts.Trace, error) {
	value, trace, err := r.Resolve(path)
	if err != nil {
		return "", trace, err
	}
	str, ok := value.(string)
	if !ok {
		return "", trace, fmt.Errorf("options: path %s is not a string", path)
	}
	return str, trace, nil
}

// Lookup implements links.ConfigLookup. Missing or non-string values resolve
// to "".
func (r *Resolver) Lookup(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	value, _, err := r.ResolveString(key)
	if err != nil {
		return ""
	}
	return value
}

func cloneMap(src map[string]any) map[string]any {
	if len(src) == 0 {
		return nil
	}
	return layering.Clone(src)
}
