package commands

import (
	"errors"

	internalcommands "github.com/goliatone/go-adminkit/internal/commands"
	"github.com/goliatone/go-adminkit/internal/templates"
	"github.com/goliatone/go-adminkit/pkg/interfaces/logger"
	"github.com/goliatone/go-adminkit/pkg/routes"
	command "github.com/goliatone/go-command"
)

// Re-export request types so consumers need not import internal packages.
type (
	PartialUpsert     = internalcommands.PartialUpsert
	RouteRegistration = internalcommands.RouteRegistration
)

var (
	ErrPartialExists = internalcommands.ErrPartialExists
	ErrRouteExists   = internalcommands.ErrRouteExists
)

// Registry exposes go-command compatible handlers backed by the module services.
type Registry struct {
	Catalog       *internalcommands.Catalog
	UpsertPartial command.Commander[PartialUpsert]
	RegisterRoute command.Commander[RouteRegistration]
}

// Dependencies mirror the internal command dependencies.
type Dependencies struct {
	Templates *templates.Service
	Routes    *routes.Table
	Logger    logger.Logger
}

// New builds the registry using the provided dependencies.
func New(deps Dependencies) (*Registry, error) {
	if deps.Templates == nil {
		return nil, errors.New("commands: templates service is required")
	}
	if deps.Routes == nil {
		return nil, errors.New("commands: route table is required")
	}
	catalog, err := internalcommands.NewCatalog(internalcommands.Dependencies{
		Partials: deps.Templates,
		Routes:   deps.Routes,
		Logger:   deps.Logger,
	})
	if err != nil {
		return nil, err
	}
	return &Registry{
		Catalog:       catalog,
		UpsertPartial: catalog.UpsertPartial,
		RegisterRoute: catalog.RegisterRoute,
	}, nil
}

// Commanders returns every handler so callers can register them with go-command registries.
func (r *Registry) Commanders() []any {
	if r == nil {
		return nil
	}
	return []any{
		r.UpsertPartial,
		r.RegisterRoute,
	}
}
