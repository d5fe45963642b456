// Package adminkit is the public entry point: it assembles translations,
// style tables, routes and view partials and hands out link factories.
package adminkit

import (
	"context"
	"errors"

	"github.com/goliatone/go-adminkit/internal/di"
	internaltemplates "github.com/goliatone/go-adminkit/internal/templates"
	"github.com/goliatone/go-adminkit/pkg/commands"
	"github.com/goliatone/go-adminkit/pkg/config"
	"github.com/goliatone/go-adminkit/pkg/interfaces/logger"
	"github.com/goliatone/go-adminkit/pkg/links"
	"github.com/goliatone/go-adminkit/pkg/options"
	i18n "github.com/goliatone/go-i18n"
)

// ErrModuleNotInitialised is returned by operations on a module that was not
// built with NewModule.
var ErrModuleNotInitialised = errors.New("adminkit: module not initialised")

// Partial is a named view fragment.
type Partial = internaltemplates.Partial

// PartialSchema lists the placeholders a partial requires.
type PartialSchema = internaltemplates.Schema

// PartialRequest names the partial to render and the data it receives.
type PartialRequest = internaltemplates.PartialRequest

// ModuleOptions configure the module facade.
type ModuleOptions struct {
	Config     config.Config
	Logger     logger.Logger
	Translator i18n.Translator
	Routes     map[string]string
	Snapshots  []options.Snapshot
	Serializer links.AttributeSerializer
}

// Module bundles the container and exposes high-level accessors.
type Module struct {
	container *di.Container
}

// NewModule assembles the translator, style resolver, routes and templates.
func NewModule(opts ModuleOptions) (*Module, error) {
	container, err := di.New(di.Options{
		Config:     opts.Config,
		Logger:     opts.Logger,
		Translator: opts.Translator,
		Routes:     opts.Routes,
		Snapshots:  opts.Snapshots,
		Serializer: opts.Serializer,
	})
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Config returns the effective configuration.
func (m *Module) Config() config.Config {
	if m == nil || m.container == nil {
		return config.Config{}
	}
	return m.container.Config
}

// Renderer returns a link renderer for locale.
func (m *Module) Renderer(locale string) *links.Renderer {
	if m == nil || m.container == nil {
		return links.NewRenderer(links.Dependencies{})
	}
	return m.container.Renderer(locale)
}

// Links returns a request-scoped link factory for locale.
func (m *Module) Links(locale string) *links.Factory {
	if m == nil || m.container == nil {
		return links.NewFactory(nil, nil)
	}
	return m.container.Links(locale)
}

// RegisterRoute adds a named URI template to the route table.
func (m *Module) RegisterRoute(name, template string) error {
	if m == nil || m.container == nil {
		return ErrModuleNotInitialised
	}
	return m.container.Routes.Register(name, template)
}

// RegisterPartials adds or replaces view partials.
func (m *Module) RegisterPartials(partials ...Partial) {
	if m == nil || m.container == nil {
		return
	}
	m.container.Templates.RegisterPartials(partials...)
}

// RenderPartial renders a registered partial.
func (m *Module) RenderPartial(ctx context.Context, req PartialRequest) (string, error) {
	if m == nil || m.container == nil {
		return "", ErrModuleNotInitialised
	}
	return m.container.Templates.RenderPartial(ctx, req)
}

// Partials lists the registered partial names.
func (m *Module) Partials() []string {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Templates.Partials()
}

// RegisterHelpers adds template helper functions available to every partial.
func (m *Module) RegisterHelpers(funcs map[string]any) {
	if m == nil || m.container == nil {
		return
	}
	m.container.Templates.RegisterHelpers(funcs)
}

// Commands returns the go-command registry.
func (m *Module) Commands() *commands.Registry {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Commands
}
