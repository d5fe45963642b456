package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/goliatone/go-adminkit/internal/templates"
	"github.com/goliatone/go-adminkit/pkg/interfaces/logger"
	command "github.com/goliatone/go-command"
)

var (
	// ErrPartialExists is returned when upserting a known partial without AllowUpdate.
	ErrPartialExists = errors.New("commands: partial already exists")
	// ErrRouteExists is returned when registering a known route without AllowUpdate.
	ErrRouteExists = errors.New("commands: route already exists")
)

// Catalog exposes go-command compatible handlers for host transports.
type Catalog struct {
	UpsertPartial command.Commander[PartialUpsert]
	RegisterRoute command.Commander[RouteRegistration]
}

type partialService interface {
	Partial(name string) (templates.Partial, error)
	RegisterPartials(partials ...templates.Partial)
}

type routeTable interface {
	Has(name string) bool
	Register(name, template string) error
}

// Dependencies wires the partial registry and route table into the catalog.
type Dependencies struct {
	Partials partialService
	Routes   routeTable
	Logger   logger.Logger
}

// NewCatalog builds the command catalog using the supplied dependencies.
func NewCatalog(deps Dependencies) (*Catalog, error) {
	if deps.Partials == nil {
		return nil, errors.New("commands: partial service is required")
	}
	if deps.Routes == nil {
		return nil, errors.New("commands: route table is required")
	}
	if deps.Logger == nil {
		deps.Logger = &logger.Nop{}
	}
	return &Catalog{
		UpsertPartial: partialUpsertCommand{partials: deps.Partials, logger: deps.Logger},
		RegisterRoute: routeRegisterCommand{routes: deps.Routes, logger: deps.Logger},
	}, nil
}

// PartialUpsert creates or replaces a named view partial.
type PartialUpsert struct {
	Name        string   `json:"name"`
	Source      string   `json:"source"`
	Required    []string `json:"required"`
	AllowUpdate bool     `json:"allow_update"`
}

type partialUpsertCommand struct {
	partials partialService
	logger   logger.Logger
}

func (c partialUpsertCommand) Execute(ctx context.Context, msg PartialUpsert) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg.Name = strings.TrimSpace(msg.Name)
	if msg.Name == "" {
		return errors.New("commands: partial name is required")
	}
	if strings.TrimSpace(msg.Source) == "" {
		return errors.New("commands: partial source is required")
	}
	if _, err := c.partials.Partial(msg.Name); err == nil {
		if !msg.AllowUpdate {
			return ErrPartialExists
		}
	} else if !errors.Is(err, templates.ErrPartialNotFound) {
		return err
	}
	c.partials.RegisterPartials(templates.Partial{
		Name:   msg.Name,
		Source: msg.Source,
		Schema: templates.Schema{Required: msg.Required},
	})
	c.logger.Info("commands: partial saved", logger.Field{Key: "name", Value: msg.Name})
	return nil
}

// RouteRegistration adds a named URI template to the route table.
type RouteRegistration struct {
	Name        string `json:"name"`
	Template    string `json:"template"`
	AllowUpdate bool   `json:"allow_update"`
}

type routeRegisterCommand struct {
	routes routeTable
	logger logger.Logger
}

func (c routeRegisterCommand) Execute(ctx context.Context, msg RouteRegistration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.routes.Has(msg.Name) && !msg.AllowUpdate {
		return ErrRouteExists
	}
	if err := c.routes.Register(msg.Name, msg.Template); err != nil {
		return err
	}
	c.logger.Info("commands: route registered", logger.Field{Key: "name", Value: strings.TrimSpace(msg.Name)})
	return nil
}
