package di

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/goliatone/go-adminkit/internal/templates"
	"github.com/goliatone/go-adminkit/pkg/commands"
	"github.com/goliatone/go-adminkit/pkg/config"
	"github.com/goliatone/go-adminkit/pkg/interfaces/logger"
	"github.com/goliatone/go-adminkit/pkg/links"
	"github.com/goliatone/go-adminkit/pkg/options"
	"github.com/goliatone/go-adminkit/pkg/routes"
	"github.com/goliatone/go-adminkit/pkg/translations"
	i18n "github.com/goliatone/go-i18n"
)

// Options configure the DI container.
type Options struct {
	Config     config.Config
	Logger     logger.Logger
	Translator i18n.Translator
	// Routes maps route names to URI templates.
	Routes map[string]string
	// Snapshots layer style overrides (tenant, user) over the configured tables.
	Snapshots []options.Snapshot
	// Serializer overrides the attribute serializer used by link renderers.
	Serializer links.AttributeSerializer
}

// Container wires the translator, style tables, routes and view templates
// needed to render admin links.
type Container struct {
	Config     config.Config
	Translator i18n.Translator
	Styles     *options.Resolver
	Routes     *routes.Table
	Templates  *templates.Service
	Commands   *commands.Registry

	logger     logger.Logger
	serializer links.AttributeSerializer
}

func isZeroConfig(cfg config.Config) bool {
	return reflect.ValueOf(cfg).IsZero()
}

// New constructs the container using the supplied options.
func New(opts Options) (*Container, error) {
	cfg := opts.Config
	if isZeroConfig(cfg) {
		cfg = config.Defaults()
	}
	cfg, err := config.Load(cfg)
	if err != nil {
		return nil, err
	}

	lgr := opts.Logger
	if lgr == nil {
		lgr = &logger.Nop{}
	}

	translator := opts.Translator
	if translator == nil {
		translator, err = translations.NewCatalogTranslator(cfg.Localization.DefaultLocale)
		if err != nil {
			return nil, fmt.Errorf("di: translator: %w", err)
		}
	}

	defaults := config.Defaults()
	defaults.UI.Prefix = cfg.UI.Prefix
	snapshots := []options.Snapshot{
		options.ConfigSnapshot(options.DefaultsScope(), defaults),
		options.ConfigSnapshot(options.SystemScope(), cfg),
	}
	snapshots = append(snapshots, opts.Snapshots...)
	styles, err := options.NewResolver(snapshots...)
	if err != nil {
		return nil, fmt.Errorf("di: styles: %w", err)
	}

	table := routes.NewTable()
	if err := table.RegisterAll(opts.Routes); err != nil {
		return nil, err
	}

	c := &Container{
		Config:     cfg,
		Translator: translator,
		Styles:     styles,
		Routes:     table,
		logger:     lgr,
		serializer: opts.Serializer,
	}

	partials := make([]templates.Partial, 0, len(cfg.Templates.Partials))
	for name, source := range cfg.Templates.Partials {
		partials = append(partials, templates.Partial{Name: name, Source: source})
	}

	tplSvc, err := templates.NewService(
		translator,
		templates.WithDefaultLocale(cfg.Localization.DefaultLocale),
		templates.WithLinkRenderers(c.Renderer),
		templates.WithPartials(partials...),
		templates.WithLogger(lgr),
	)
	if err != nil {
		return nil, err
	}
	c.Templates = tplSvc

	cmdRegistry, err := commands.New(commands.Dependencies{
		Templates: tplSvc,
		Routes:    table,
		Logger:    lgr,
	})
	if err != nil {
		return nil, fmt.Errorf("di: commands: %w", err)
	}
	c.Commands = cmdRegistry

	return c, nil
}

// Renderer returns a link renderer translating titles into locale. An empty
// locale uses the configured default.
func (c *Container) Renderer(locale string) *links.Renderer {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		locale = c.Config.Localization.DefaultLocale
	}
	deps := links.Dependencies{
		Config:       c.Styles,
		Serializer:   c.serializer,
		ConfigPrefix: c.Config.UI.Prefix,
		Logger:       c.logger,
	}
	if tr, err := translations.NewTranslator(c.Translator, locale, translations.WithLogger(c.logger)); err == nil {
		deps.Translator = tr
	}
	return links.NewRenderer(deps)
}

// Links returns a request-scoped link factory for locale.
func (c *Container) Links(locale string) *links.Factory {
	return links.NewFactory(c.Renderer(locale), c.Routes)
}
