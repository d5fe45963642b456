package templates

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-adminkit/pkg/interfaces/logger"
	"github.com/goliatone/go-adminkit/pkg/links"
	"github.com/goliatone/go-adminkit/pkg/translations"
	i18n "github.com/goliatone/go-i18n"
	gotemplate "github.com/goliatone/go-template"
)

// RendererFunc returns the link renderer used for a locale.
type RendererFunc func(locale string) *links.Renderer

// Service renders admin view partials with translation and link helpers.
type Service struct {
	renderer      *gotemplate.Engine
	registry      *registry
	helpers       *helperRegistry
	translator    i18n.Translator
	linkRenderers RendererFunc
	logger        logger.Logger
	defaultLocale string
	localeKey     string

	renderMu sync.Mutex
	active   *links.Renderer
}

// PartialRequest names the partial to render and the data it receives.
type PartialRequest struct {
	Name   string
	Locale string
	Data   map[string]any
}

type serviceOptions struct {
	defaultLocale  string
	helperFuncs    []map[string]any
	rendererOpts   []gotemplate.Option
	missingHandler i18n.MissingTranslationHandler
	localeKey      string
	partials       []Partial
	linkRenderers  RendererFunc
	logger         logger.Logger
}

// Option configures the template service.
type Option func(*serviceOptions)

// WithDefaultLocale overrides the locale used when requests do not provide one.
func WithDefaultLocale(locale string) Option {
	return func(so *serviceOptions) {
		so.defaultLocale = locale
	}
}

// WithHelperFuncs registers additional helper functions with the renderer.
func WithHelperFuncs(funcs map[string]any) Option {
	return func(so *serviceOptions) {
		if len(funcs) == 0 {
			return
		}
		so.helperFuncs = append(so.helperFuncs, funcs)
	}
}

// WithRendererOptions forwards options directly to go-template's renderer.
func WithRendererOptions(opts ...gotemplate.Option) Option {
	return func(so *serviceOptions) {
		so.rendererOpts = append(so.rendererOpts, opts...)
	}
}

// WithLocaleKey customizes the key injected into the data map to expose the locale.
func WithLocaleKey(key string) Option {
	return func(so *serviceOptions) {
		if key == "" {
			return
		}
		so.localeKey = key
	}
}

// WithMissingTranslationHandler customizes how go-i18n helpers surface missing keys.
func WithMissingTranslationHandler(handler i18n.MissingTranslationHandler) Option {
	return func(so *serviceOptions) {
		so.missingHandler = handler
	}
}

// WithPartials registers partials on top of DefaultPartials.
func WithPartials(partials ...Partial) Option {
	return func(so *serviceOptions) {
		so.partials = append(so.partials, partials...)
	}
}

// WithLinkRenderers sets the per-locale link renderer used by link helpers.
func WithLinkRenderers(fn RendererFunc) Option {
	return func(so *serviceOptions) {
		so.linkRenderers = fn
	}
}

// WithLogger sets the service logger.
func WithLogger(lgr logger.Logger) Option {
	return func(so *serviceOptions) {
		so.logger = lgr
	}
}

// NewService builds the template service wiring the helper registry, renderer,
// localization translator and link helpers together.
func NewService(translator i18n.Translator, opts ...Option) (*Service, error) {
	if translator == nil {
		return nil, ErrTranslatorRequired
	}

	settings := serviceOptions{
		localeKey: "locale",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&settings)
		}
	}

	defaultLocale := strings.TrimSpace(settings.defaultLocale)
	if defaultLocale == "" {
		if provider, ok := translator.(interface{ DefaultLocale() string }); ok {
			defaultLocale = provider.DefaultLocale()
		}
	}
	if defaultLocale == "" {
		defaultLocale = "en"
	}
	if settings.logger == nil {
		settings.logger = &logger.Nop{}
	}
	if settings.linkRenderers == nil {
		settings.linkRenderers = catalogRenderers(translator)
	}

	rendererOpts := []gotemplate.Option{
		gotemplate.WithBaseDir("."),
	}
	rendererOpts = append(rendererOpts, settings.rendererOpts...)

	renderer, err := gotemplate.NewRenderer(rendererOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRendererConfig, err)
	}

	service := &Service{
		renderer:      renderer,
		registry:      newRegistry(),
		helpers:       newHelperRegistry(renderer),
		translator:    translator,
		linkRenderers: settings.linkRenderers,
		logger:        settings.logger,
		defaultLocale: defaultLocale,
		localeKey:     settings.localeKey,
	}

	helperCfg := i18n.HelperConfig{
		LocaleKey:         service.localeKey,
		TemplateHelperKey: "t",
		OnMissing:         settings.missingHandler,
	}
	service.helpers.Register(i18n.TemplateHelpers(translator, helperCfg))
	service.helpers.Register(service.linkHelperFuncs())

	for _, funcs := range settings.helperFuncs {
		service.helpers.Register(funcs)
	}

	service.RegisterPartials(DefaultPartials()...)
	service.RegisterPartials(settings.partials...)

	return service, nil
}

// RegisterPartials loads partials into the service registry, replacing
// partials with the same name.
func (s *Service) RegisterPartials(partials ...Partial) {
	if s == nil {
		return
	}
	for _, p := range partials {
		s.registry.Upsert(p)
	}
}

// Partial returns the registered partial with name.
func (s *Service) Partial(name string) (Partial, error) {
	if s == nil {
		return Partial{}, ErrRendererConfig
	}
	return s.registry.Resolve(name)
}

// RegisterHelpers adds helper functions to the underlying renderer.
func (s *Service) RegisterHelpers(funcs map[string]any) {
	if s == nil {
		return
	}
	s.helpers.Register(funcs)
}

// Partials lists the registered partial names in order.
func (s *Service) Partials() []string {
	if s == nil {
		return nil
	}
	names := s.registry.Names()
	sort.Strings(names)
	return names
}

// DefaultLocale returns the locale used when requests omit one.
func (s *Service) DefaultLocale() string {
	if s == nil {
		return ""
	}
	return s.defaultLocale
}

// RenderPartial renders the named partial with the request data.
func (s *Service) RenderPartial(ctx context.Context, req PartialRequest) (string, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return "", err
		}
	}
	if s == nil {
		return "", ErrRendererConfig
	}
	if strings.TrimSpace(req.Name) == "" {
		return "", ErrInvalidRenderRequest
	}

	partial, err := s.registry.Resolve(req.Name)
	if err != nil {
		return "", fmt.Errorf("%w: %s", err, req.Name)
	}

	payload := cloneData(req.Data)
	if err := validateSchemaData(partial.Schema, payload); err != nil {
		return "", err
	}
	return s.render(partial.Source, req.Locale, payload)
}

// RenderSource renders an ad-hoc template source with the same helpers as
// the registered partials.
func (s *Service) RenderSource(ctx context.Context, source, locale string, data map[string]any) (string, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return "", err
		}
	}
	if s == nil {
		return "", ErrRendererConfig
	}
	if strings.TrimSpace(source) == "" {
		return "", ErrInvalidRenderRequest
	}
	return s.render(source, locale, cloneData(data))
}

func (s *Service) render(source, locale string, payload map[string]any) (string, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		locale = s.defaultLocale
	}
	payload[s.localeKey] = locale

	s.renderMu.Lock()
	defer s.renderMu.Unlock()

	s.active = s.linkRenderers(locale)
	defer func() { s.active = nil }()

	out, err := s.renderer.RenderString(source, payload)
	if err != nil {
		s.logger.Warn("templates render failed",
			logger.Field{Key: "locale", Value: locale},
			logger.Field{Key: "error", Value: err},
		)
		return "", fmt.Errorf("templates: render: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// activeRenderer is only called from helpers while renderMu is held.
func (s *Service) activeRenderer() *links.Renderer {
	if s.active != nil {
		return s.active
	}
	return s.linkRenderers(s.defaultLocale)
}

func catalogRenderers(translator i18n.Translator) RendererFunc {
	return func(locale string) *links.Renderer {
		tr, err := translations.NewTranslator(translator, locale)
		if err != nil {
			return links.NewRenderer(links.Dependencies{})
		}
		return links.NewRenderer(links.Dependencies{Translator: tr})
	}
}
