package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/goliatone/go-config/cfgx"
)

// Config captures module-level configuration knobs. Feature packages (links,
// templates, translations) pull from these nested structs.
type Config struct {
	Localization LocalizationConfig `mapstructure:"localization" json:"localization"`
	UI           UIConfig           `mapstructure:"ui" json:"ui"`
	Templates    TemplateConfig     `mapstructure:"templates" json:"templates"`
}

// LocalizationConfig controls the locale used for action titles.
type LocalizationConfig struct {
	DefaultLocale string `mapstructure:"default_locale" json:"default_locale"`
}

// UIConfig scopes the admin UI helpers. Prefix namespaces the style tables
// when they are exposed as dotted lookup paths.
type UIConfig struct {
	Prefix string      `mapstructure:"prefix" json:"prefix"`
	Links  LinksConfig `mapstructure:"links" json:"links"`
}

// LinksConfig holds the action link style tables.
type LinksConfig struct {
	Colors map[string]string `mapstructure:"colors" json:"colors"`
	Sizes  map[string]string `mapstructure:"sizes" json:"sizes"`
	Icons  map[string]string `mapstructure:"icons" json:"icons"`
}

// TemplateConfig adds or overrides named view partials.
type TemplateConfig struct {
	Partials map[string]string `mapstructure:"partials" json:"partials"`
}

// Defaults returns the baseline configuration.
func Defaults() Config {
	return Config{
		Localization: LocalizationConfig{DefaultLocale: "en"},
		UI: UIConfig{
			Prefix: "arcanesoft.core",
			Links: LinksConfig{
				Colors: map[string]string{
					"default": "",
					"show":    "btn-xs btn-info",
					"create":  "btn-xs btn-primary",
					"add":     "btn-xs btn-primary",
					"edit":    "btn-xs btn-warning",
					"enable":  "btn-xs btn-success",
					"disable": "btn-xs btn-inverse",
					"restore": "btn-xs btn-primary",
					"delete":  "btn-xs btn-danger",
				},
				Sizes: map[string]string{
					"xs": "btn-xs",
					"sm": "btn-sm",
					"md": "",
					"lg": "btn-lg",
				},
				Icons: map[string]string{
					"show":    "fa fa-fw fa-search",
					"create":  "fa fa-fw fa-plus",
					"add":     "fa fa-fw fa-plus",
					"edit":    "fa fa-fw fa-pencil",
					"enable":  "fa fa-fw fa-power-off",
					"disable": "fa fa-fw fa-power-off",
					"restore": "fa fa-fw fa-reply",
					"delete":  "fa fa-fw fa-trash-o",
				},
			},
		},
	}
}

// Validate ensures required fields are present and sane.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Localization.DefaultLocale) == "" {
		return errors.New("localization.default_locale is required")
	}
	if strings.Trim(strings.TrimSpace(c.UI.Prefix), ".") == "" {
		return errors.New("ui.prefix is required")
	}
	for name := range c.Templates.Partials {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("templates.partials contains an empty name")
		}
	}
	return nil
}

// LinkSnapshot projects the link tables into the nested layout addressed by
// "<prefix>.ui.links.<table>.<key>" lookups.
func (c Config) LinkSnapshot() map[string]any {
	links := map[string]any{
		"colors": stringMap(c.UI.Links.Colors),
		"sizes":  stringMap(c.UI.Links.Sizes),
		"icons":  stringMap(c.UI.Links.Icons),
	}
	node := map[string]any{"ui": map[string]any{"links": links}}

	segments := strings.Split(strings.Trim(strings.TrimSpace(c.UI.Prefix), "."), ".")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] == "" {
			continue
		}
		node = map[string]any{segments[i]: node}
	}
	return node
}

// Load decodes arbitrary input (struct, map, cfg struct) using cfgx helpers.
// While cfgx.Build still returns zero values, we fallback to a lightweight
// decoder to keep smoke tests meaningful.
func Load(input any, opts ...LoadOption) (Config, error) {
	settings := loadOptions{}
	for _, opt := range opts {
		opt(&settings)
	}

	cfg, err := cfgx.Build(input, settings.buildOpts...)
	if err != nil {
		return Config{}, err
	}

	if isZero(cfg) {
		if err := decodeFallback(input, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg = cfg.withDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadOption lets callers amend cfgx build options.
type LoadOption func(*loadOptions)

type loadOptions struct {
	buildOpts []cfgx.Option[Config]
}

// WithBuildOptions forwards cfgx options (preprocessors, hooks, etc.).
func WithBuildOptions(opts ...cfgx.Option[Config]) LoadOption {
	return func(lo *loadOptions) {
		lo.buildOpts = append(lo.buildOpts, opts...)
	}
}

func (c Config) withDefaults() Config {
	defaults := Defaults()

	if strings.TrimSpace(c.Localization.DefaultLocale) == "" {
		c.Localization.DefaultLocale = defaults.Localization.DefaultLocale
	}
	if strings.TrimSpace(c.UI.Prefix) == "" {
		c.UI.Prefix = defaults.UI.Prefix
	}
	c.UI.Links.Colors = mergeTable(defaults.UI.Links.Colors, c.UI.Links.Colors)
	c.UI.Links.Sizes = mergeTable(defaults.UI.Links.Sizes, c.UI.Links.Sizes)
	c.UI.Links.Icons = mergeTable(defaults.UI.Links.Icons, c.UI.Links.Icons)
	return c
}

// mergeTable layers override on top of base without mutating either.
func mergeTable(base, override map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

func stringMap(src map[string]string) map[string]any {
	out := make(map[string]any, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func isZero(cfg Config) bool {
	return reflect.DeepEqual(cfg, Config{})
}

func decodeFallback(input any, cfg *Config) error {
	switch v := input.(type) {
	case nil:
		return nil
	case Config:
		*cfg = v
		return nil
	case *Config:
		if v != nil {
			*cfg = *v
		}
		return nil
	case map[string]any:
		return decodeMap(v, cfg)
	default:
		return fmt.Errorf("unsupported config input type: %T", input)
	}
}

func decodeMap(input map[string]any, cfg *Config) error {
	if input == nil {
		return nil
	}
	payload, err := json.Marshal(input)
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, cfg)
}
