package translations

import (
	"errors"
	"strings"

	"github.com/goliatone/go-adminkit/pkg/interfaces/logger"
	"github.com/goliatone/go-adminkit/pkg/links"
	i18n "github.com/goliatone/go-i18n"
)

var errTranslatorRequired = errors.New("translations: translator is required")

// Translator binds an i18n.Translator to a locale and satisfies
// links.Translator. Missing keys resolve to the key itself.
type Translator struct {
	translator i18n.Translator
	locale     string
	logger     logger.Logger
}

var _ links.Translator = (*Translator)(nil)

// Option configures a Translator.
type Option func(*Translator)

// WithLogger reports missing translations at debug level.
func WithLogger(lgr logger.Logger) Option {
	return func(t *Translator) {
		if lgr != nil {
			t.logger = lgr
		}
	}
}

// NewTranslator wraps translator for locale.
func NewTranslator(translator i18n.Translator, locale string, opts ...Option) (*Translator, error) {
	if translator == nil {
		return nil, errTranslatorRequired
	}
	t := &Translator{
		translator: translator,
		locale:     strings.TrimSpace(locale),
		logger:     &logger.Nop{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	return t, nil
}

// NewCatalogTranslator builds an i18n translator over Catalogs with
// defaultLocale as its fallback locale.
func NewCatalogTranslator(defaultLocale string) (i18n.Translator, error) {
	store := i18n.NewStaticStore(Catalogs())
	return i18n.NewSimpleTranslator(store, i18n.WithTranslatorDefaultLocale(defaultLocale))
}

// Locale returns the bound locale.
func (t *Translator) Locale() string {
	if t == nil {
		return ""
	}
	return t.locale
}

// WithLocale returns a copy bound to locale.
func (t *Translator) WithLocale(locale string) *Translator {
	clone := *t
	clone.locale = strings.TrimSpace(locale)
	return &clone
}

// Translate implements links.Translator.
func (t *Translator) Translate(key string) string {
	if t == nil || t.translator == nil {
		return key
	}
	value, err := t.translator.Translate(t.locale, key)
	if err != nil || value == "" {
		t.logger.Debug("translations: missing key",
			logger.Field{Key: "key", Value: key},
			logger.Field{Key: "locale", Value: t.locale},
		)
		return key
	}
	return value
}
