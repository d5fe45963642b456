package links

import (
	"fmt"
	"strings"
)

const (
	// DefaultURL is used when a link is created without a target.
	DefaultURL = "#"
	// DisabledHref replaces the target of disabled links.
	DisabledHref = "javascript:void(0);"
	// DefaultSize is the size key applied to new links.
	DefaultSize = "md"
	// DisabledState is the color table key used for disabled links.
	DisabledState = "default"
	// DataAttributePrefix marks attributes stripped from disabled links.
	DataAttributePrefix = "data-"
	// TranslationNamespace prefixes action title translation keys.
	TranslationNamespace = "core::actions."
	// DefaultConfigPrefix namespaces the style tables.
	DefaultConfigPrefix = "arcanesoft.core"
)

// Translator resolves a translation key to display text. Implementations must
// be total and return a stable value for a stable key.
type Translator interface {
	Translate(key string) string
}

// TranslatorFunc adapts a function into a Translator.
type TranslatorFunc func(key string) string

// Translate implements Translator.
func (fn TranslatorFunc) Translate(key string) string {
	if fn == nil {
		return ""
	}
	return fn(key)
}

// ConfigLookup resolves dotted configuration paths. Missing keys resolve to "".
type ConfigLookup interface {
	Lookup(key string) string
}

// ConfigLookupFunc adapts a function into a ConfigLookup.
type ConfigLookupFunc func(key string) string

// Lookup implements ConfigLookup.
func (fn ConfigLookupFunc) Lookup(key string) string {
	if fn == nil {
		return ""
	}
	return fn(key)
}

// AttributeSerializer turns an ordered attribute set into HTML attribute syntax.
type AttributeSerializer interface {
	Serialize(attrs Attributes) string
}

// StyleKeys builds the dotted config paths for the link style tables.
type StyleKeys struct {
	Prefix string
}

// Color returns the color table path for state.
func (k StyleKeys) Color(state string) string {
	return k.key("colors", state)
}

// Size returns the size table path for size.
func (k StyleKeys) Size(size string) string {
	return k.key("sizes", size)
}

// Icon returns the icon table path for action.
func (k StyleKeys) Icon(action string) string {
	return k.key("icons", action)
}

func (k StyleKeys) key(table, name string) string {
	prefix := strings.Trim(strings.TrimSpace(k.Prefix), ".")
	if prefix == "" {
		prefix = DefaultConfigPrefix
	}
	return fmt.Sprintf("%s.ui.links.%s.%s", prefix, table, name)
}

// TitleKey returns the translation key for an action title.
func TitleKey(action string) string {
	return TranslationNamespace + action
}
