package links

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/a-h/templ"
	"github.com/goliatone/go-adminkit/pkg/interfaces/logger"
)

// Renderer turns links into HTML. It is read-only after construction and may
// be shared across requests.
type Renderer struct {
	translator Translator
	config     ConfigLookup
	serializer AttributeSerializer
	keys       StyleKeys
	logger     logger.Logger
}

// Dependencies wires the lookups used while rendering. Nil members fall back
// to total defaults: KeyTranslator, NopConfig and HTMLSerializer.
type Dependencies struct {
	Translator   Translator
	Config       ConfigLookup
	Serializer   AttributeSerializer
	ConfigPrefix string
	Logger       logger.Logger
}

// NewRenderer builds a renderer from deps.
func NewRenderer(deps Dependencies) *Renderer {
	if deps.Translator == nil {
		deps.Translator = KeyTranslator{}
	}
	if deps.Config == nil {
		deps.Config = NopConfig{}
	}
	if deps.Serializer == nil {
		deps.Serializer = HTMLSerializer{}
	}
	if deps.Logger == nil {
		deps.Logger = &logger.Nop{}
	}
	return &Renderer{
		translator: deps.Translator,
		config:     deps.Config,
		serializer: deps.Serializer,
		keys:       StyleKeys{Prefix: deps.ConfigPrefix},
		logger:     deps.Logger,
	}
}

// Render produces the anchor element for l. It never fails and is idempotent
// for unchanged link state.
func (r *Renderer) Render(l *Link) string {
	if r == nil {
		r = NewRenderer(Dependencies{})
	}
	if l == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("<a")
	b.WriteString(r.serializer.Serialize(r.attributes(l)))
	b.WriteString(">")
	b.WriteString(r.content(l))
	b.WriteString("</a>")
	return b.String()
}

// Title returns the translated, capitalized action title.
func (r *Renderer) Title(action string) string {
	return upperFirst(r.translator.Translate(TitleKey(action)))
}

// Class returns the CSS class list for l.
func (r *Renderer) Class(l *Link) string {
	state := l.action
	if l.disabled {
		state = DisabledState
	}
	parts := []string{"btn", r.lookup(r.keys.Size(l.size)), r.lookup(r.keys.Color(state))}

	classes := parts[:0]
	for _, part := range parts {
		if part != "" {
			classes = append(classes, part)
		}
	}
	return strings.Join(classes, " ")
}

// Icon returns the icon markup for action.
func (r *Renderer) Icon(action string) string {
	return `<i class="` + templ.EscapeString(r.lookup(r.keys.Icon(action))) + `"></i>`
}

func (r *Renderer) attributes(l *Link) Attributes {
	href := l.URL()
	if l.disabled {
		href = DisabledHref
	}

	attrs := NewAttributes("href", href, "class", r.Class(l))
	if l.withTooltip {
		attrs.Set("data-toggle", "tooltip")
		attrs.Set("data-original-title", r.Title(l.action))
	}
	if l.disabled {
		attrs.Set("disabled", "disabled")
	}
	attrs.Merge(l.attributes)
	return attrs
}

func (r *Renderer) content(l *Link) string {
	if l.withTooltip || !l.withTitle {
		return r.Icon(l.action)
	}
	title := templ.EscapeString(r.Title(l.action))
	if l.withIcon {
		return r.Icon(l.action) + " " + title
	}
	return title
}

func (r *Renderer) lookup(key string) string {
	value := strings.TrimSpace(r.config.Lookup(key))
	if value == "" {
		r.logger.Debug("links: style key unresolved", logger.Field{Key: "key", Value: key})
	}
	return value
}

func upperFirst(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(first)) + s[size:]
}
