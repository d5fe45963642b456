package links

import (
	"sort"
	"strings"
	"unicode"

	"github.com/a-h/templ"
)

// Attributes is an insertion-ordered set of HTML attributes with unique keys.
// Keys are trimmed and lower-cased on the way in, so "Class" and " class"
// address the same entry. The zero value is ready to use. Copies share
// storage once the set holds an entry; use Clone for an independent set.
type Attributes struct {
	state *attributeState
}

type attributeState struct {
	keys   []string
	values map[string]string
}

// NewAttributes builds an attribute set from key/value pairs. A trailing key
// without a value is set to "".
func NewAttributes(pairs ...string) Attributes {
	var attrs Attributes
	for i := 0; i < len(pairs); i += 2 {
		value := ""
		if i+1 < len(pairs) {
			value = pairs[i+1]
		}
		attrs.Set(pairs[i], value)
	}
	return attrs
}

// AttributesFromMap builds an attribute set ordered by key.
func AttributesFromMap(src map[string]string) Attributes {
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var attrs Attributes
	for _, k := range keys {
		attrs.Set(k, src[k])
	}
	return attrs
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Set upserts key. Existing keys keep their position. Blank keys are ignored.
func (a *Attributes) Set(key, value string) {
	key = normalizeKey(key)
	if key == "" {
		return
	}
	if a.state == nil {
		a.state = &attributeState{values: make(map[string]string)}
	}
	if _, ok := a.state.values[key]; !ok {
		a.state.keys = append(a.state.keys, key)
	}
	a.state.values[key] = value
}

// Get returns the value stored at key.
func (a Attributes) Get(key string) (string, bool) {
	if a.state == nil {
		return "", false
	}
	value, ok := a.state.values[normalizeKey(key)]
	return value, ok
}

// Has reports whether key is present.
func (a Attributes) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// Delete removes key, preserving the order of the remaining entries.
func (a *Attributes) Delete(key string) {
	key = normalizeKey(key)
	if a.state == nil {
		return
	}
	if _, ok := a.state.values[key]; !ok {
		return
	}
	delete(a.state.values, key)
	for i, k := range a.state.keys {
		if k == key {
			a.state.keys = append(a.state.keys[:i:i], a.state.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the attribute keys in order.
func (a Attributes) Keys() []string {
	if a.state == nil {
		return nil
	}
	return append([]string(nil), a.state.keys...)
}

// Len returns the number of attributes.
func (a Attributes) Len() int {
	if a.state == nil {
		return 0
	}
	return len(a.state.keys)
}

// Each calls fn for every attribute in order.
func (a Attributes) Each(fn func(key, value string)) {
	if a.state == nil {
		return
	}
	for _, k := range a.Keys() {
		fn(k, a.state.values[k])
	}
}

// Merge writes every entry of other into a. Values from other win.
func (a *Attributes) Merge(other Attributes) {
	other.Each(a.Set)
}

// Clone returns an independent copy.
func (a Attributes) Clone() Attributes {
	var out Attributes
	a.Each(out.Set)
	return out
}

// StripDataAttributes returns a copy of attrs without any key prefixed with
// "data-". The removal cannot be undone on the returned set.
func StripDataAttributes(attrs Attributes) Attributes {
	var out Attributes
	attrs.Each(func(k, v string) {
		if strings.HasPrefix(k, DataAttributePrefix) {
			return
		}
		out.Set(k, v)
	})
	return out
}

// HTMLSerializer renders attributes as ` key="value"` pairs with values
// escaped for attribute context. Keys that are not valid attribute names are
// skipped.
type HTMLSerializer struct{}

var _ AttributeSerializer = HTMLSerializer{}

// Serialize implements AttributeSerializer.
func (HTMLSerializer) Serialize(attrs Attributes) string {
	var b strings.Builder
	attrs.Each(func(k, v string) {
		if !validAttributeName(k) {
			return
		}
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(templ.EscapeString(v))
		b.WriteByte('"')
	})
	return b.String()
}

// validAttributeName rejects names the HTML tokenizer would split or end
// the tag on.
func validAttributeName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
		switch r {
		case '=', '"', '\'', '<', '>', '/', '`':
			return false
		}
	}
	return true
}
