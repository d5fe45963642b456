package links

// KeyTranslator returns every key unchanged, mirroring hosts that echo
// untranslated keys.
type KeyTranslator struct{}

var _ Translator = KeyTranslator{}

// Translate returns key.
func (KeyTranslator) Translate(key string) string { return key }

// NopConfig resolves every key to "".
type NopConfig struct{}

var _ ConfigLookup = NopConfig{}

// Lookup returns "".
func (NopConfig) Lookup(string) string { return "" }

// MapConfig resolves keys from a flat map of dotted paths.
type MapConfig map[string]string

var _ ConfigLookup = MapConfig(nil)

// Lookup returns the value stored at key or "".
func (m MapConfig) Lookup(key string) string { return m[key] }
