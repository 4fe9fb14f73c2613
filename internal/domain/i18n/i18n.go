package i18n

// Language is a supported portfolio language code.
type Language string

const (
	LanguagePT Language = "pt"
	LanguageEN Language = "en"
	LanguageES Language = "es"
)

// Base is the language content is authored in. Resolution returns raw
// field values verbatim for this language, no lookup performed.
const Base = LanguagePT

func Supported() []Language {
	return []Language{LanguagePT, LanguageEN, LanguageES}
}

func Parse(s string) (Language, bool) {
	switch Language(s) {
	case LanguagePT, LanguageEN, LanguageES:
		return Language(s), true
	}
	return "", false
}

// ParseOrBase falls back to the base language for unknown codes.
func ParseOrBase(s string) Language {
	if lang, ok := Parse(s); ok {
		return lang
	}
	return Base
}

// Translations is a per-entity override block: language -> field -> value.
// The base language never appears here.
type Translations map[Language]map[string]string

// Get returns the override for (lang, field). Empty strings count as absent.
func (t Translations) Get(lang Language, field string) (string, bool) {
	fields, ok := t[lang]
	if !ok {
		return "", false
	}
	v, ok := fields[field]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (t Translations) Set(lang Language, field, value string) Translations {
	out := t
	if out == nil {
		out = Translations{}
	}
	if out[lang] == nil {
		out[lang] = map[string]string{}
	}
	out[lang][field] = value
	return out
}

// Sanitize drops empty values and empty language blocks so storage never
// holds placeholder objects. Returns nil when nothing remains.
func (t Translations) Sanitize() Translations {
	if len(t) == 0 {
		return nil
	}
	out := Translations{}
	for lang, fields := range t {
		cleaned := map[string]string{}
		for field, value := range fields {
			if value != "" {
				cleaned[field] = value
			}
		}
		if len(cleaned) > 0 {
			out[lang] = cleaned
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
