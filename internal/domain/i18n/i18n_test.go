package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	for _, code := range []string{"pt", "en", "es"} {
		lang, ok := Parse(code)
		assert.True(t, ok)
		assert.Equal(t, Language(code), lang)
	}

	_, ok := Parse("fr")
	assert.False(t, ok)
	_, ok = Parse("")
	assert.False(t, ok)
	_, ok = Parse("EN")
	assert.False(t, ok)
}

func TestParseOrBase(t *testing.T) {
	assert.Equal(t, LanguageEN, ParseOrBase("en"))
	assert.Equal(t, Base, ParseOrBase("de"))
	assert.Equal(t, Base, ParseOrBase(""))
}

func TestTranslations_Get(t *testing.T) {
	tr := Translations{
		LanguageEN: {"title": "My Site", "description": ""},
	}

	v, ok := tr.Get(LanguageEN, "title")
	assert.True(t, ok)
	assert.Equal(t, "My Site", v)

	// Empty string counts as absent.
	_, ok = tr.Get(LanguageEN, "description")
	assert.False(t, ok)

	_, ok = tr.Get(LanguageES, "title")
	assert.False(t, ok)

	var nilTr Translations
	_, ok = nilTr.Get(LanguageEN, "title")
	assert.False(t, ok)
}

func TestTranslations_Set(t *testing.T) {
	var tr Translations
	tr = tr.Set(LanguageEN, "title", "Hello")

	v, ok := tr.Get(LanguageEN, "title")
	assert.True(t, ok)
	assert.Equal(t, "Hello", v)
}

func TestTranslations_Sanitize(t *testing.T) {
	tr := Translations{
		LanguageEN: {"title": "Kept", "bio": ""},
		LanguageES: {"title": ""},
	}

	clean := tr.Sanitize()
	assert.Len(t, clean, 1)
	assert.Equal(t, map[string]string{"title": "Kept"}, clean[LanguageEN])
	assert.NotContains(t, clean, LanguageES)

	assert.Nil(t, Translations{}.Sanitize())
	assert.Nil(t, Translations{LanguageEN: {"title": ""}}.Sanitize())

	var nilTr Translations
	assert.Nil(t, nilTr.Sanitize())
}
