package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeEntity struct {
	values       map[string]string
	translations Translations
	keyPrefix    string
}

func (f *fakeEntity) BaseValue(field string) string  { return f.values[field] }
func (f *fakeEntity) TranslationBlock() Translations { return f.translations }
func (f *fakeEntity) CacheKey(field string) string   { return f.keyPrefix + "." + field }

func TestResolver_BaseLanguageSkipsLookups(t *testing.T) {
	entity := &fakeEntity{
		values:       map[string]string{"title": "Meu Projeto"},
		translations: Translations{Base: {"title": "should never win"}},
		keyPrefix:    "project.abc",
	}
	snapshot := Snapshot{"project.abc.title": "cached"}

	r := NewResolver(Base, snapshot)
	assert.Equal(t, "Meu Projeto", r.Resolve(entity, "title"))
}

func TestResolver_ExplicitTranslationWins(t *testing.T) {
	entity := &fakeEntity{
		values: map[string]string{"title": "Site X", "description": "Plataforma de vendas"},
		translations: Translations{
			LanguageEN: {"title": "Site X (EN)"},
		},
		keyPrefix: "project.abc",
	}
	snapshot := Snapshot{
		"project.abc.title":       "Machine Title",
		"project.abc.description": "Sales platform",
	}

	r := NewResolver(LanguageEN, snapshot)
	assert.Equal(t, "Site X (EN)", r.Resolve(entity, "title"))
	// No explicit override for description, cached value applies.
	assert.Equal(t, "Sales platform", r.Resolve(entity, "description"))
}

func TestResolver_FallsBackToBase(t *testing.T) {
	entity := &fakeEntity{
		values:    map[string]string{"company": "Acme Inc."},
		keyPrefix: "experience.xyz",
	}

	r := NewResolver(LanguageES, nil)
	assert.Equal(t, "Acme Inc.", r.Resolve(entity, "company"))
}

func TestResolver_EmptyValuesCountAsAbsent(t *testing.T) {
	entity := &fakeEntity{
		values: map[string]string{"title": "Base"},
		translations: Translations{
			LanguageEN: {"title": ""},
		},
		keyPrefix: "project.abc",
	}
	snapshot := Snapshot{"project.abc.title": ""}

	r := NewResolver(LanguageEN, snapshot)
	assert.Equal(t, "Base", r.Resolve(entity, "title"))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "project.42.title", Key("project", "42", "title"))
}

func TestSnapshot_Lookup(t *testing.T) {
	s := Snapshot{"a": "1", "b": ""}

	v, ok := s.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok = s.Lookup("b")
	assert.False(t, ok)
	_, ok = s.Lookup("missing")
	assert.False(t, ok)

	var nilSnap Snapshot
	_, ok = nilSnap.Lookup("a")
	assert.False(t, ok)
}
