package i18n

import "fmt"

// Entity is anything with localizable fields: profile, project,
// experience, scientific article.
type Entity interface {
	// BaseValue returns the field value in the base language.
	BaseValue(field string) string
	// TranslationBlock returns the entity's explicit overrides.
	TranslationBlock() Translations
	// CacheKey returns the stable machine-translation key for a field,
	// e.g. "project.<id>.title".
	CacheKey(field string) string
}

// Snapshot is a read-once view of the machine-translation cache for a
// single render. Populated out of band; the resolver never does I/O.
type Snapshot map[string]string

func (s Snapshot) Lookup(key string) (string, bool) {
	v, ok := s[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Resolver applies the three-tier precedence uniformly:
// explicit translation, cached machine translation, base value.
type Resolver struct {
	target   Language
	snapshot Snapshot
}

func NewResolver(target Language, snapshot Snapshot) Resolver {
	return Resolver{target: target, snapshot: snapshot}
}

func (r Resolver) Target() Language {
	return r.target
}

func (r Resolver) Resolve(e Entity, field string) string {
	base := e.BaseValue(field)
	if r.target == Base {
		return base
	}
	if v, ok := e.TranslationBlock().Get(r.target, field); ok {
		return v
	}
	if v, ok := r.snapshot.Lookup(e.CacheKey(field)); ok {
		return v
	}
	return base
}

// Key builds the canonical per-field cache key.
func Key(entityType, id, field string) string {
	return fmt.Sprintf("%s.%s.%s", entityType, id, field)
}
