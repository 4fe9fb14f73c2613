package service

import (
	"context"

	"github.com/lucasmonteiro/vitrine/internal/domain/i18n"
)

// TranslationCache holds machine-translated strings keyed by the
// per-field keys the resolver understands ("project.<id>.title").
// Misses are not errors: a partial or empty snapshot just means more
// fallbacks to the base language.
type TranslationCache interface {
	Snapshot(ctx context.Context, target i18n.Language, keys []string) (i18n.Snapshot, error)
	Store(ctx context.Context, target i18n.Language, entries map[string]string) error
}
