package service

import (
	"context"

	"github.com/lucasmonteiro/vitrine/internal/domain/i18n"
)

// Translator is the machine-translation backend. Translations come back
// positionally aligned with the input texts.
type Translator interface {
	Translate(ctx context.Context, target i18n.Language, texts []string) ([]string, error)
}
