package translation

import (
	"context"

	"github.com/lucasmonteiro/vitrine/internal/application/service"
	"github.com/lucasmonteiro/vitrine/internal/domain/i18n"
	"github.com/lucasmonteiro/vitrine/pkg/apperror"
)

const maxTextsPerRequest = 50

// TranslateTextsUseCase fronts the machine-translation backend for the
// editor's on-demand requests.
type TranslateTextsUseCase struct {
	translator service.Translator
}

func NewTranslateTextsUseCase(t service.Translator) *TranslateTextsUseCase {
	return &TranslateTextsUseCase{translator: t}
}

type TranslateTextsInput struct {
	Target i18n.Language
	Texts  []string
}

func (uc *TranslateTextsUseCase) Execute(ctx context.Context, in TranslateTextsInput) ([]string, error) {
	if _, ok := i18n.Parse(string(in.Target)); !ok {
		return nil, apperror.NewInvalidInput("unsupported target language", nil)
	}
	if in.Target == i18n.Base {
		// Translating into the base language is the identity.
		return in.Texts, nil
	}
	if len(in.Texts) == 0 {
		return []string{}, nil
	}
	if len(in.Texts) > maxTextsPerRequest {
		return nil, apperror.NewInvalidInput("too many texts in one request", nil)
	}

	translated, err := uc.translator.Translate(ctx, in.Target, in.Texts)
	if err != nil {
		return nil, apperror.NewInternal("translation backend failed", err)
	}
	if len(translated) != len(in.Texts) {
		return nil, apperror.NewInternal("translation backend returned a misaligned response", nil)
	}
	return translated, nil
}
