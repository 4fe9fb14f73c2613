package translation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lucasmonteiro/vitrine/internal/application/service"
	"github.com/lucasmonteiro/vitrine/internal/domain/article"
	"github.com/lucasmonteiro/vitrine/internal/domain/experience"
	"github.com/lucasmonteiro/vitrine/internal/domain/i18n"
	"github.com/lucasmonteiro/vitrine/internal/domain/profile"
	"github.com/lucasmonteiro/vitrine/internal/domain/project"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

const maxProjectsPerWarm = 200

// WarmCacheUseCase machine-translates an owner's content into every
// non-base language and stores the results in the translation cache.
// The worker runs it whenever a content event arrives, so renders only
// ever read the cache and never wait on the translation backend.
type WarmCacheUseCase struct {
	profileRepo    profile.Repository
	projectRepo    project.Repository
	experienceRepo experience.Repository
	articleRepo    article.Repository
	translator     service.Translator
	cache          service.TranslationCache
	logger         logger.Logger
}

func NewWarmCacheUseCase(
	profileRepo profile.Repository,
	projectRepo project.Repository,
	experienceRepo experience.Repository,
	articleRepo article.Repository,
	translator service.Translator,
	cache service.TranslationCache,
	log logger.Logger,
) *WarmCacheUseCase {
	return &WarmCacheUseCase{
		profileRepo:    profileRepo,
		projectRepo:    projectRepo,
		experienceRepo: experienceRepo,
		articleRepo:    articleRepo,
		translator:     translator,
		cache:          cache,
		logger:         log,
	}
}

// Execute re-warms every target language for one owner. Failures on one
// language do not abort the others.
func (uc *WarmCacheUseCase) Execute(ctx context.Context, ownerID uuid.UUID) error {
	entities, err := uc.collectEntities(ctx, ownerID)
	if err != nil {
		return err
	}

	var lastErr error
	for _, lang := range i18n.Supported() {
		if lang == i18n.Base {
			continue
		}
		if err := uc.warmLanguage(ctx, lang, entities); err != nil {
			uc.logger.Error("Failed to warm translation cache", err,
				zap.String("owner_id", ownerID.String()),
				zap.String("language", string(lang)))
			lastErr = err
		}
	}
	return lastErr
}

type fieldSource struct {
	entity i18n.Entity
	field  string
}

func (uc *WarmCacheUseCase) collectEntities(ctx context.Context, ownerID uuid.UUID) ([]fieldSource, error) {
	var sources []fieldSource

	prof, err := uc.profileRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load profile failed: %w", err)
	}
	sources = append(sources,
		fieldSource{prof, profile.FieldTitle},
		fieldSource{prof, profile.FieldBio},
	)

	projects, err := uc.projectRepo.ListByOwner(ctx, ownerID, maxProjectsPerWarm, 0)
	if err != nil {
		return nil, fmt.Errorf("load projects failed: %w", err)
	}
	for _, p := range projects {
		sources = append(sources,
			fieldSource{p, project.FieldTitle},
			fieldSource{p, project.FieldDescription},
		)
	}

	experiences, err := uc.experienceRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load experiences failed: %w", err)
	}
	for _, e := range experiences {
		sources = append(sources,
			fieldSource{e, experience.FieldCompany},
			fieldSource{e, experience.FieldTitle},
			fieldSource{e, experience.FieldDescription},
		)
	}

	articles, err := uc.articleRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load articles failed: %w", err)
	}
	for _, a := range articles {
		sources = append(sources,
			fieldSource{a, article.FieldTitle},
			fieldSource{a, article.FieldAbstract},
		)
	}

	return sources, nil
}

// warmLanguage translates the base values that have no explicit override
// for lang and stores them under their cache keys.
func (uc *WarmCacheUseCase) warmLanguage(ctx context.Context, lang i18n.Language, sources []fieldSource) error {
	var keys []string
	var texts []string
	for _, src := range sources {
		base := src.entity.BaseValue(src.field)
		if base == "" {
			continue
		}
		if _, ok := src.entity.TranslationBlock().Get(lang, src.field); ok {
			// An explicit translation always wins over the cache, so
			// machine-translating this field would be wasted work.
			continue
		}
		keys = append(keys, src.entity.CacheKey(src.field))
		texts = append(texts, base)
	}
	if len(texts) == 0 {
		return nil
	}

	translated, err := uc.translator.Translate(ctx, lang, texts)
	if err != nil {
		return fmt.Errorf("translate batch failed: %w", err)
	}
	if len(translated) != len(texts) {
		return fmt.Errorf("translation backend returned %d results for %d texts", len(translated), len(texts))
	}

	entries := make(map[string]string, len(keys))
	for i, key := range keys {
		if translated[i] != "" {
			entries[key] = translated[i]
		}
	}
	if len(entries) == 0 {
		return nil
	}
	return uc.cache.Store(ctx, lang, entries)
}
