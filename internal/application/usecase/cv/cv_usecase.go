package cv

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lucasmonteiro/vitrine/internal/domain/cv"
	"github.com/lucasmonteiro/vitrine/internal/domain/i18n"
	"github.com/lucasmonteiro/vitrine/internal/domain/plan"
	"github.com/lucasmonteiro/vitrine/internal/domain/subscription"
	"github.com/lucasmonteiro/vitrine/pkg/apperror"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

type CVUseCase struct {
	cvRepo   cv.Repository
	subsRepo subscription.Repository
	logger   logger.Logger
}

func NewCVUseCase(r cv.Repository, sRepo subscription.Repository, log logger.Logger) *CVUseCase {
	return &CVUseCase{cvRepo: r, subsRepo: sRepo, logger: log}
}

type CreateCVInput struct {
	OwnerID       uuid.UUID
	Name          string
	Language      i18n.Language
	Template      string
	IncludePhoto  bool
	ProjectIDs    []uuid.UUID
	ExperienceIDs []uuid.UUID
	ArticleIDs    []uuid.UUID
}

func (uc *CVUseCase) CreateCV(ctx context.Context, in CreateCVInput) (*cv.CV, error) {
	sub, err := uc.subsRepo.GetByOwner(ctx, in.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("load subscription failed: %w", err)
	}
	tier := sub.EffectiveTier(time.Now().UTC())
	limits := plan.LimitsFor(tier)

	count, err := uc.cvRepo.CountByOwner(ctx, in.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("count cvs failed: %w", err)
	}
	if count >= limits.MaxCVs {
		return nil, apperror.NewPlanLimit("CVs", string(tier))
	}

	if err := uc.checkLanguageQuota(ctx, in.OwnerID, in.Language, limits, tier); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	newCV := &cv.CV{
		ID:            uuid.New(),
		OwnerID:       in.OwnerID,
		Name:          in.Name,
		Language:      in.Language,
		Template:      in.Template,
		IncludePhoto:  in.IncludePhoto,
		ProjectIDs:    in.ProjectIDs,
		ExperienceIDs: in.ExperienceIDs,
		ArticleIDs:    in.ArticleIDs,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if newCV.Template == "" {
		newCV.Template = "clean"
	}

	if err := newCV.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("cv validation failed", err)
	}
	if err := uc.cvRepo.Save(ctx, newCV); err != nil {
		return nil, err
	}
	return newCV, nil
}

type UpdateCVInput struct {
	CVID          uuid.UUID
	OwnerID       uuid.UUID
	Name          string
	Language      i18n.Language
	Template      string
	IncludePhoto  bool
	ProjectIDs    []uuid.UUID
	ExperienceIDs []uuid.UUID
	ArticleIDs    []uuid.UUID
}

func (uc *CVUseCase) UpdateCV(ctx context.Context, in UpdateCVInput) (*cv.CV, error) {
	existing, err := uc.cvRepo.FindByID(ctx, in.CVID, in.OwnerID)
	if err != nil {
		return nil, err
	}

	if in.Language != existing.Language {
		sub, err := uc.subsRepo.GetByOwner(ctx, in.OwnerID)
		if err != nil {
			return nil, fmt.Errorf("load subscription failed: %w", err)
		}
		tier := sub.EffectiveTier(time.Now().UTC())
		if err := uc.checkLanguageQuota(ctx, in.OwnerID, in.Language, plan.LimitsFor(tier), tier); err != nil {
			return nil, err
		}
	}

	existing.Name = in.Name
	existing.Language = in.Language
	existing.Template = in.Template
	existing.IncludePhoto = in.IncludePhoto
	existing.ProjectIDs = in.ProjectIDs
	existing.ExperienceIDs = in.ExperienceIDs
	existing.ArticleIDs = in.ArticleIDs

	if err := existing.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("cv validation failed", err)
	}
	if err := uc.cvRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (uc *CVUseCase) DeleteCV(ctx context.Context, id, ownerID uuid.UUID) error {
	return uc.cvRepo.Delete(ctx, id, ownerID)
}

func (uc *CVUseCase) GetCV(ctx context.Context, id, ownerID uuid.UUID) (*cv.CV, error) {
	return uc.cvRepo.FindByID(ctx, id, ownerID)
}

func (uc *CVUseCase) ListCVs(ctx context.Context, ownerID uuid.UUID) ([]*cv.CV, error) {
	return uc.cvRepo.ListByOwner(ctx, ownerID)
}

// checkLanguageQuota blocks adding a CV in a language the owner does not
// already use once the tier's distinct-language quota is exhausted.
func (uc *CVUseCase) checkLanguageQuota(ctx context.Context, ownerID uuid.UUID, lang i18n.Language, limits plan.Limits, tier plan.Tier) error {
	existing, err := uc.cvRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("list cvs failed: %w", err)
	}
	langs := map[i18n.Language]bool{}
	for _, c := range existing {
		langs[c.Language] = true
	}
	if langs[lang] {
		return nil
	}
	if len(langs) >= limits.CVLanguages {
		return apperror.NewPlanLimit("CV languages", string(tier))
	}
	return nil
}
