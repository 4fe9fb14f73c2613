package cv

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/lucasmonteiro/vitrine/internal/domain/cv"
	"github.com/lucasmonteiro/vitrine/internal/domain/i18n"
	"github.com/lucasmonteiro/vitrine/internal/domain/plan"
	"github.com/lucasmonteiro/vitrine/internal/domain/subscription"
	"github.com/lucasmonteiro/vitrine/pkg/apperror"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

type noopLogger struct{}

func (noopLogger) Debug(string, ...zap.Field)        {}
func (noopLogger) Info(string, ...zap.Field)         {}
func (noopLogger) Warn(string, ...zap.Field)         {}
func (noopLogger) Error(string, error, ...zap.Field) {}
func (noopLogger) Fatal(string, error, ...zap.Field) {}
func (l noopLogger) With(...zap.Field) logger.Logger { return l }

type stubSubscriptionRepo struct {
	tier plan.Tier
}

func (s *stubSubscriptionRepo) GetByOwner(_ context.Context, ownerID uuid.UUID) (*subscription.Subscription, error) {
	return &subscription.Subscription{
		OwnerID:   ownerID,
		Tier:      s.tier,
		Status:    subscription.StatusActive,
		UpdatedAt: time.Now().UTC(),
	}, nil
}

func (s *stubSubscriptionRepo) Upsert(context.Context, *subscription.Subscription) error {
	return nil
}

type stubCVRepo struct {
	existing []*cv.CV
	saved    *cv.CV
	updated  *cv.CV
}

func (s *stubCVRepo) Save(_ context.Context, c *cv.CV) error {
	s.saved = c
	return nil
}

func (s *stubCVRepo) Update(_ context.Context, c *cv.CV) error {
	s.updated = c
	return nil
}

func (s *stubCVRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }

func (s *stubCVRepo) FindByID(_ context.Context, id uuid.UUID, ownerID uuid.UUID) (*cv.CV, error) {
	for _, c := range s.existing {
		if c.ID == id && c.OwnerID == ownerID {
			copied := *c
			return &copied, nil
		}
	}
	return nil, apperror.NewNotFound("cv", id.String())
}

func (s *stubCVRepo) ListByOwner(context.Context, uuid.UUID) ([]*cv.CV, error) {
	return s.existing, nil
}

func (s *stubCVRepo) CountByOwner(context.Context, uuid.UUID) (int, error) {
	return len(s.existing), nil
}

func TestCreateCV_BasicTierSingleCV(t *testing.T) {
	ownerID := uuid.New()
	repo := &stubCVRepo{existing: []*cv.CV{
		{ID: uuid.New(), OwnerID: ownerID, Name: "Principal", Language: i18n.LanguagePT},
	}}
	uc := NewCVUseCase(repo, &stubSubscriptionRepo{tier: plan.TierBasic}, noopLogger{})

	_, err := uc.CreateCV(context.Background(), CreateCVInput{
		OwnerID:  ownerID,
		Name:     "Segundo",
		Language: i18n.LanguagePT,
	})

	assert.ErrorIs(t, err, apperror.ErrPlanLimit)
	assert.Nil(t, repo.saved)
}

func TestCreateCV_LanguageQuota(t *testing.T) {
	ownerID := uuid.New()
	// Pro allows 5 CVs but only 2 distinct languages.
	repo := &stubCVRepo{existing: []*cv.CV{
		{ID: uuid.New(), OwnerID: ownerID, Name: "PT", Language: i18n.LanguagePT},
		{ID: uuid.New(), OwnerID: ownerID, Name: "EN", Language: i18n.LanguageEN},
	}}
	uc := NewCVUseCase(repo, &stubSubscriptionRepo{tier: plan.TierPro}, noopLogger{})

	_, err := uc.CreateCV(context.Background(), CreateCVInput{
		OwnerID:  ownerID,
		Name:     "ES",
		Language: i18n.LanguageES,
	})
	assert.ErrorIs(t, err, apperror.ErrPlanLimit)

	// A second CV in a language already in use is fine.
	created, err := uc.CreateCV(context.Background(), CreateCVInput{
		OwnerID:  ownerID,
		Name:     "EN curto",
		Language: i18n.LanguageEN,
	})
	assert.NoError(t, err)
	assert.Equal(t, "clean", created.Template)
	assert.Equal(t, repo.saved, created)
}

func TestCreateCV_ValidatesInput(t *testing.T) {
	ownerID := uuid.New()
	uc := NewCVUseCase(&stubCVRepo{}, &stubSubscriptionRepo{tier: plan.TierPremium}, noopLogger{})

	_, err := uc.CreateCV(context.Background(), CreateCVInput{
		OwnerID:  ownerID,
		Language: i18n.LanguagePT,
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	_, err = uc.CreateCV(context.Background(), CreateCVInput{
		OwnerID:  ownerID,
		Name:     "CV",
		Language: i18n.Language("fr"),
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestUpdateCV_LanguageChangeReChecksQuota(t *testing.T) {
	ownerID := uuid.New()
	existingID := uuid.New()
	repo := &stubCVRepo{existing: []*cv.CV{
		{ID: existingID, OwnerID: ownerID, Name: "PT", Language: i18n.LanguagePT, Template: "clean"},
	}}
	uc := NewCVUseCase(repo, &stubSubscriptionRepo{tier: plan.TierBasic}, noopLogger{})

	_, err := uc.UpdateCV(context.Background(), UpdateCVInput{
		CVID:     existingID,
		OwnerID:  ownerID,
		Name:     "EN",
		Language: i18n.LanguageEN,
		Template: "clean",
	})
	assert.ErrorIs(t, err, apperror.ErrPlanLimit)

	// Same language, rename only: no quota check involved.
	updated, err := uc.UpdateCV(context.Background(), UpdateCVInput{
		CVID:     existingID,
		OwnerID:  ownerID,
		Name:     "Renomeado",
		Language: i18n.LanguagePT,
		Template: "clean",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Renomeado", updated.Name)
}
