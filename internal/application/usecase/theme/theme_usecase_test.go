package theme

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/lucasmonteiro/vitrine/internal/domain/plan"
	"github.com/lucasmonteiro/vitrine/internal/domain/subscription"
	"github.com/lucasmonteiro/vitrine/internal/domain/theme"
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

type stubThemeRepo struct {
	stored *theme.UserTheme
	getErr error
}

func (s *stubThemeRepo) GetByOwner(context.Context, uuid.UUID) (*theme.UserTheme, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.stored, nil
}

func (s *stubThemeRepo) Upsert(_ context.Context, t *theme.UserTheme) error {
	s.stored = t
	return nil
}

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

func TestGetTheme_MissingRowReturnsDefault(t *testing.T) {
	ownerID := uuid.New()
	repo := &stubThemeRepo{getErr: apperror.NewNotFound("theme", ownerID.String())}
	uc := NewThemeUseCase(repo, &stubSubscriptionRepo{tier: plan.TierBasic}, noopLogger{})

	got, err := uc.GetTheme(context.Background(), ownerID)
	assert.NoError(t, err)
	assert.Equal(t, theme.Default(ownerID), got)
}

func TestGetTheme_OtherErrorsPropagate(t *testing.T) {
	repo := &stubThemeRepo{getErr: errors.New("db down")}
	uc := NewThemeUseCase(repo, &stubSubscriptionRepo{tier: plan.TierBasic}, noopLogger{})

	_, err := uc.GetTheme(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestUpdateTheme_CustomPaletteRequiresPaidTier(t *testing.T) {
	repo := &stubThemeRepo{}
	uc := NewThemeUseCase(repo, &stubSubscriptionRepo{tier: plan.TierBasic}, noopLogger{})

	_, err := uc.UpdateTheme(context.Background(), UpdateThemeInput{
		OwnerID: uuid.New(),
		Layout:  theme.LayoutMinimal,
		Mode:    theme.ModeLight,
		Palette: theme.Palette{Primary: "#ff00ff"},
	})

	assert.ErrorIs(t, err, apperror.ErrPlanLimit)
	assert.Nil(t, repo.stored)
}

func TestUpdateTheme_CustomPaletteAllowedOnPro(t *testing.T) {
	repo := &stubThemeRepo{}
	uc := NewThemeUseCase(repo, &stubSubscriptionRepo{tier: plan.TierPro}, noopLogger{})

	custom := theme.Palette{
		Primary:    "#ff00ff",
		Secondary:  "#00ff00",
		Accent:     "#0000ff",
		Background: "#000000",
		Text:       "#ffffff",
	}
	got, err := uc.UpdateTheme(context.Background(), UpdateThemeInput{
		OwnerID: uuid.New(),
		Layout:  theme.LayoutCreative,
		Mode:    theme.ModeDark,
		Font:    "Space Grotesk",
		Palette: custom,
	})

	assert.NoError(t, err)
	assert.Equal(t, custom, got.Palette)
	assert.Equal(t, repo.stored, got)
}

func TestUpdateTheme_StockPaletteNeverGated(t *testing.T) {
	repo := &stubThemeRepo{}
	uc := NewThemeUseCase(repo, &stubSubscriptionRepo{tier: plan.TierBasic}, noopLogger{})

	got, err := uc.UpdateTheme(context.Background(), UpdateThemeInput{
		OwnerID: uuid.New(),
		Mode:    theme.ModeDark,
		Palette: theme.DefaultPalette(theme.ModeDark),
	})

	assert.NoError(t, err)
	assert.Equal(t, theme.DefaultPalette(theme.ModeDark), got.Palette)
}

func TestUpdateTheme_DefaultsApplied(t *testing.T) {
	repo := &stubThemeRepo{}
	uc := NewThemeUseCase(repo, &stubSubscriptionRepo{tier: plan.TierBasic}, noopLogger{})

	got, err := uc.UpdateTheme(context.Background(), UpdateThemeInput{
		OwnerID: uuid.New(),
		Mode:    theme.ModeLight,
	})

	assert.NoError(t, err)
	assert.Equal(t, theme.LayoutModern, got.Layout)
	assert.Equal(t, theme.DefaultFont, got.Font)
	assert.Equal(t, theme.DefaultPalette(theme.ModeLight), got.Palette)
}

func TestUpdateTheme_RejectsUnknownMode(t *testing.T) {
	uc := NewThemeUseCase(&stubThemeRepo{}, &stubSubscriptionRepo{tier: plan.TierBasic}, noopLogger{})

	_, err := uc.UpdateTheme(context.Background(), UpdateThemeInput{
		OwnerID: uuid.New(),
		Mode:    theme.Mode("sepia"),
	})

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}
