package theme

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lucasmonteiro/vitrine/internal/domain/plan"
	"github.com/lucasmonteiro/vitrine/internal/domain/subscription"
	"github.com/lucasmonteiro/vitrine/internal/domain/theme"
	"github.com/lucasmonteiro/vitrine/pkg/apperror"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

type ThemeUseCase struct {
	themeRepo theme.Repository
	subsRepo  subscription.Repository
	logger    logger.Logger
}

func NewThemeUseCase(r theme.Repository, sRepo subscription.Repository, log logger.Logger) *ThemeUseCase {
	return &ThemeUseCase{themeRepo: r, subsRepo: sRepo, logger: log}
}

// GetTheme never fails on a missing row: first-time owners get the
// default theme so the editor always has something to show.
func (uc *ThemeUseCase) GetTheme(ctx context.Context, ownerID uuid.UUID) (*theme.UserTheme, error) {
	t, err := uc.themeRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return theme.Default(ownerID), nil
		}
		return nil, err
	}
	return t, nil
}

type UpdateThemeInput struct {
	OwnerID uuid.UUID
	Layout  theme.LayoutID
	Mode    theme.Mode
	Font    string
	Palette theme.Palette
}

func (uc *ThemeUseCase) UpdateTheme(ctx context.Context, in UpdateThemeInput) (*theme.UserTheme, error) {
	if in.Mode != theme.ModeLight && in.Mode != theme.ModeDark {
		return nil, apperror.NewInvalidInput("mode must be light or dark", nil)
	}

	// Custom palettes are a paid feature; the stock palette for the
	// chosen mode is always allowed.
	if !theme.IsDefaultPalette(in.Palette, in.Mode) {
		sub, err := uc.subsRepo.GetByOwner(ctx, in.OwnerID)
		if err != nil {
			return nil, fmt.Errorf("load subscription failed: %w", err)
		}
		tier := sub.EffectiveTier(time.Now().UTC())
		if !plan.LimitsFor(tier).CustomColors {
			return nil, apperror.NewPlanLimit("custom colors", string(tier))
		}
	}

	palette := in.Palette
	if palette.IsZero() {
		palette = theme.DefaultPalette(in.Mode)
	}

	t := &theme.UserTheme{
		OwnerID:   in.OwnerID,
		Layout:    in.Layout,
		Mode:      in.Mode,
		Font:      in.Font,
		Palette:   palette,
		UpdatedAt: time.Now().UTC(),
	}
	if t.Layout == "" {
		t.Layout = theme.LayoutModern
	}
	if t.Font == "" {
		t.Font = theme.DefaultFont
	}

	if err := uc.themeRepo.Upsert(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// PreviewStyles derives a style bundle without persisting anything, so
// the editor can live-preview palette and layout changes.
func (uc *ThemeUseCase) PreviewStyles(layout theme.LayoutID, palette theme.Palette, mode theme.Mode) theme.StyleBundle {
	return theme.DeriveStyles(layout, palette, mode)
}
