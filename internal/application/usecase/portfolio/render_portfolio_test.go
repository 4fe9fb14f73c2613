package portfolio

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/lucasmonteiro/vitrine/internal/domain/article"
	"github.com/lucasmonteiro/vitrine/internal/domain/cv"
	"github.com/lucasmonteiro/vitrine/internal/domain/experience"
	"github.com/lucasmonteiro/vitrine/internal/domain/i18n"
	"github.com/lucasmonteiro/vitrine/internal/domain/profile"
	"github.com/lucasmonteiro/vitrine/internal/domain/project"
	"github.com/lucasmonteiro/vitrine/internal/domain/theme"
	"github.com/lucasmonteiro/vitrine/internal/domain/video"
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

type fakeProfileRepo struct{ prof *profile.Profile }

func (f *fakeProfileRepo) GetByOwner(context.Context, uuid.UUID) (*profile.Profile, error) {
	return f.prof, nil
}
func (f *fakeProfileRepo) Upsert(context.Context, *profile.Profile) error { return nil }

type fakeProjectRepo struct{ projects []*project.Project }

func (f *fakeProjectRepo) Save(context.Context, *project.Project) error       { return nil }
func (f *fakeProjectRepo) Update(context.Context, *project.Project) error     { return nil }
func (f *fakeProjectRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }
func (f *fakeProjectRepo) FindByID(context.Context, uuid.UUID, uuid.UUID) (*project.Project, error) {
	return nil, project.ErrProjectNotFound
}
func (f *fakeProjectRepo) ListByOwner(context.Context, uuid.UUID, int, int) ([]*project.Project, error) {
	return f.projects, nil
}
func (f *fakeProjectRepo) ListPublicByOwner(context.Context, uuid.UUID) ([]*project.Project, error) {
	out := make([]*project.Project, 0, len(f.projects))
	for _, p := range f.projects {
		if p.IsPublic {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *fakeProjectRepo) CountByOwner(context.Context, uuid.UUID) (int, error) {
	return len(f.projects), nil
}

type fakeExperienceRepo struct{ experiences []*experience.Experience }

func (f *fakeExperienceRepo) Save(context.Context, *experience.Experience) error   { return nil }
func (f *fakeExperienceRepo) Update(context.Context, *experience.Experience) error { return nil }
func (f *fakeExperienceRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error   { return nil }
func (f *fakeExperienceRepo) FindByID(context.Context, uuid.UUID, uuid.UUID) (*experience.Experience, error) {
	return nil, errors.New("not found")
}
func (f *fakeExperienceRepo) ListByOwner(context.Context, uuid.UUID) ([]*experience.Experience, error) {
	return f.experiences, nil
}

type fakeArticleRepo struct{ articles []*article.ScientificArticle }

func (f *fakeArticleRepo) Save(context.Context, *article.ScientificArticle) error   { return nil }
func (f *fakeArticleRepo) Update(context.Context, *article.ScientificArticle) error { return nil }
func (f *fakeArticleRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error       { return nil }
func (f *fakeArticleRepo) FindByID(context.Context, uuid.UUID, uuid.UUID) (*article.ScientificArticle, error) {
	return nil, errors.New("not found")
}
func (f *fakeArticleRepo) ListByOwner(context.Context, uuid.UUID) ([]*article.ScientificArticle, error) {
	return f.articles, nil
}
func (f *fakeArticleRepo) CountByOwner(context.Context, uuid.UUID) (int, error) {
	return len(f.articles), nil
}

type fakeCVRepo struct{ cvs []*cv.CV }

func (f *fakeCVRepo) Save(context.Context, *cv.CV) error                 { return nil }
func (f *fakeCVRepo) Update(context.Context, *cv.CV) error               { return nil }
func (f *fakeCVRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }
func (f *fakeCVRepo) FindByID(_ context.Context, id uuid.UUID, ownerID uuid.UUID) (*cv.CV, error) {
	for _, c := range f.cvs {
		if c.ID == id && c.OwnerID == ownerID {
			return c, nil
		}
	}
	return nil, apperror.NewNotFound("cv", id.String())
}
func (f *fakeCVRepo) ListByOwner(context.Context, uuid.UUID) ([]*cv.CV, error) {
	return f.cvs, nil
}
func (f *fakeCVRepo) CountByOwner(context.Context, uuid.UUID) (int, error) {
	return len(f.cvs), nil
}

type fakeThemeRepo struct {
	stored *theme.UserTheme
	err    error
}

func (f *fakeThemeRepo) GetByOwner(context.Context, uuid.UUID) (*theme.UserTheme, error) {
	return f.stored, f.err
}
func (f *fakeThemeRepo) Upsert(context.Context, *theme.UserTheme) error { return nil }

type fakeVideoRepo struct{ stored *video.FeaturedVideo }

func (f *fakeVideoRepo) GetByOwner(context.Context, uuid.UUID) (*video.FeaturedVideo, error) {
	if f.stored == nil {
		return nil, apperror.NewNotFound("video", "owner")
	}
	return f.stored, nil
}
func (f *fakeVideoRepo) Upsert(context.Context, *video.FeaturedVideo) error { return nil }
func (f *fakeVideoRepo) Delete(context.Context, uuid.UUID) error            { return nil }

type fakeTranslationCache struct {
	snapshot i18n.Snapshot
	err      error
	calls    int
}

func (f *fakeTranslationCache) Snapshot(context.Context, i18n.Language, []string) (i18n.Snapshot, error) {
	f.calls++
	return f.snapshot, f.err
}
func (f *fakeTranslationCache) Store(context.Context, i18n.Language, map[string]string) error {
	return nil
}

type portfolioFixture struct {
	userID      uuid.UUID
	profileRepo *fakeProfileRepo
	projectRepo *fakeProjectRepo
	expRepo     *fakeExperienceRepo
	articleRepo *fakeArticleRepo
	cvRepo      *fakeCVRepo
	themeRepo   *fakeThemeRepo
	videoRepo   *fakeVideoRepo
	cache       *fakeTranslationCache
}

func newPortfolioFixture() *portfolioFixture {
	userID := uuid.New()
	return &portfolioFixture{
		userID: userID,
		profileRepo: &fakeProfileRepo{prof: &profile.Profile{
			OwnerID:           userID,
			FullName:          "Lucas Monteiro",
			Title:             "Engenheiro",
			PreferredLanguage: i18n.LanguagePT,
		}},
		projectRepo: &fakeProjectRepo{},
		expRepo:     &fakeExperienceRepo{},
		articleRepo: &fakeArticleRepo{},
		cvRepo:      &fakeCVRepo{},
		themeRepo:   &fakeThemeRepo{err: apperror.NewNotFound("theme", userID.String())},
		videoRepo:   &fakeVideoRepo{},
		cache:       &fakeTranslationCache{},
	}
}

func (fx *portfolioFixture) usecase() *RenderPortfolioUseCase {
	return NewRenderPortfolioUseCase(
		fx.profileRepo, fx.projectRepo, fx.expRepo, fx.articleRepo,
		fx.cvRepo, fx.themeRepo, fx.videoRepo, fx.cache, noopLogger{},
	)
}

func TestRenderPortfolio_PublicVisibilityAndDefaults(t *testing.T) {
	fx := newPortfolioFixture()
	public := &project.Project{ID: uuid.New(), OwnerID: fx.userID, Title: "Público", Type: project.TypeStandard, IsPublic: true}
	private := &project.Project{ID: uuid.New(), OwnerID: fx.userID, Title: "Privado", Type: project.TypeStandard}
	fx.projectRepo.projects = []*project.Project{public, private}
	fx.articleRepo.articles = []*article.ScientificArticle{
		{ID: uuid.New(), OwnerID: fx.userID, Title: "Visível", ShowInPortfolio: true},
		{ID: uuid.New(), OwnerID: fx.userID, Title: "Oculto", ShowInPortfolio: false},
	}
	fx.videoRepo.stored = &video.FeaturedVideo{OwnerID: fx.userID, Title: "Intro", URL: "https://youtu.be/abc", Provider: "youtube"}

	view, err := fx.usecase().Execute(context.Background(), RenderPortfolioInput{UserID: fx.userID})
	assert.NoError(t, err)

	assert.Equal(t, i18n.LanguagePT, view.Language)
	assert.Len(t, view.Projects, 1)
	assert.Equal(t, "Público", view.Projects[0].Title)
	assert.Len(t, view.Articles, 1)
	assert.Equal(t, "Visível", view.Articles[0].Title)

	// Missing theme renders the stock modern light bundle.
	assert.Equal(t, theme.LayoutModern, view.Layout)
	assert.Equal(t, theme.ModeLight, view.Mode)
	assert.Equal(t, theme.DeriveStyles(theme.LayoutModern, theme.DefaultPalette(theme.ModeLight), theme.ModeLight), view.Styles)

	assert.NotNil(t, view.Video)
	assert.Equal(t, "youtube", view.Video.Provider)
}

func TestRenderPortfolio_CVSelectionRestrictsContent(t *testing.T) {
	fx := newPortfolioFixture()
	kept := &project.Project{ID: uuid.New(), OwnerID: fx.userID, Title: "Mantido", Type: project.TypeStandard, IsPublic: true}
	dropped := &project.Project{ID: uuid.New(), OwnerID: fx.userID, Title: "Cortado", Type: project.TypeStandard, IsPublic: true}
	fx.projectRepo.projects = []*project.Project{kept, dropped}

	cvID := uuid.New()
	fx.cvRepo.cvs = []*cv.CV{{
		ID:         cvID,
		OwnerID:    fx.userID,
		Name:       "Visão EN",
		Language:   i18n.LanguageEN,
		ProjectIDs: []uuid.UUID{kept.ID},
	}}

	view, err := fx.usecase().Execute(context.Background(), RenderPortfolioInput{
		UserID: fx.userID,
		CVID:   &cvID,
	})
	assert.NoError(t, err)

	// No explicit cvLang, so the CV's own language drives resolution.
	assert.Equal(t, i18n.LanguageEN, view.Language)
	assert.Len(t, view.Projects, 1)
	assert.Equal(t, "Mantido", view.Projects[0].Title)
}

func TestRenderPortfolio_ExplicitLanguageBeatsCVLanguage(t *testing.T) {
	fx := newPortfolioFixture()
	cvID := uuid.New()
	fx.cvRepo.cvs = []*cv.CV{{ID: cvID, OwnerID: fx.userID, Name: "EN", Language: i18n.LanguageEN}}

	view, err := fx.usecase().Execute(context.Background(), RenderPortfolioInput{
		UserID:   fx.userID,
		Language: i18n.LanguageES,
		CVID:     &cvID,
	})
	assert.NoError(t, err)
	assert.Equal(t, i18n.LanguageES, view.Language)
}

func TestRenderPortfolio_SnapshotReadOncePerRender(t *testing.T) {
	fx := newPortfolioFixture()
	fx.projectRepo.projects = []*project.Project{
		{ID: uuid.New(), OwnerID: fx.userID, Title: "A", Type: project.TypeStandard, IsPublic: true},
		{ID: uuid.New(), OwnerID: fx.userID, Title: "B", Type: project.TypeStandard, IsPublic: true},
	}

	_, err := fx.usecase().Execute(context.Background(), RenderPortfolioInput{
		UserID:   fx.userID,
		Language: i18n.LanguageEN,
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, fx.cache.calls)
}

func TestRenderPortfolio_BaseLanguageNeverTouchesCache(t *testing.T) {
	fx := newPortfolioFixture()

	_, err := fx.usecase().Execute(context.Background(), RenderPortfolioInput{UserID: fx.userID})
	assert.NoError(t, err)
	assert.Equal(t, 0, fx.cache.calls)
}

func TestRenderPortfolio_StoredThemeDrivesStyles(t *testing.T) {
	fx := newPortfolioFixture()
	fx.themeRepo = &fakeThemeRepo{stored: &theme.UserTheme{
		OwnerID: fx.userID,
		Palette: theme.DefaultPalette(theme.ModeDark),
		Font:    "Space Grotesk",
		Layout:  theme.LayoutTerminal,
		Mode:    theme.ModeDark,
	}}

	view, err := fx.usecase().Execute(context.Background(), RenderPortfolioInput{UserID: fx.userID})
	assert.NoError(t, err)

	assert.Equal(t, theme.LayoutTerminal, view.Layout)
	assert.Equal(t, "Space Grotesk", view.Font)
	assert.Equal(t, "#0d1117", view.Styles.PageBackground)
}
