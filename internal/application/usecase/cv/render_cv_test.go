package cv

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/lucasmonteiro/vitrine/internal/domain/article"
	"github.com/lucasmonteiro/vitrine/internal/domain/cv"
	"github.com/lucasmonteiro/vitrine/internal/domain/experience"
	"github.com/lucasmonteiro/vitrine/internal/domain/i18n"
	"github.com/lucasmonteiro/vitrine/internal/domain/profile"
	"github.com/lucasmonteiro/vitrine/internal/domain/project"
)

type stubProfileRepo struct {
	prof *profile.Profile
}

func (s *stubProfileRepo) GetByOwner(context.Context, uuid.UUID) (*profile.Profile, error) {
	return s.prof, nil
}

func (s *stubProfileRepo) Upsert(context.Context, *profile.Profile) error { return nil }

type stubProjectRepo struct {
	projects []*project.Project
}

func (s *stubProjectRepo) Save(context.Context, *project.Project) error   { return nil }
func (s *stubProjectRepo) Update(context.Context, *project.Project) error { return nil }
func (s *stubProjectRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

func (s *stubProjectRepo) FindByID(context.Context, uuid.UUID, uuid.UUID) (*project.Project, error) {
	return nil, project.ErrProjectNotFound
}

func (s *stubProjectRepo) ListByOwner(context.Context, uuid.UUID, int, int) ([]*project.Project, error) {
	return s.projects, nil
}

func (s *stubProjectRepo) ListPublicByOwner(context.Context, uuid.UUID) ([]*project.Project, error) {
	return s.projects, nil
}

func (s *stubProjectRepo) CountByOwner(context.Context, uuid.UUID) (int, error) {
	return len(s.projects), nil
}

type stubExperienceRepo struct {
	experiences []*experience.Experience
}

func (s *stubExperienceRepo) Save(context.Context, *experience.Experience) error   { return nil }
func (s *stubExperienceRepo) Update(context.Context, *experience.Experience) error { return nil }
func (s *stubExperienceRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

func (s *stubExperienceRepo) FindByID(context.Context, uuid.UUID, uuid.UUID) (*experience.Experience, error) {
	return nil, errors.New("not found")
}

func (s *stubExperienceRepo) ListByOwner(context.Context, uuid.UUID) ([]*experience.Experience, error) {
	return s.experiences, nil
}

type stubArticleRepo struct {
	articles []*article.ScientificArticle
}

func (s *stubArticleRepo) Save(context.Context, *article.ScientificArticle) error   { return nil }
func (s *stubArticleRepo) Update(context.Context, *article.ScientificArticle) error { return nil }
func (s *stubArticleRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

func (s *stubArticleRepo) FindByID(context.Context, uuid.UUID, uuid.UUID) (*article.ScientificArticle, error) {
	return nil, errors.New("not found")
}

func (s *stubArticleRepo) ListByOwner(context.Context, uuid.UUID) ([]*article.ScientificArticle, error) {
	return s.articles, nil
}

func (s *stubArticleRepo) CountByOwner(context.Context, uuid.UUID) (int, error) {
	return len(s.articles), nil
}

type stubTranslationCache struct {
	snapshot i18n.Snapshot
	err      error
	lastKeys []string
}

func (s *stubTranslationCache) Snapshot(_ context.Context, _ i18n.Language, keys []string) (i18n.Snapshot, error) {
	s.lastKeys = keys
	return s.snapshot, s.err
}

func (s *stubTranslationCache) Store(context.Context, i18n.Language, map[string]string) error {
	return nil
}

func TestRenderCV_ThreeTierResolution(t *testing.T) {
	ownerID := uuid.New()
	projectID := uuid.New()
	experienceID := uuid.New()

	prof := &profile.Profile{
		OwnerID:  ownerID,
		FullName: "Lucas Monteiro",
		Title:    "Engenheiro de Software",
		Bio:      "Construo sistemas",
	}
	proj := &project.Project{
		ID:          projectID,
		OwnerID:     ownerID,
		Title:       "Site X",
		Description: "Plataforma de vendas",
		Type:        project.TypeStandard,
		Translations: i18n.Translations{
			i18n.LanguageEN: {project.FieldTitle: "Site X (EN)"},
		},
	}
	exp := &experience.Experience{
		ID:      experienceID,
		OwnerID: ownerID,
		Company: "Acme Inc.",
		Title:   "Dev",
		Period:  "2021 - Atual",
		Current: true,
	}

	cvRepo := &stubCVRepo{existing: []*cv.CV{{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		Name:          "CV Internacional",
		Language:      i18n.LanguageEN,
		Template:      "clean",
		ProjectIDs:    []uuid.UUID{projectID},
		ExperienceIDs: []uuid.UUID{experienceID},
	}}}
	cache := &stubTranslationCache{snapshot: i18n.Snapshot{
		prof.CacheKey(profile.FieldTitle):       "Software Engineer",
		proj.CacheKey(project.FieldDescription): "Sales platform",
	}}

	uc := NewRenderCVUseCase(
		cvRepo,
		&stubProfileRepo{prof: prof},
		&stubProjectRepo{projects: []*project.Project{proj}},
		&stubExperienceRepo{experiences: []*experience.Experience{exp}},
		&stubArticleRepo{},
		cache,
		noopLogger{},
	)

	doc, err := uc.Execute(context.Background(), RenderCVInput{
		OwnerID: ownerID,
		CVID:    cvRepo.existing[0].ID,
	})
	assert.NoError(t, err)

	assert.Equal(t, i18n.LanguageEN, doc.Language)
	// Cached machine translation for the profile title.
	assert.Equal(t, "Software Engineer", doc.Profile.Title)
	// Base fallback when neither tier has a value.
	assert.Equal(t, "Construo sistemas", doc.Profile.Bio)

	assert.Len(t, doc.Projects, 1)
	// Explicit translation beats the cached one.
	assert.Equal(t, "Site X (EN)", doc.Projects[0].Title)
	assert.Equal(t, "Sales platform", doc.Projects[0].Description)

	assert.Len(t, doc.Experiences, 1)
	assert.Equal(t, "Acme Inc.", doc.Experiences[0].Company)
	assert.True(t, doc.Experiences[0].Current)
}

func TestRenderCV_SelectionAndVisibility(t *testing.T) {
	ownerID := uuid.New()
	selected := &project.Project{ID: uuid.New(), OwnerID: ownerID, Title: "Escolhido", Type: project.TypeStandard}
	unselected := &project.Project{ID: uuid.New(), OwnerID: ownerID, Title: "Fora", Type: project.TypeStandard}
	inCV := &article.ScientificArticle{ID: uuid.New(), OwnerID: ownerID, Title: "Artigo A", ShowInCV: true}
	hidden := &article.ScientificArticle{ID: uuid.New(), OwnerID: ownerID, Title: "Artigo B", ShowInCV: false}

	cvRepo := &stubCVRepo{existing: []*cv.CV{{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Name:       "CV",
		Language:   i18n.LanguagePT,
		ProjectIDs: []uuid.UUID{selected.ID},
		ArticleIDs: []uuid.UUID{inCV.ID, hidden.ID},
	}}}

	uc := NewRenderCVUseCase(
		cvRepo,
		&stubProfileRepo{prof: &profile.Profile{OwnerID: ownerID}},
		&stubProjectRepo{projects: []*project.Project{selected, unselected}},
		&stubExperienceRepo{},
		&stubArticleRepo{articles: []*article.ScientificArticle{inCV, hidden}},
		&stubTranslationCache{},
		noopLogger{},
	)

	doc, err := uc.Execute(context.Background(), RenderCVInput{
		OwnerID: ownerID,
		CVID:    cvRepo.existing[0].ID,
	})
	assert.NoError(t, err)

	assert.Len(t, doc.Projects, 1)
	assert.Equal(t, "Escolhido", doc.Projects[0].Title)
	// ShowInCV=false stays out even when the CV selects it.
	assert.Len(t, doc.Articles, 1)
	assert.Equal(t, "Artigo A", doc.Articles[0].Title)
}

func TestRenderCV_LanguageOverrideAndCacheFailure(t *testing.T) {
	ownerID := uuid.New()
	photo := "https://cdn.example/photo.jpg"
	prof := &profile.Profile{OwnerID: ownerID, Title: "Engenheira", PhotoURL: &photo}

	cvRepo := &stubCVRepo{existing: []*cv.CV{{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Name:         "CV",
		Language:     i18n.LanguagePT,
		IncludePhoto: true,
	}}}
	cache := &stubTranslationCache{err: errors.New("redis down")}

	uc := NewRenderCVUseCase(
		cvRepo,
		&stubProfileRepo{prof: prof},
		&stubProjectRepo{},
		&stubExperienceRepo{},
		&stubArticleRepo{},
		cache,
		noopLogger{},
	)

	doc, err := uc.Execute(context.Background(), RenderCVInput{
		OwnerID:  ownerID,
		CVID:     cvRepo.existing[0].ID,
		Language: i18n.LanguageES,
	})
	assert.NoError(t, err)

	// Query language wins over the stored one; cache failure degrades to
	// base-language fallbacks.
	assert.Equal(t, i18n.LanguageES, doc.Language)
	assert.Equal(t, "Engenheira", doc.Profile.Title)
	assert.Equal(t, &photo, doc.Profile.PhotoURL)
}

func TestRenderCV_BaseLanguageSkipsCache(t *testing.T) {
	ownerID := uuid.New()
	cvRepo := &stubCVRepo{existing: []*cv.CV{{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		Name:     "CV",
		Language: i18n.LanguagePT,
	}}}
	cache := &stubTranslationCache{err: errors.New("must not be called")}

	uc := NewRenderCVUseCase(
		cvRepo,
		&stubProfileRepo{prof: &profile.Profile{OwnerID: ownerID, Title: "Título"}},
		&stubProjectRepo{},
		&stubExperienceRepo{},
		&stubArticleRepo{},
		cache,
		noopLogger{},
	)

	doc, err := uc.Execute(context.Background(), RenderCVInput{
		OwnerID: ownerID,
		CVID:    cvRepo.existing[0].ID,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Título", doc.Profile.Title)
	assert.Nil(t, cache.lastKeys)
}
