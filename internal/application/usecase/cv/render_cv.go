package cv

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lucasmonteiro/vitrine/internal/application/service"
	"github.com/lucasmonteiro/vitrine/internal/domain/article"
	"github.com/lucasmonteiro/vitrine/internal/domain/cv"
	"github.com/lucasmonteiro/vitrine/internal/domain/experience"
	"github.com/lucasmonteiro/vitrine/internal/domain/i18n"
	"github.com/lucasmonteiro/vitrine/internal/domain/profile"
	"github.com/lucasmonteiro/vitrine/internal/domain/project"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

// RenderCVUseCase materializes a CV configuration into a print-ready
// document. Field resolution goes through the same resolver the public
// portfolio uses, so both surfaces agree for a given language.
type RenderCVUseCase struct {
	cvRepo         cv.Repository
	profileRepo    profile.Repository
	projectRepo    project.Repository
	experienceRepo experience.Repository
	articleRepo    article.Repository
	cache          service.TranslationCache
	logger         logger.Logger
}

func NewRenderCVUseCase(
	cvRepo cv.Repository,
	profileRepo profile.Repository,
	projectRepo project.Repository,
	experienceRepo experience.Repository,
	articleRepo article.Repository,
	cache service.TranslationCache,
	log logger.Logger,
) *RenderCVUseCase {
	return &RenderCVUseCase{
		cvRepo:         cvRepo,
		profileRepo:    profileRepo,
		projectRepo:    projectRepo,
		experienceRepo: experienceRepo,
		articleRepo:    articleRepo,
		cache:          cache,
		logger:         log,
	}
}

// maxProjectsPerRender caps the project fetch for a single document;
// comfortably above the premium plan quota.
const maxProjectsPerRender = 200

type RenderCVInput struct {
	OwnerID uuid.UUID
	CVID    uuid.UUID
	// Language overrides the CV's own language when non-empty.
	Language i18n.Language
}

type CVDocument struct {
	Name         string        `json:"name"`
	Language     i18n.Language `json:"language"`
	Template     string        `json:"template"`
	IncludePhoto bool          `json:"include_photo"`

	Profile     CVProfile      `json:"profile"`
	Projects    []CVProject    `json:"projects"`
	Experiences []CVExperience `json:"experiences"`
	Articles    []CVArticle    `json:"articles"`
}

type CVProfile struct {
	FullName  string              `json:"full_name"`
	Title     string              `json:"title"`
	Bio       string              `json:"bio"`
	Email     string              `json:"email"`
	Phone     string              `json:"phone"`
	Location  string              `json:"location"`
	PhotoURL  *string             `json:"photo_url,omitempty"`
	Skills    []string            `json:"skills"`
	Education []profile.Education `json:"education"`
}

type CVProject struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	RepositoryURL *string `json:"repository_url,omitempty"`
}

type CVExperience struct {
	ID             string  `json:"id"`
	Company        string  `json:"company"`
	Title          string  `json:"title"`
	Period         string  `json:"period"`
	Current        bool    `json:"current"`
	Description    string  `json:"description"`
	CertificateURL *string `json:"certificate_url,omitempty"`
}

type CVArticle struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Journal string  `json:"journal"`
	Year    int     `json:"year"`
	DOI     *string `json:"doi,omitempty"`
}

func (uc *RenderCVUseCase) Execute(ctx context.Context, input RenderCVInput) (*CVDocument, error) {
	config, err := uc.cvRepo.FindByID(ctx, input.CVID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	lang := config.Language
	if input.Language != "" {
		lang = input.Language
	}

	prof, err := uc.profileRepo.GetByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("load profile failed: %w", err)
	}

	allProjects, err := uc.projectRepo.ListByOwner(ctx, input.OwnerID, maxProjectsPerRender, 0)
	if err != nil {
		return nil, fmt.Errorf("load projects failed: %w", err)
	}
	allExperiences, err := uc.experienceRepo.ListByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("load experiences failed: %w", err)
	}
	allArticles, err := uc.articleRepo.ListByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("load articles failed: %w", err)
	}

	projects := make([]*project.Project, 0, len(config.ProjectIDs))
	for _, p := range allProjects {
		if config.SelectsProject(p.ID) {
			projects = append(projects, p)
		}
	}
	experiences := make([]*experience.Experience, 0, len(config.ExperienceIDs))
	for _, e := range allExperiences {
		if config.SelectsExperience(e.ID) {
			experiences = append(experiences, e)
		}
	}
	articles := make([]*article.ScientificArticle, 0, len(config.ArticleIDs))
	for _, a := range allArticles {
		if config.SelectsArticle(a.ID) && a.ShowInCV {
			articles = append(articles, a)
		}
	}

	resolver := uc.newResolver(ctx, lang, prof, projects, experiences, articles)

	doc := &CVDocument{
		Name:         config.Name,
		Language:     lang,
		Template:     config.Template,
		IncludePhoto: config.IncludePhoto,
		Profile: CVProfile{
			FullName:  prof.FullName,
			Title:     resolver.Resolve(prof, profile.FieldTitle),
			Bio:       resolver.Resolve(prof, profile.FieldBio),
			Email:     prof.Email,
			Phone:     prof.Phone,
			Location:  prof.Location,
			Skills:    prof.Skills,
			Education: prof.Education,
		},
	}
	if config.IncludePhoto {
		doc.Profile.PhotoURL = prof.PhotoURL
	}

	doc.Projects = make([]CVProject, len(projects))
	for i, p := range projects {
		doc.Projects[i] = CVProject{
			ID:            p.ID.String(),
			Title:         resolver.Resolve(p, project.FieldTitle),
			Description:   resolver.Resolve(p, project.FieldDescription),
			Category:      p.Category,
			RepositoryURL: p.RepositoryURL,
		}
	}

	doc.Experiences = make([]CVExperience, len(experiences))
	for i, e := range experiences {
		doc.Experiences[i] = CVExperience{
			ID:             e.ID.String(),
			Company:        resolver.Resolve(e, experience.FieldCompany),
			Title:          resolver.Resolve(e, experience.FieldTitle),
			Period:         e.Period,
			Current:        e.Current,
			Description:    resolver.Resolve(e, experience.FieldDescription),
			CertificateURL: e.CertificateURL,
		}
	}

	doc.Articles = make([]CVArticle, len(articles))
	for i, a := range articles {
		doc.Articles[i] = CVArticle{
			ID:      a.ID.String(),
			Title:   resolver.Resolve(a, article.FieldTitle),
			Journal: a.Journal,
			Year:    a.Year,
			DOI:     a.DOI,
		}
	}

	return doc, nil
}

// newResolver reads the machine-translation snapshot once per render.
// Cache failures degrade to an empty snapshot: tier 3 fallback, never an
// error for the caller.
func (uc *RenderCVUseCase) newResolver(
	ctx context.Context,
	lang i18n.Language,
	prof *profile.Profile,
	projects []*project.Project,
	experiences []*experience.Experience,
	articles []*article.ScientificArticle,
) i18n.Resolver {
	if lang == i18n.Base {
		return i18n.NewResolver(lang, nil)
	}

	keys := []string{prof.CacheKey(profile.FieldTitle), prof.CacheKey(profile.FieldBio)}
	for _, p := range projects {
		keys = append(keys, p.CacheKey(project.FieldTitle), p.CacheKey(project.FieldDescription))
	}
	for _, e := range experiences {
		keys = append(keys, e.CacheKey(experience.FieldCompany), e.CacheKey(experience.FieldTitle), e.CacheKey(experience.FieldDescription))
	}
	for _, a := range articles {
		keys = append(keys, a.CacheKey(article.FieldTitle), a.CacheKey(article.FieldAbstract))
	}

	snapshot, err := uc.cache.Snapshot(ctx, lang, keys)
	if err != nil {
		uc.logger.Warn("Translation cache unavailable, rendering base-language fallbacks", zap.Error(err))
		snapshot = nil
	}
	return i18n.NewResolver(lang, snapshot)
}
