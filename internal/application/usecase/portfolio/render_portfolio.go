package portfolio

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
	"github.com/lucasmonteiro/vitrine/internal/domain/theme"
	"github.com/lucasmonteiro/vitrine/internal/domain/video"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

// RenderPortfolioUseCase composes the public page: profile, public
// content and the derived style bundle, localized through the shared
// resolver.
type RenderPortfolioUseCase struct {
	profileRepo    profile.Repository
	projectRepo    project.Repository
	experienceRepo experience.Repository
	articleRepo    article.Repository
	cvRepo         cv.Repository
	themeRepo      theme.Repository
	videoRepo      video.Repository
	cache          service.TranslationCache
	logger         logger.Logger
}

func NewRenderPortfolioUseCase(
	profileRepo profile.Repository,
	projectRepo project.Repository,
	experienceRepo experience.Repository,
	articleRepo article.Repository,
	cvRepo cv.Repository,
	themeRepo theme.Repository,
	videoRepo video.Repository,
	cache service.TranslationCache,
	log logger.Logger,
) *RenderPortfolioUseCase {
	return &RenderPortfolioUseCase{
		profileRepo:    profileRepo,
		projectRepo:    projectRepo,
		experienceRepo: experienceRepo,
		articleRepo:    articleRepo,
		cvRepo:         cvRepo,
		themeRepo:      themeRepo,
		videoRepo:      videoRepo,
		cache:          cache,
		logger:         log,
	}
}

type RenderPortfolioInput struct {
	UserID uuid.UUID
	// Language comes from ?cvLang=; empty means the profile's preferred
	// language.
	Language i18n.Language
	// CVID comes from ?cvId=; when set, content is restricted to that
	// CV's selections.
	CVID *uuid.UUID
}

type PortfolioView struct {
	Language i18n.Language     `json:"language"`
	Styles   theme.StyleBundle `json:"styles"`
	Layout   theme.LayoutID    `json:"layout"`
	Mode     theme.Mode        `json:"mode"`
	Font     string            `json:"font"`

	Profile     PortfolioProfile      `json:"profile"`
	Projects    []PortfolioProject    `json:"projects"`
	Experiences []PortfolioExperience `json:"experiences"`
	Articles    []PortfolioArticle    `json:"articles"`
	Video       *PortfolioVideo       `json:"video,omitempty"`
}

type PortfolioProfile struct {
	FullName    string               `json:"full_name"`
	Title       string               `json:"title"`
	Bio         string               `json:"bio"`
	Location    string               `json:"location"`
	PhotoURL    *string              `json:"photo_url,omitempty"`
	Skills      []string             `json:"skills"`
	Education   []profile.Education  `json:"education"`
	SocialLinks []profile.SocialLink `json:"social_links"`
}

type PortfolioProject struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Type          string  `json:"type"`
	RepositoryURL *string `json:"repository_url,omitempty"`
	VideoURL      *string `json:"video_url,omitempty"`
	ImageURL      *string `json:"image_url,omitempty"`
	ClientName    *string `json:"client_name,omitempty"`
}

type PortfolioExperience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Title       string `json:"title"`
	Period      string `json:"period"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type PortfolioArticle struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Journal string  `json:"journal"`
	Year    int     `json:"year"`
	URL     *string `json:"url,omitempty"`
}

type PortfolioVideo struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Provider string `json:"provider"`
}

func (uc *RenderPortfolioUseCase) Execute(ctx context.Context, input RenderPortfolioInput) (*PortfolioView, error) {
	prof, err := uc.profileRepo.GetByOwner(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("load profile failed: %w", err)
	}

	lang := input.Language
	if lang == "" {
		lang = prof.PreferredLanguage
	}
	if lang == "" {
		lang = i18n.Base
	}

	var selection *cv.CV
	if input.CVID != nil {
		selection, err = uc.cvRepo.FindByID(ctx, *input.CVID, input.UserID)
		if err != nil {
			return nil, err
		}
		if input.Language == "" {
			lang = selection.Language
		}
	}

	projects, err := uc.projectRepo.ListPublicByOwner(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("load projects failed: %w", err)
	}
	experiences, err := uc.experienceRepo.ListByOwner(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("load experiences failed: %w", err)
	}
	allArticles, err := uc.articleRepo.ListByOwner(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("load articles failed: %w", err)
	}
	articles := make([]*article.ScientificArticle, 0, len(allArticles))
	for _, a := range allArticles {
		if a.ShowInPortfolio {
			articles = append(articles, a)
		}
	}

	if selection != nil {
		projects = filterProjects(projects, selection)
		experiences = filterExperiences(experiences, selection)
		articles = filterArticles(articles, selection)
	}

	userTheme, err := uc.themeRepo.GetByOwner(ctx, input.UserID)
	if err != nil {
		uc.logger.Warn("Failed to load theme, rendering defaults", zap.Error(err))
		userTheme = theme.Default(input.UserID)
	}

	resolver := uc.newResolver(ctx, lang, prof, projects, experiences, articles)

	view := &PortfolioView{
		Language: lang,
		Styles:   theme.DeriveStyles(userTheme.Layout, userTheme.Palette, userTheme.Mode),
		Layout:   userTheme.Layout,
		Mode:     userTheme.Mode,
		Font:     userTheme.Font,
		Profile: PortfolioProfile{
			FullName:    prof.FullName,
			Title:       resolver.Resolve(prof, profile.FieldTitle),
			Bio:         resolver.Resolve(prof, profile.FieldBio),
			Location:    prof.Location,
			PhotoURL:    prof.PhotoURL,
			Skills:      prof.Skills,
			Education:   prof.Education,
			SocialLinks: prof.SocialLinks,
		},
	}

	view.Projects = make([]PortfolioProject, len(projects))
	for i, p := range projects {
		view.Projects[i] = PortfolioProject{
			ID:            p.ID.String(),
			Title:         resolver.Resolve(p, project.FieldTitle),
			Description:   resolver.Resolve(p, project.FieldDescription),
			Category:      p.Category,
			Type:          string(p.Type),
			RepositoryURL: p.RepositoryURL,
			VideoURL:      p.VideoURL,
			ImageURL:      p.ImageURL,
			ClientName:    p.ClientName,
		}
	}

	view.Experiences = make([]PortfolioExperience, len(experiences))
	for i, e := range experiences {
		view.Experiences[i] = PortfolioExperience{
			ID:          e.ID.String(),
			Company:     resolver.Resolve(e, experience.FieldCompany),
			Title:       resolver.Resolve(e, experience.FieldTitle),
			Period:      e.Period,
			Current:     e.Current,
			Description: resolver.Resolve(e, experience.FieldDescription),
		}
	}

	view.Articles = make([]PortfolioArticle, len(articles))
	for i, a := range articles {
		view.Articles[i] = PortfolioArticle{
			ID:      a.ID.String(),
			Title:   resolver.Resolve(a, article.FieldTitle),
			Journal: a.Journal,
			Year:    a.Year,
			URL:     a.URL,
		}
	}

	if v, err := uc.videoRepo.GetByOwner(ctx, input.UserID); err == nil && v != nil {
		view.Video = &PortfolioVideo{Title: v.Title, URL: v.URL, Provider: v.Provider}
	}

	return view, nil
}

func filterProjects(in []*project.Project, sel *cv.CV) []*project.Project {
	out := make([]*project.Project, 0, len(in))
	for _, p := range in {
		if sel.SelectsProject(p.ID) {
			out = append(out, p)
		}
	}
	return out
}

func filterExperiences(in []*experience.Experience, sel *cv.CV) []*experience.Experience {
	out := make([]*experience.Experience, 0, len(in))
	for _, e := range in {
		if sel.SelectsExperience(e.ID) {
			out = append(out, e)
		}
	}
	return out
}

func filterArticles(in []*article.ScientificArticle, sel *cv.CV) []*article.ScientificArticle {
	out := make([]*article.ScientificArticle, 0, len(in))
	for _, a := range in {
		if sel.SelectsArticle(a.ID) {
			out = append(out, a)
		}
	}
	return out
}

func (uc *RenderPortfolioUseCase) newResolver(
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
