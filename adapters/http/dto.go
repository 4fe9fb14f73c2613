package http

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lucasmonteiro/vitrine/internal/domain/article"
	"github.com/lucasmonteiro/vitrine/internal/domain/cv"
	"github.com/lucasmonteiro/vitrine/internal/domain/experience"
	"github.com/lucasmonteiro/vitrine/internal/domain/i18n"
	"github.com/lucasmonteiro/vitrine/internal/domain/profile"
	"github.com/lucasmonteiro/vitrine/internal/domain/project"
	"github.com/lucasmonteiro/vitrine/internal/domain/theme"
	"github.com/lucasmonteiro/vitrine/internal/domain/video"
)

// TranslationsDTO mirrors the per-entity override block:
// language -> field -> value.
type TranslationsDTO map[string]map[string]string

func (t TranslationsDTO) ToDomain() i18n.Translations {
	if len(t) == 0 {
		return nil
	}
	out := i18n.Translations{}
	for lang, fields := range t {
		out[i18n.Language(lang)] = fields
	}
	return out
}

func ToTranslationsDTO(t i18n.Translations) TranslationsDTO {
	if len(t) == 0 {
		return nil
	}
	out := TranslationsDTO{}
	for lang, fields := range t {
		out[string(lang)] = fields
	}
	return out
}

// Profile DTOs

type EducationDTO struct {
	Institution string `json:"institution" binding:"required"`
	Degree      string `json:"degree"`
	Period      string `json:"period"`
}

type SocialLinkDTO struct {
	Platform string `json:"platform" binding:"required"`
	URL      string `json:"url" binding:"required"`
}

type ProfileDTO struct {
	FullName          string          `json:"full_name"`
	Title             string          `json:"title"`
	Bio               string          `json:"bio"`
	Email             string          `json:"email"`
	Phone             string          `json:"phone"`
	Location          string          `json:"location"`
	PhotoURL          *string         `json:"photo_url"`
	Skills            []string        `json:"skills"`
	Education         []EducationDTO  `json:"education"`
	SocialLinks       []SocialLinkDTO `json:"social_links"`
	PreferredLanguage string          `json:"preferred_language"`
	Translations      TranslationsDTO `json:"translations,omitempty"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type UpdateProfileRequest struct {
	FullName          string          `json:"full_name" binding:"required"`
	Title             string          `json:"title"`
	Bio               string          `json:"bio"`
	Email             string          `json:"email"`
	Phone             string          `json:"phone"`
	Location          string          `json:"location"`
	PhotoURL          *string         `json:"photo_url"`
	Skills            []string        `json:"skills"`
	Education         []EducationDTO  `json:"education"`
	SocialLinks       []SocialLinkDTO `json:"social_links"`
	PreferredLanguage string          `json:"preferred_language" binding:"omitempty,oneof=pt en es"`
	Translations      TranslationsDTO `json:"translations"`
}

func (req *UpdateProfileRequest) ToDomainEducation() []profile.Education {
	out := make([]profile.Education, len(req.Education))
	for i, e := range req.Education {
		out[i] = profile.Education{Institution: e.Institution, Degree: e.Degree, Period: e.Period}
	}
	return out
}

func (req *UpdateProfileRequest) ToDomainSocialLinks() []profile.SocialLink {
	out := make([]profile.SocialLink, len(req.SocialLinks))
	for i, l := range req.SocialLinks {
		out[i] = profile.SocialLink{Platform: l.Platform, URL: l.URL}
	}
	return out
}

func ToProfileDTO(p *profile.Profile) ProfileDTO {
	dto := ProfileDTO{
		FullName:          p.FullName,
		Title:             p.Title,
		Bio:               p.Bio,
		Email:             p.Email,
		Phone:             p.Phone,
		Location:          p.Location,
		PhotoURL:          p.PhotoURL,
		Skills:            p.Skills,
		PreferredLanguage: string(p.PreferredLanguage),
		Translations:      ToTranslationsDTO(p.Translations),
		UpdatedAt:         p.UpdatedAt,
	}
	dto.Education = make([]EducationDTO, len(p.Education))
	for i, e := range p.Education {
		dto.Education[i] = EducationDTO{Institution: e.Institution, Degree: e.Degree, Period: e.Period}
	}
	dto.SocialLinks = make([]SocialLinkDTO, len(p.SocialLinks))
	for i, l := range p.SocialLinks {
		dto.SocialLinks[i] = SocialLinkDTO{Platform: l.Platform, URL: l.URL}
	}
	return dto
}

// Project DTOs

type CreateProjectRequest struct {
	Title         string          `json:"title" binding:"required"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Type          string          `json:"type" binding:"omitempty,oneof=standard github media professional"`
	RepositoryURL *string         `json:"repository_url"`
	VideoURL      *string         `json:"video_url"`
	ImageURL      *string         `json:"image_url"`
	ClientName    *string         `json:"client_name"`
	Translations  TranslationsDTO `json:"translations"`
	IsPublic      bool            `json:"is_public"`
}

type UpdateProjectRequest struct {
	Title         string          `json:"title" binding:"required"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Type          string          `json:"type" binding:"required,oneof=standard github media professional"`
	RepositoryURL *string         `json:"repository_url"`
	VideoURL      *string         `json:"video_url"`
	ImageURL      *string         `json:"image_url"`
	ClientName    *string         `json:"client_name"`
	Translations  TranslationsDTO `json:"translations"`
	IsPublic      bool            `json:"is_public"`
}

type ProjectDTO struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Type          string          `json:"type"`
	RepositoryURL *string         `json:"repository_url"`
	VideoURL      *string         `json:"video_url"`
	ImageURL      *string         `json:"image_url"`
	ClientName    *string         `json:"client_name"`
	Translations  TranslationsDTO `json:"translations,omitempty"`
	IsPublic      bool            `json:"is_public"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type ProjectSummaryDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Type      string    `json:"type"`
	IsPublic  bool      `json:"is_public"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToProjectDTO(p *project.Project) ProjectDTO {
	return ProjectDTO{
		ID:            p.ID.String(),
		Title:         p.Title,
		Description:   p.Description,
		Category:      p.Category,
		Type:          string(p.Type),
		RepositoryURL: p.RepositoryURL,
		VideoURL:      p.VideoURL,
		ImageURL:      p.ImageURL,
		ClientName:    p.ClientName,
		Translations:  ToTranslationsDTO(p.Translations),
		IsPublic:      p.IsPublic,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func ToProjectSummaryDTO(p *project.Project) ProjectSummaryDTO {
	return ProjectSummaryDTO{
		ID:        p.ID.String(),
		Title:     p.Title,
		Category:  p.Category,
		Type:      string(p.Type),
		IsPublic:  p.IsPublic,
		UpdatedAt: p.UpdatedAt,
	}
}

// Experience DTOs

type CreateOrUpdateExperienceRequest struct {
	Company        string          `json:"company" binding:"required"`
	Title          string          `json:"title" binding:"required"`
	Period         string          `json:"period"`
	Description    string          `json:"description"`
	CertificateURL *string         `json:"certificate_url"`
	Translations   TranslationsDTO `json:"translations"`
}

type ExperienceDTO struct {
	ID             string          `json:"id"`
	Company        string          `json:"company"`
	Title          string          `json:"title"`
	Period         string          `json:"period"`
	Current        bool            `json:"current"`
	Description    string          `json:"description"`
	CertificateURL *string         `json:"certificate_url"`
	Translations   TranslationsDTO `json:"translations,omitempty"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func ToExperienceDTO(e *experience.Experience) ExperienceDTO {
	return ExperienceDTO{
		ID:             e.ID.String(),
		Company:        e.Company,
		Title:          e.Title,
		Period:         e.Period,
		Current:        e.Current,
		Description:    e.Description,
		CertificateURL: e.CertificateURL,
		Translations:   ToTranslationsDTO(e.Translations),
		UpdatedAt:      e.UpdatedAt,
	}
}

// Article DTOs

type CreateOrUpdateArticleRequest struct {
	Title           string          `json:"title" binding:"required"`
	Journal         string          `json:"journal"`
	Year            int             `json:"year" binding:"omitempty,min=1900,max=2100"`
	DOI             *string         `json:"doi"`
	URL             *string         `json:"url"`
	Abstract        string          `json:"abstract"`
	Translations    TranslationsDTO `json:"translations"`
	ShowInPortfolio bool            `json:"show_in_portfolio"`
	ShowInCV        bool            `json:"show_in_cv"`
}

type ArticleDTO struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Journal         string          `json:"journal"`
	Year            int             `json:"year"`
	DOI             *string         `json:"doi"`
	URL             *string         `json:"url"`
	Abstract        string          `json:"abstract"`
	Translations    TranslationsDTO `json:"translations,omitempty"`
	ShowInPortfolio bool            `json:"show_in_portfolio"`
	ShowInCV        bool            `json:"show_in_cv"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func ToArticleDTO(a *article.ScientificArticle) ArticleDTO {
	return ArticleDTO{
		ID:              a.ID.String(),
		Title:           a.Title,
		Journal:         a.Journal,
		Year:            a.Year,
		DOI:             a.DOI,
		URL:             a.URL,
		Abstract:        a.Abstract,
		Translations:    ToTranslationsDTO(a.Translations),
		ShowInPortfolio: a.ShowInPortfolio,
		ShowInCV:        a.ShowInCV,
		UpdatedAt:       a.UpdatedAt,
	}
}

// CV DTOs

type CreateOrUpdateCVRequest struct {
	Name          string   `json:"name" binding:"required"`
	Language      string   `json:"language" binding:"required,oneof=pt en es"`
	Template      string   `json:"template"`
	IncludePhoto  bool     `json:"include_photo"`
	ProjectIDs    []string `json:"project_ids"`
	ExperienceIDs []string `json:"experience_ids"`
	ArticleIDs    []string `json:"article_ids"`
}

type CVDTO struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Language      string    `json:"language"`
	Template      string    `json:"template"`
	IncludePhoto  bool      `json:"include_photo"`
	ProjectIDs    []string  `json:"project_ids"`
	ExperienceIDs []string  `json:"experience_ids"`
	ArticleIDs    []string  `json:"article_ids"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ToCVDTO(c *cv.CV) CVDTO {
	return CVDTO{
		ID:            c.ID.String(),
		Name:          c.Name,
		Language:      string(c.Language),
		Template:      c.Template,
		IncludePhoto:  c.IncludePhoto,
		ProjectIDs:    uuidsToStrings(c.ProjectIDs),
		ExperienceIDs: uuidsToStrings(c.ExperienceIDs),
		ArticleIDs:    uuidsToStrings(c.ArticleIDs),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func uuidsToStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, len(raw))
	for i, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("invalid id '%s': %w", s, err)
		}
		out[i] = id
	}
	return out, nil
}

// Theme DTOs

type PaletteDTO struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

type UpdateThemeRequest struct {
	Layout  string     `json:"layout" binding:"omitempty,oneof=modern classic minimal creative terminal magazine"`
	Mode    string     `json:"mode" binding:"required,oneof=light dark"`
	Font    string     `json:"font"`
	Palette PaletteDTO `json:"palette"`
}

type ThemeDTO struct {
	Layout    string     `json:"layout"`
	Mode      string     `json:"mode"`
	Font      string     `json:"font"`
	Palette   PaletteDTO `json:"palette"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (p PaletteDTO) ToDomain() theme.Palette {
	return theme.Palette(p)
}

func ToThemeDTO(t *theme.UserTheme) ThemeDTO {
	return ThemeDTO{
		Layout:    string(t.Layout),
		Mode:      string(t.Mode),
		Font:      t.Font,
		Palette:   PaletteDTO(t.Palette),
		UpdatedAt: t.UpdatedAt,
	}
}

// Video DTOs

type SetVideoRequest struct {
	Title string `json:"title"`
	URL   string `json:"url" binding:"required,url"`
}

type VideoDTO struct {
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Provider  string    `json:"provider"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToVideoDTO(v *video.FeaturedVideo) VideoDTO {
	return VideoDTO{
		Title:     v.Title,
		URL:       v.URL,
		Provider:  v.Provider,
		UpdatedAt: v.UpdatedAt,
	}
}

// Translation DTOs

type TranslateRequest struct {
	Target string   `json:"target" binding:"required"`
	Texts  []string `json:"texts" binding:"required"`
}

type TranslateResponse struct {
	Translations []string `json:"translations"`
}

// Billing DTOs

type CreatePreferenceRequest struct {
	PlanID string `json:"plan_id" binding:"required,oneof=pro premium"`
}

type CreatePreferenceResponse struct {
	InitPoint string `json:"init_point"`
}
