package video

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lucasmonteiro/vitrine/internal/domain/video"
	"github.com/lucasmonteiro/vitrine/pkg/apperror"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

type VideoUseCase struct {
	repo   video.Repository
	logger logger.Logger
}

func NewVideoUseCase(r video.Repository, log logger.Logger) *VideoUseCase {
	return &VideoUseCase{repo: r, logger: log}
}

func (uc *VideoUseCase) GetVideo(ctx context.Context, ownerID uuid.UUID) (*video.FeaturedVideo, error) {
	return uc.repo.GetByOwner(ctx, ownerID)
}

type SetVideoInput struct {
	OwnerID uuid.UUID
	Title   string
	URL     string
}

func (uc *VideoUseCase) SetVideo(ctx context.Context, in SetVideoInput) (*video.FeaturedVideo, error) {
	provider, err := detectProvider(in.URL)
	if err != nil {
		return nil, apperror.NewInvalidInput("unsupported video url", err)
	}

	v := &video.FeaturedVideo{
		OwnerID:   in.OwnerID,
		Title:     in.Title,
		URL:       in.URL,
		Provider:  provider,
		UpdatedAt: time.Now().UTC(),
	}
	if err := uc.repo.Upsert(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (uc *VideoUseCase) RemoveVideo(ctx context.Context, ownerID uuid.UUID) error {
	return uc.repo.Delete(ctx, ownerID)
}

func detectProvider(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", errors.New("not a valid absolute url")
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	switch {
	case host == "youtube.com" || host == "youtu.be":
		return "youtube", nil
	case host == "vimeo.com":
		return "vimeo", nil
	}
	return "", errors.New("only youtube and vimeo are supported")
}
