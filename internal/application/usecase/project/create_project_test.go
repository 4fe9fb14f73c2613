package project

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/lucasmonteiro/vitrine/internal/domain/project"
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
	sub *subscription.Subscription
	err error
}

func (s *stubSubscriptionRepo) GetByOwner(context.Context, uuid.UUID) (*subscription.Subscription, error) {
	return s.sub, s.err
}

func (s *stubSubscriptionRepo) Upsert(context.Context, *subscription.Subscription) error {
	return nil
}

type stubProjectRepo struct {
	count    int
	countErr error
	saved    *project.Project
}

func (s *stubProjectRepo) Save(_ context.Context, p *project.Project) error {
	s.saved = p
	return nil
}

func (s *stubProjectRepo) Update(context.Context, *project.Project) error { return nil }
func (s *stubProjectRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

func (s *stubProjectRepo) FindByID(context.Context, uuid.UUID, uuid.UUID) (*project.Project, error) {
	return nil, project.ErrProjectNotFound
}

func (s *stubProjectRepo) ListByOwner(context.Context, uuid.UUID, int, int) ([]*project.Project, error) {
	return nil, nil
}

func (s *stubProjectRepo) ListPublicByOwner(context.Context, uuid.UUID) ([]*project.Project, error) {
	return nil, nil
}

func (s *stubProjectRepo) CountByOwner(context.Context, uuid.UUID) (int, error) {
	return s.count, s.countErr
}

func basicSubscription(ownerID uuid.UUID) *subscription.Subscription {
	return &subscription.Subscription{
		OwnerID:   ownerID,
		Tier:      "basic",
		Status:    subscription.StatusActive,
		UpdatedAt: time.Now().UTC(),
	}
}

func TestCreateProject_BasicTierAtCap(t *testing.T) {
	ownerID := uuid.New()
	projectRepo := &stubProjectRepo{count: 3}
	subsRepo := &stubSubscriptionRepo{sub: basicSubscription(ownerID)}
	uc := NewCreateProjectUseCase(projectRepo, subsRepo, nil, noopLogger{})

	_, err := uc.Execute(context.Background(), CreateProjectInput{
		OwnerID: ownerID,
		Title:   "Fourth project",
	})

	assert.ErrorIs(t, err, apperror.ErrPlanLimit)
	assert.Nil(t, projectRepo.saved)
}

func TestCreateProject_ValidationRunsAfterGate(t *testing.T) {
	ownerID := uuid.New()
	projectRepo := &stubProjectRepo{count: 0}
	subsRepo := &stubSubscriptionRepo{sub: basicSubscription(ownerID)}
	uc := NewCreateProjectUseCase(projectRepo, subsRepo, nil, noopLogger{})

	_, err := uc.Execute(context.Background(), CreateProjectInput{
		OwnerID: ownerID,
		Title:   "Repo-less github project",
		Type:    project.TypeGithub,
	})

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Nil(t, projectRepo.saved)
}

func TestCreateProject_SubscriptionLookupFailure(t *testing.T) {
	ownerID := uuid.New()
	projectRepo := &stubProjectRepo{}
	subsRepo := &stubSubscriptionRepo{err: errors.New("db down")}
	uc := NewCreateProjectUseCase(projectRepo, subsRepo, nil, noopLogger{})

	_, err := uc.Execute(context.Background(), CreateProjectInput{OwnerID: ownerID, Title: "X"})
	assert.Error(t, err)
}
