package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/lucasmonteiro/vitrine/internal/domain/cv"
	"github.com/lucasmonteiro/vitrine/internal/domain/i18n"
	"github.com/lucasmonteiro/vitrine/internal/domain/plan"
	"github.com/lucasmonteiro/vitrine/internal/domain/subscription"
	"github.com/lucasmonteiro/vitrine/pkg/apperror"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

type CVRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	testLogger  logger.Logger
	cvRepo      cv.Repository
	subsRepo    subscription.Repository
	testOwnerID uuid.UUID
}

func (s *CVRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	s.testLogger = logger.NewZapLogger("development")
	s.cvRepo = NewPostgresCVRepo(s.dbPool, s.testLogger)
	s.subsRepo = NewPostgresSubscriptionRepo(s.dbPool, s.testLogger)

	s.testOwnerID = uuid.New()
	query := `INSERT INTO users (id, email, name, password_hash) VALUES ($1, $2, $3, $4)`
	_, err = s.dbPool.Exec(ctx, query, s.testOwnerID, "cvowner@example.com", "CV Owner", "hashedpassword")
	if err != nil {
		s.T().Fatalf("Failed to seed owner: %s", err)
	}
}

func (s *CVRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestCVRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(CVRepoIntegrationTestSuite))
}

func (s *CVRepoIntegrationTestSuite) Test_Save_And_FindByID_WithSelections() {
	ctx := context.Background()

	projectIDs := []uuid.UUID{uuid.New(), uuid.New()}
	articleIDs := []uuid.UUID{uuid.New()}
	newCV := &cv.CV{
		ID:           uuid.New(),
		OwnerID:      s.testOwnerID,
		Name:         "CV Internacional",
		Language:     i18n.LanguageEN,
		Template:     "clean",
		IncludePhoto: true,
		ProjectIDs:   projectIDs,
		ArticleIDs:   articleIDs,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	s.NoError(s.cvRepo.Save(ctx, newCV))

	found, err := s.cvRepo.FindByID(ctx, newCV.ID, s.testOwnerID)
	s.NoError(err)
	s.Equal("CV Internacional", found.Name)
	s.Equal(i18n.LanguageEN, found.Language)
	s.True(found.IncludePhoto)
	s.Equal(projectIDs, found.ProjectIDs)
	s.Equal(articleIDs, found.ArticleIDs)
	s.Empty(found.ExperienceIDs)
}

func (s *CVRepoIntegrationTestSuite) Test_Update_ReplacesSelections() {
	ctx := context.Background()

	original := &cv.CV{
		ID:         uuid.New(),
		OwnerID:    s.testOwnerID,
		Name:       "CV PT",
		Language:   i18n.LanguagePT,
		Template:   "clean",
		ProjectIDs: []uuid.UUID{uuid.New()},
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	s.NoError(s.cvRepo.Save(ctx, original))

	replacement := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	original.Name = "CV PT v2"
	original.ProjectIDs = replacement
	s.NoError(s.cvRepo.Update(ctx, original))

	found, err := s.cvRepo.FindByID(ctx, original.ID, s.testOwnerID)
	s.NoError(err)
	s.Equal("CV PT v2", found.Name)
	s.Equal(replacement, found.ProjectIDs)
}

func (s *CVRepoIntegrationTestSuite) Test_Delete_OwnerScoped() {
	ctx := context.Background()

	c := &cv.CV{
		ID:        uuid.New(),
		OwnerID:   s.testOwnerID,
		Name:      "Descartável",
		Language:  i18n.LanguagePT,
		Template:  "clean",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	s.NoError(s.cvRepo.Save(ctx, c))

	err := s.cvRepo.Delete(ctx, c.ID, uuid.New())
	s.ErrorIs(err, apperror.ErrNotFound)

	s.NoError(s.cvRepo.Delete(ctx, c.ID, s.testOwnerID))
}

func (s *CVRepoIntegrationTestSuite) Test_Subscription_DefaultRow() {
	ctx := context.Background()

	// No subscriptions row exists for a fresh owner: the repo hands back
	// an implicit basic/active subscription instead of an error.
	sub, err := s.subsRepo.GetByOwner(ctx, s.testOwnerID)
	s.NoError(err)
	s.NotNil(sub)
	s.Equal(plan.TierBasic, sub.Tier)
	s.Equal(subscription.StatusActive, sub.Status)

	upgraded := &subscription.Subscription{
		OwnerID:   s.testOwnerID,
		Tier:      plan.TierPro,
		Status:    subscription.StatusActive,
		UpdatedAt: time.Now().UTC(),
	}
	s.NoError(s.subsRepo.Upsert(ctx, upgraded))

	sub, err = s.subsRepo.GetByOwner(ctx, s.testOwnerID)
	s.NoError(err)
	s.Equal(plan.TierPro, sub.Tier)
}
