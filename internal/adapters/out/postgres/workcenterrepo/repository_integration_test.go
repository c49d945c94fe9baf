package workcenterrepo_test

import (
	"context"
	"testing"
	"time"

	"production/internal/adapters/out/postgres/workcenterrepo"
	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/workcenter"
	"production/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// WorkcenterRepositoryIntegrationTestSuite provides integration tests for
// the workcenter repository using PostgreSQL containers.
type WorkcenterRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *workcenterrepo.GormWorkcenterRepository
	tracker    *MockAggregateTracker
}

func (suite *WorkcenterRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&workcenterrepo.WorkcenterDTO{}))
}

func (suite *WorkcenterRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE workcenters").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = workcenterrepo.NewGormWorkcenterRepository(suite.db, suite.tracker)
}

func (suite *WorkcenterRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *WorkcenterRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()

	testWorkcenter, err := workcenter.NewWorkcenter(kernel.NewUUID(), "Extruder 1", kernel.Extrusion, 4)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", testWorkcenter.ID(), testWorkcenter).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testWorkcenter))

	retrieved, err := suite.repository.Get(ctx, testWorkcenter.ID())
	suite.Require().NoError(err)
	suite.Equal("Extruder 1", retrieved.Name())
	suite.Equal(kernel.Extrusion, retrieved.Phase())
	suite.Equal(4, retrieved.Capacity())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *WorkcenterRepositoryIntegrationTestSuite) TestGet_NonExistentWorkcenter_ReturnsNotFoundError() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestWorkcenterRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(WorkcenterRepositoryIntegrationTestSuite))
}
