package queries_test

import (
	"context"
	"testing"
	"time"

	"production/internal/adapters/out/postgres/panrepo"
	"production/internal/adapters/out/postgres/workcenterrepo"
	"production/internal/core/application/usecases/queries"
	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/pan"
	"production/internal/core/domain/model/workcenter"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ResourceQueriesTestSuite exercises the pan and workcenter read models
// against a real PostgreSQL instance.
type ResourceQueriesTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
}

func (suite *ResourceQueriesTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(
		&panrepo.PanDTO{},
		&workcenterrepo.WorkcenterDTO{},
	))
}

func (suite *ResourceQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ResourceQueriesTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE pans, workcenters").Error)

	tracker := noopTracker{}
	panRepo := panrepo.NewGormPanRepository(suite.db, tracker)
	workcenterRepo := workcenterrepo.NewGormWorkcenterRepository(suite.db, tracker)

	freePan, err := pan.NewPan(kernel.NewUUID(), "Pan B")
	suite.Require().NoError(err)
	suite.Require().NoError(panRepo.Add(ctx, freePan))

	claimedPan, err := pan.RestorePan(kernel.NewUUID(), "Pan A", false, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(panRepo.Add(ctx, claimedPan))

	mixer, err := workcenter.NewWorkcenter(kernel.NewUUID(), "Mixer 1", kernel.Mixing, 3)
	suite.Require().NoError(err)
	suite.Require().NoError(workcenterRepo.Add(ctx, mixer))

	extruder, err := workcenter.NewWorkcenter(kernel.NewUUID(), "Extruder 1", kernel.Extrusion, 1)
	suite.Require().NoError(err)
	suite.Require().NoError(workcenterRepo.Add(ctx, extruder))
}

func (suite *ResourceQueriesTestSuite) TestGetPans_ReturnsAllOrderedByName() {
	handler := queries.NewGetPansQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.NewGetPansQuery())
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("Pan A", result[0].Name)
	suite.False(result[0].IsAvailable)
	suite.Equal("Pan B", result[1].Name)
	suite.True(result[1].IsAvailable)
}

func (suite *ResourceQueriesTestSuite) TestGetPans_OnlyAvailable() {
	handler := queries.NewGetPansQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.NewGetAvailablePansQuery())
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Pan B", result[0].Name)
	suite.True(result[0].IsAvailable)
}

func (suite *ResourceQueriesTestSuite) TestGetWorkcenters_ReturnsAll() {
	handler := queries.NewGetWorkcentersQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.NewGetWorkcentersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
}

func (suite *ResourceQueriesTestSuite) TestGetWorkcenters_FilteredByPhase() {
	handler := queries.NewGetWorkcentersQueryHandler(suite.db)

	query, err := queries.NewGetWorkcentersByPhaseQuery(kernel.Mixing)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Mixer 1", result[0].Name)
	suite.Equal("mixing", result[0].Phase)
	suite.Equal(3, result[0].Capacity)

	empty, err := queries.NewGetWorkcentersByPhaseQuery(kernel.Charging)
	suite.Require().NoError(err)
	result, err = handler.Handle(context.Background(), empty)
	suite.Require().NoError(err)
	suite.Empty(result)
}

func TestResourceQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(ResourceQueriesTestSuite))
}
