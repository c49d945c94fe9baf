package queries_test

import (
	"context"
	"testing"
	"time"

	"production/internal/adapters/out/postgres/orderrepo"
	"production/internal/adapters/out/postgres/panrepo"
	"production/internal/adapters/out/postgres/workcenterrepo"
	"production/internal/core/application/usecases/queries"
	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/core/domain/model/pan"
	"production/internal/core/domain/model/workcenter"
	"production/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repositories' aggregate tracker during seeding.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// ProductionOrderQueriesTestSuite exercises the order read models against a
// real PostgreSQL instance: list, by-id, by-phase and by-buffer, including
// the LEFT JOIN resolution of workcenter and pan details.
type ProductionOrderQueriesTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB

	chargingWorkcenter *workcenter.Workcenter
	chargingPan        *pan.Pan
	chargingOrder      *order.ProductionOrder
	bufferedOrder      *order.ProductionOrder
}

func (suite *ProductionOrderQueriesTestSuite) SetupSuite() {
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
		&orderrepo.ProductionOrderDTO{},
		&panrepo.PanDTO{},
		&workcenterrepo.WorkcenterDTO{},
	))
}

func (suite *ProductionOrderQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductionOrderQueriesTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE production_orders, pans, workcenters").Error)

	tracker := noopTracker{}
	orderRepo := orderrepo.NewGormProductionOrderRepository(suite.db, tracker)
	panRepo := panrepo.NewGormPanRepository(suite.db, tracker)
	workcenterRepo := workcenterrepo.NewGormWorkcenterRepository(suite.db, tracker)

	var err error
	suite.chargingWorkcenter, err = workcenter.NewWorkcenter(kernel.NewUUID(), "Charger 1", kernel.Charging, 2)
	suite.Require().NoError(err)
	suite.Require().NoError(workcenterRepo.Add(ctx, suite.chargingWorkcenter))

	suite.chargingPan, err = pan.RestorePan(kernel.NewUUID(), "Pan A", false, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(panRepo.Add(ctx, suite.chargingPan))

	workcenterID := suite.chargingWorkcenter.ID()
	panID := suite.chargingPan.ID()
	location, err := kernel.NewPhaseLocation(kernel.Charging)
	suite.Require().NoError(err)

	suite.chargingOrder, err = order.RestoreProductionOrder(
		kernel.NewUUID(), "PO-q-charging", 100, order.Active, location,
		&workcenterID, &panID, time.Now().UTC().Add(-time.Hour), time.Now().UTC(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(orderRepo.Add(ctx, suite.chargingOrder))

	suite.bufferedOrder, err = order.NewProductionOrder(kernel.NewUUID(), "PO-q-buffered", 50)
	suite.Require().NoError(err)
	suite.Require().NoError(orderRepo.Add(ctx, suite.bufferedOrder))
}

func (suite *ProductionOrderQueriesTestSuite) TestGetProductionOrders_ReturnsAllWithDetails() {
	handler := queries.NewGetProductionOrdersQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.NewGetProductionOrdersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	byNumber := make(map[string]queries.ProductionOrderResponse, len(result))
	for _, r := range result {
		byNumber[r.OrderNumber] = r
	}

	charging := byNumber["PO-q-charging"]
	suite.Equal("phase", charging.LocationType)
	suite.Require().NotNil(charging.Phase)
	suite.Equal("charging", *charging.Phase)
	suite.Nil(charging.Buffer)
	suite.Require().NotNil(charging.Workcenter)
	suite.Equal("Charger 1", charging.Workcenter.Name)
	suite.Equal("charging", charging.Workcenter.Phase)
	suite.Equal(2, charging.Workcenter.Capacity)
	suite.Require().NotNil(charging.Pan)
	suite.Equal("Pan A", charging.Pan.Name)
	suite.False(charging.Pan.IsAvailable)

	buffered := byNumber["PO-q-buffered"]
	suite.Equal("buffer", buffered.LocationType)
	suite.Require().NotNil(buffered.Buffer)
	suite.Equal("charging_mixing_buffer", *buffered.Buffer)
	suite.Nil(buffered.Phase)
	suite.Nil(buffered.Workcenter)
	suite.Nil(buffered.Pan)
}

func (suite *ProductionOrderQueriesTestSuite) TestGetProductionOrder_ByID() {
	handler := queries.NewGetProductionOrderQueryHandler(suite.db)

	query, err := queries.NewGetProductionOrderQuery(suite.chargingOrder.ID())
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal("PO-q-charging", result.OrderNumber)
	suite.True(result.ID.IsEqual(suite.chargingOrder.ID()))
	suite.Require().NotNil(result.Workcenter)
	suite.True(result.Workcenter.ID.IsEqual(suite.chargingWorkcenter.ID()))
}

func (suite *ProductionOrderQueriesTestSuite) TestGetProductionOrder_NotFound() {
	handler := queries.NewGetProductionOrderQueryHandler(suite.db)

	query, err := queries.NewGetProductionOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductionOrderQueriesTestSuite) TestGetProductionOrdersByPhase() {
	handler := queries.NewGetProductionOrdersByPhaseQueryHandler(suite.db)

	query, err := queries.NewGetProductionOrdersByPhaseQuery(kernel.Charging)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("PO-q-charging", result[0].OrderNumber)

	empty, err := queries.NewGetProductionOrdersByPhaseQuery(kernel.Extrusion)
	suite.Require().NoError(err)
	result, err = handler.Handle(context.Background(), empty)
	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *ProductionOrderQueriesTestSuite) TestGetProductionOrdersByBuffer() {
	handler := queries.NewGetProductionOrdersByBufferQueryHandler(suite.db)

	query, err := queries.NewGetProductionOrdersByBufferQuery(kernel.ChargingMixingBuffer)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("PO-q-buffered", result[0].OrderNumber)
	suite.Nil(result[0].Workcenter)
	suite.Nil(result[0].Pan)

	empty, err := queries.NewGetProductionOrdersByBufferQuery(kernel.MixingExtrusionBuffer)
	suite.Require().NoError(err)
	result, err = handler.Handle(context.Background(), empty)
	suite.Require().NoError(err)
	suite.Empty(result)
}

func TestProductionOrderQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(ProductionOrderQueriesTestSuite))
}
