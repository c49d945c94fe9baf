package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"production/internal/adapters/out/postgres/orderrepo"
	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/core/ports"
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

// ProductionOrderRepositoryIntegrationTestSuite provides integration tests
// for the order repository using PostgreSQL containers.
type ProductionOrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormProductionOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *ProductionOrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	// TranslateError turns the unique-index violation into gorm.ErrDuplicatedKey.
	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.ProductionOrderDTO{}))
}

func (suite *ProductionOrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE production_orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormProductionOrderRepository(suite.db, suite.tracker)
}

func (suite *ProductionOrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductionOrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("PO-1000")

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductionOrderRepositoryIntegrationTestSuite) TestAdd_DuplicateOrderNumber_ReturnsConflict() {
	ctx := context.Background()
	first := suite.createTestOrder("PO-1000")
	second := suite.createTestOrder("PO-1000")

	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, second)
	suite.Require().ErrorIs(err, ports.ErrOrderNumberAlreadyExists)
	suite.assertOrderCount(1)
}

func (suite *ProductionOrderRepositoryIntegrationTestSuite) TestGet_RoundTripsLocationAndBindings() {
	ctx := context.Background()

	workcenterID := kernel.NewUUID()
	panID := kernel.NewUUID()
	location, err := kernel.NewPhaseLocation(kernel.Charging)
	suite.Require().NoError(err)

	testOrder, err := order.RestoreProductionOrder(
		kernel.NewUUID(), "PO-2000", 250.5, order.Active, location,
		&workcenterID, &panID, time.Now().UTC(), time.Now().UTC(),
	)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal("PO-2000", retrieved.OrderNumber())
	suite.InDelta(250.5, retrieved.Quantity(), 0.0001)
	suite.Equal(order.Active, retrieved.Status())

	phase, ok := retrieved.Location().Phase()
	suite.Require().True(ok)
	suite.Equal(kernel.Charging, phase)

	suite.Require().NotNil(retrieved.Workcenter())
	suite.True(retrieved.Workcenter().IsEqual(workcenterID))
	suite.Require().NotNil(retrieved.Pan())
	suite.True(retrieved.Pan().IsEqual(panID))
}

func (suite *ProductionOrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductionOrderRepositoryIntegrationTestSuite) TestGetByOrderNumber() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("PO-3000")

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.GetByOrderNumber(ctx, "PO-3000")
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testOrder.ID()))

	_, err = suite.repository.GetByOrderNumber(ctx, "PO-missing")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// A relocation into a buffer must persist the cleared bindings as NULLs,
// not silently keep the previous values.
func (suite *ProductionOrderRepositoryIntegrationTestSuite) TestUpdate_ClearsBindingsOnBufferEntry() {
	ctx := context.Background()

	workcenterID := kernel.NewUUID()
	panID := kernel.NewUUID()
	location, err := kernel.NewPhaseLocation(kernel.Charging)
	suite.Require().NoError(err)

	testOrder, err := order.RestoreProductionOrder(
		kernel.NewUUID(), "PO-4000", 100, order.Active, location,
		&workcenterID, &panID, time.Now().UTC(), time.Now().UTC(),
	)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	bufferLocation, err := kernel.NewBufferLocation(kernel.ChargingMixingBuffer)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.Relocate(bufferLocation, nil, nil))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.Location().IsBuffer())
	suite.Nil(retrieved.Workcenter())
	suite.Nil(retrieved.Pan())
}

func (suite *ProductionOrderRepositoryIntegrationTestSuite) TestUpdate_StatusTransition() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("PO-5000")

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Complete())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Completed, retrieved.Status())
}

func (suite *ProductionOrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("PO-6000")

	err := suite.repository.Update(ctx, testOrder)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *ProductionOrderRepositoryIntegrationTestSuite) createTestOrder(orderNumber string) *order.ProductionOrder {
	testOrder, err := order.NewProductionOrder(kernel.NewUUID(), orderNumber, 100)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *ProductionOrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.ProductionOrderDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestProductionOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductionOrderRepositoryIntegrationTestSuite))
}
