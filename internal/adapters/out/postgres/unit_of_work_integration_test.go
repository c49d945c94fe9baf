package postgres_test

import (
	"context"
	"testing"
	"time"

	"production/internal/adapters/out/postgres"
	"production/internal/adapters/out/postgres/orderrepo"
	"production/internal/adapters/out/postgres/panrepo"
	"production/internal/adapters/out/postgres/workcenterrepo"
	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/core/domain/model/pan"
	"production/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics across the
// order and pan repositories: the pan pool and the order location always
// change together or not at all.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
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

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE production_orders, pans, workcenters").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	// Begin on an open transaction is a no-op.
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	// The transaction is closed; both commit and rollback must fail now.
	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsOrderAndPanTogether() {
	ctx := context.Background()

	testPan, err := pan.NewPan(kernel.NewUUID(), "Pan A")
	suite.Require().NoError(err)
	testOrder, err := order.NewProductionOrder(kernel.NewUUID(), "PO-uow-1", 100)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.PanRepository().Add(ctx, testPan))
	suite.Require().NoError(uow.ProductionOrderRepository().Add(ctx, testOrder))

	// Simulate a move into charging: claim the pan, relocate the order.
	workcenterID := kernel.NewUUID()
	location, err := kernel.NewPhaseLocation(kernel.Charging)
	suite.Require().NoError(err)
	panID := testPan.ID()

	suite.Require().NoError(testPan.Claim())
	suite.Require().NoError(uow.PanRepository().Claim(ctx, testPan))
	suite.Require().NoError(testOrder.Relocate(location, &workcenterID, &panID))
	suite.Require().NoError(uow.ProductionOrderRepository().Update(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	retrievedOrder, err := verify.ProductionOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrievedOrder.Location().IsPhase())
	suite.Require().NotNil(retrievedOrder.Pan())
	suite.True(retrievedOrder.Pan().IsEqual(panID))

	retrievedPan, err := verify.PanRepository().Get(ctx, panID)
	suite.Require().NoError(err)
	suite.False(retrievedPan.IsAvailable())
}

// Two transactions racing to claim the same pan must produce exactly one
// winner. The loser blocks on the winner's row lock, re-evaluates the
// availability condition once the winner commits, and matches nothing.
func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentPanClaim_OnlyOneWins() {
	ctx := context.Background()

	sharedPan, err := pan.NewPan(kernel.NewUUID(), "Pan A")
	suite.Require().NoError(err)
	seed := suite.factory.Create()
	suite.Require().NoError(seed.PanRepository().Add(ctx, sharedPan))

	uowA := suite.factory.Create()
	uowB := suite.factory.Create()
	suite.Require().NoError(uowA.Begin(ctx))
	suite.Require().NoError(uowB.Begin(ctx))

	// Both transactions load the pan while it still looks available.
	panA, err := uowA.PanRepository().Get(ctx, sharedPan.ID())
	suite.Require().NoError(err)
	panB, err := uowB.PanRepository().Get(ctx, sharedPan.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(panA.Claim())
	suite.Require().NoError(panB.Claim())

	suite.Require().NoError(uowA.PanRepository().Claim(ctx, panA))

	claimed := make(chan error, 1)
	go func() {
		claimed <- uowB.PanRepository().Claim(ctx, panB)
	}()

	suite.Require().NoError(uowA.Commit(ctx))
	suite.Require().ErrorIs(<-claimed, errs.ErrObjectNotFound)
	suite.Require().NoError(uowB.Rollback(ctx))

	verify := suite.factory.Create()
	retrieved, err := verify.PanRepository().Get(ctx, sharedPan.ID())
	suite.Require().NoError(err)
	suite.False(retrieved.IsAvailable())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllChanges() {
	ctx := context.Background()

	testPan, err := pan.NewPan(kernel.NewUUID(), "Pan A")
	suite.Require().NoError(err)
	testOrder, err := order.NewProductionOrder(kernel.NewUUID(), "PO-uow-2", 100)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.PanRepository().Add(ctx, testPan))
	suite.Require().NoError(uow.ProductionOrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()
	_, err = verify.ProductionOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = verify.PanRepository().Get(ctx, testPan.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// Without an explicit transaction, repositories fall back to the main
// connection and operations take effect immediately.
func (suite *UnitOfWorkIntegrationTestSuite) TestWithoutTransaction_ImmediateExecution() {
	ctx := context.Background()

	testOrder, err := order.NewProductionOrder(kernel.NewUUID(), "PO-uow-3", 100)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.ProductionOrderRepository().Add(ctx, testOrder))

	verify := suite.factory.Create()
	retrieved, err := verify.ProductionOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testOrder.ID()))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
