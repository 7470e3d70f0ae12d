package postgres_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "opsboard/internal/adapters/out/postgres"
	"opsboard/internal/adapters/out/postgres/orderrepo"
	"opsboard/internal/adapters/out/postgres/orgrepo"
	"opsboard/internal/adapters/out/postgres/pickuprepo"
	"opsboard/internal/adapters/out/postgres/returnrepo"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/order"
	"opsboard/internal/core/domain/model/organization"
	"opsboard/internal/core/domain/model/pickup"
	"opsboard/internal/core/ports"
	"opsboard/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics of the
// GORM unit of work against a real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
	orgID     kernel.UUID
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&pickuprepo.PickupDTO{},
		&returnrepo.ReturnDTO{},
		&orgrepo.OrganizationDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, pickups, returns, organizations").Error
	suite.Require().NoError(err)
	suite.orgID = kernel.NewUUID()
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesIsolatedInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.PickupRepository())
	suite.NotNil(uow1.ReturnRepository())
	suite.NotNil(uow1.OrganizationRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	run, err := pickup.NewPickup(
		kernel.NewUUID(), suite.orgID, "Thursday Run", kernel.NewUUID(),
		time.Date(2024, 3, 7, 8, 0, 0, 0, time.UTC),
		[]kernel.UUID{testOrder.ID()}, kernel.PriorityStandard, pickup.StatusUnknown,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.AssignToPickup(run.ID()))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.PickupRepository().Add(ctx, run))
	suite.Require().NoError(uow.Commit(ctx))

	loadedOrder, err := suite.factory.Create().OrderRepository().Get(ctx, suite.orgID, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(loadedOrder.IsClaimedBy(run.ID()))

	loadedRun, err := suite.factory.Create().PickupRepository().Get(ctx, suite.orgID, run.ID())
	suite.Require().NoError(err)
	suite.True(loadedRun.HasOrder(testOrder.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllWrites() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, suite.orgID, testOrder.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackAfterCommit_ReportsInvalidTransaction() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	err := uow.Rollback(ctx)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestQuotaChecker_FreePlanPickupCeiling() {
	ctx := context.Background()

	org, err := organization.NewOrganization(suite.orgID, "Hartwell Interiors", "hartwell")
	suite.Require().NoError(err)
	suite.Require().NoError(
		orgrepo.NewGormOrganizationRepository(suite.db).Add(ctx, org),
	)

	pickupRepo := pickuprepo.NewGormPickupRepository(suite.db)
	for i := 0; i < 20; i++ {
		run, runErr := pickup.NewPickup(
			kernel.NewUUID(), suite.orgID, "Run", kernel.NewUUID(),
			time.Date(2024, 3, 7, 8, 0, 0, 0, time.UTC),
			[]kernel.UUID{kernel.NewUUID()}, kernel.PriorityStandard, pickup.StatusUnknown,
		)
		suite.Require().NoError(runErr)
		suite.Require().NoError(pickupRepo.Add(ctx, run))
	}

	checker := postgresadapter.NewGormQuotaChecker(suite.db)
	decision, err := checker.CheckUsage(ctx, suite.orgID, ports.QuotaActionCreatePickup)
	suite.Require().NoError(err)
	suite.False(decision.Allowed)
	suite.Contains(decision.Reason, "pickup limit reached")

	// Archiving a run frees quota.
	runs, err := pickupRepo.GetAll(ctx, suite.orgID)
	suite.Require().NoError(err)
	suite.Require().NotEmpty(runs)
	suite.Require().NoError(runs[0].Cancel())
	suite.Require().NoError(runs[0].Archive())
	suite.Require().NoError(pickupRepo.Update(ctx, runs[0]))

	decision, err = checker.CheckUsage(ctx, suite.orgID, ports.QuotaActionCreatePickup)
	suite.Require().NoError(err)
	suite.True(decision.Allowed)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestQuotaChecker_OrderQuotaAllowsUnderLimit() {
	ctx := context.Background()

	org, err := organization.NewOrganization(suite.orgID, "Hartwell Interiors", "hartwell")
	suite.Require().NoError(err)
	suite.Require().NoError(
		orgrepo.NewGormOrganizationRepository(suite.db).Add(ctx, org),
	)

	checker := postgresadapter.NewGormQuotaChecker(suite.db)
	decision, err := checker.CheckUsage(ctx, suite.orgID, ports.QuotaActionCreateOrder)
	suite.Require().NoError(err)
	suite.True(decision.Allowed)
	suite.Empty(decision.Reason)
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), suite.orgID, order.Details{
		JobName:    "Lobby Sofa",
		JobNumber:  "J-1042",
		DesignerID: kernel.NewUUID(),
		SourceID:   kernel.NewUUID(),
	}, kernel.PriorityStandard)
	suite.Require().NoError(err)
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
