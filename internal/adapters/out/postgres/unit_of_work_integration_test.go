package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "traveldesk/internal/adapters/out/postgres"
	"traveldesk/internal/adapters/out/postgres/notificationrepo"
	"traveldesk/internal/adapters/out/postgres/travelorderrepo"
	"traveldesk/internal/adapters/out/postgres/userrepo"
	"traveldesk/internal/core/domain/model/kernel"
	"traveldesk/internal/core/domain/model/notification"
	"traveldesk/internal/core/domain/model/travelorder"
	"traveldesk/internal/core/domain/model/user"
	"traveldesk/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&travelorderrepo.TravelOrderDTO{},
		&userrepo.UserDTO{},
		&notificationrepo.NotificationDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE travel_orders, users, notifications").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.TravelOrderRepository())
	suite.NotNil(uow1.UserRepository())
	suite.NotNil(uow1.NotificationRepository())
	suite.NotNil(uow2.TravelOrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitWithoutBegin_Fails() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.TravelOrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	retrieved, err := suite.factory.Create().TravelOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testOrder.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.TravelOrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().TravelOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_StatusChangeAndOutboxRowCommitTogether() {
	ctx := context.Background()

	requesterID := kernel.NewUUID()
	owner, err := user.NewUser(requesterID, "Alice Martins", "alice@example.com", false)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().UserRepository().Add(ctx, owner))

	testOrder := suite.createTestOrderOwnedBy(requesterID)
	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	suite.Require().NoError(setup.TravelOrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(setup.Commit(ctx))

	// Approve and append the outbox row in a single transaction.
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	locked, err := uow.TravelOrderRepository().GetForUpdate(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(locked.TransitionTo(travelorder.Approved))
	suite.Require().NoError(uow.TravelOrderRepository().Update(ctx, locked))

	recipient, err := uow.UserRepository().Get(ctx, locked.RequesterID())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.NotificationRepository().Add(ctx, notification.NewStatusChanged(locked, recipient)))

	suite.Require().NoError(uow.Commit(ctx))

	// Both the status change and the outbox row are visible.
	verify := suite.factory.Create()
	updated, err := verify.TravelOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(travelorder.Approved, updated.Status())

	pending, err := verify.NotificationRepository().GetUnsent(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.True(pending[0].TravelOrderID.IsEqual(testOrder.ID()))
	suite.Equal("alice@example.com", pending[0].RecipientEmail)
	suite.Equal(travelorder.Approved, pending[0].Status)
	suite.Nil(pending[0].SentAt)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsOutboxRow() {
	ctx := context.Background()

	requesterID := kernel.NewUUID()
	owner, err := user.NewUser(requesterID, "Alice Martins", "alice@example.com", false)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().UserRepository().Add(ctx, owner))

	testOrder := suite.createTestOrderOwnedBy(requesterID)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.TravelOrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.NotificationRepository().Add(ctx, notification.NewStatusChanged(testOrder, owner)))
	suite.Require().NoError(uow.Rollback(ctx))

	pending, err := suite.factory.Create().NotificationRepository().GetUnsent(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(pending)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestNotificationOutbox_MarkSent() {
	ctx := context.Background()

	requesterID := kernel.NewUUID()
	owner, err := user.NewUser(requesterID, "Alice Martins", "alice@example.com", false)
	suite.Require().NoError(err)

	testOrder := suite.createTestOrderOwnedBy(requesterID)
	repo := suite.factory.Create().NotificationRepository()

	n := notification.NewStatusChanged(testOrder, owner)
	suite.Require().NoError(repo.Add(ctx, n))

	pending, err := repo.GetUnsent(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)

	suite.Require().NoError(repo.MarkSent(ctx, n.ID))

	pending, err = repo.GetUnsent(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(pending)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestNotificationOutbox_GetUnsentOrdersOldestFirst() {
	ctx := context.Background()

	requesterID := kernel.NewUUID()
	owner, err := user.NewUser(requesterID, "Alice Martins", "alice@example.com", false)
	suite.Require().NoError(err)

	repo := suite.factory.Create().NotificationRepository()

	older := notification.NewStatusChanged(suite.createTestOrderOwnedBy(requesterID), owner)
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	newer := notification.NewStatusChanged(suite.createTestOrderOwnedBy(requesterID), owner)

	suite.Require().NoError(repo.Add(ctx, newer))
	suite.Require().NoError(repo.Add(ctx, older))

	pending, err := repo.GetUnsent(ctx, 1)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.True(pending[0].ID.IsEqual(older.ID))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUserRepository_AddAndGet() {
	ctx := context.Background()

	id := kernel.NewUUID()
	admin, err := user.NewUser(id, "Root Admin", "admin@example.com", true)
	suite.Require().NoError(err)

	repo := suite.factory.Create().UserRepository()
	suite.Require().NoError(repo.Add(ctx, admin))

	retrieved, err := repo.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal("Root Admin", retrieved.Name())
	suite.Equal("admin@example.com", retrieved.Email())
	suite.True(retrieved.IsAdmin())

	_, err = repo.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
}

// createTestOrder creates a basic travel order with default values.
func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *travelorder.TravelOrder {
	return suite.createTestOrderOwnedBy(kernel.NewUUID())
}

// createTestOrderOwnedBy creates a travel order for the given requester.
func (suite *UnitOfWorkIntegrationTestSuite) createTestOrderOwnedBy(
	requesterID kernel.UUID,
) *travelorder.TravelOrder {
	testOrder, err := travelorder.NewTravelOrder(
		kernel.NewUUID(),
		requesterID,
		"Lisbon",
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)
	return testOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
