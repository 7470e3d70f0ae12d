// Package postgres provides the GORM-based Unit of Work and the quota
// checker. The unit of work wraps one database transaction and hands out
// repositories bound to it, so a command touching several aggregates either
// commits all of its writes or none of them.
package postgres

import (
	"context"

	"opsboard/internal/adapters/out/postgres/orderrepo"
	"opsboard/internal/adapters/out/postgres/orgrepo"
	"opsboard/internal/adapters/out/postgres/pickuprepo"
	"opsboard/internal/adapters/out/postgres/returnrepo"
	"opsboard/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one database
// connection. Each command gets a fresh instance, keeping transaction state
// isolated between concurrent requests.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based units of work.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with no transaction open yet.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction across the order,
// pickup, return and organization repositories. Repositories requested
// before Begin run against the bare connection; after Begin they run inside
// the transaction.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a new transaction. Calling Begin twice is a no-op; the
// first transaction stays active.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	return uow.tx.Error
}

// Commit finalizes the current transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the current transaction. Handlers defer Rollback
// unconditionally; after a successful Commit it reports
// gorm.ErrInvalidTransaction, which callers ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns an order repository bound to the current
// transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

// PickupRepository returns a pickup repository bound to the current
// transaction.
func (uow *GormUnitOfWork) PickupRepository() ports.PickupRepository {
	return pickuprepo.NewGormPickupRepository(uow.conn())
}

// ReturnRepository returns a return repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ReturnRepository() ports.ReturnRepository {
	return returnrepo.NewGormReturnRepository(uow.conn())
}

// OrganizationRepository returns an organization repository bound to the
// current transaction.
func (uow *GormUnitOfWork) OrganizationRepository() ports.OrganizationRepository {
	return orgrepo.NewGormOrganizationRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
