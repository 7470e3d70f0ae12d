package cmd

import (
	"log/slog"
	"time"

	httpin "opsboard/internal/adapters/in/http"
	"opsboard/internal/adapters/out/postgres"
	"opsboard/internal/adapters/out/postgres/rosterrepo"
	"opsboard/internal/core/application/usecases/commands"
	"opsboard/internal/core/application/usecases/queries"
	"opsboard/internal/core/ports"
	"opsboard/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	quota      ports.QuotaChecker
	publisher  ports.EventPublisher
}

// NewCompositionRoot creates the dependency graph for the application.
func NewCompositionRoot(_ Config, gormDB *gorm.DB, publisher ports.EventPublisher) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		quota:      postgres.NewGormQuotaChecker(gormDB),
		publisher:  publisher,
	}
}

// CreateHTTPHandlers assembles every command and query handler the HTTP
// server routes to.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder: c.CreateCreateOrderCommandHandler(),
		UpdateOrder: c.CreateUpdateOrderCommandHandler(),
		DeleteOrder: c.CreateDeleteOrderCommandHandler(),

		CreatePickup:     c.CreateCreatePickupCommandHandler(),
		EditPickup:       c.CreateEditPickupCommandHandler(),
		TransitionPickup: c.CreateTransitionPickupCommandHandler(),
		DeletePickup:     c.CreateDeletePickupCommandHandler(),

		CreateReturn:     c.CreateCreateReturnCommandHandler(),
		UpdateReturn:     c.CreateUpdateReturnCommandHandler(),
		TransitionReturn: c.CreateTransitionReturnCommandHandler(),
		DeleteReturn:     c.CreateDeleteReturnCommandHandler(),

		CreateDriver:   c.CreateCreateDriverCommandHandler(),
		CreateDesigner: c.CreateCreateDesignerCommandHandler(),
		CreateSource:   c.CreateCreateSourceCommandHandler(),

		GetOrders:         c.CreateGetOrdersQueryHandler(),
		GetPickups:        c.CreateGetPickupsQueryHandler(),
		GetReturns:        c.CreateGetReturnsQueryHandler(),
		GetRoster:         c.CreateGetRosterQueryHandler(),
		GetPickupManifest: c.CreateGetPickupManifestQueryHandler(),
		GetUsageMetrics:   c.CreateGetUsageMetricsQueryHandler(),
	}
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager(retention time.Duration, logger *slog.Logger) *jobs.JobManager {
	archiveHandler := commands.NewArchivePickupsCommandHandler(c.pickupUoWFactory(), c.publisher)
	return jobs.NewJobManager(archiveHandler, retention, logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.quota, c.publisher)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.crossUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCreatePickupCommandHandler() commands.CreatePickupCommandHandler {
	return commands.NewCreatePickupCommandHandler(c.pickupUoWFactory(), c.quota, c.publisher)
}

func (c *CompositionRoot) CreateEditPickupCommandHandler() commands.EditPickupCommandHandler {
	return commands.NewEditPickupCommandHandler(c.pickupUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateTransitionPickupCommandHandler() commands.TransitionPickupCommandHandler {
	return commands.NewTransitionPickupCommandHandler(c.pickupUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateDeletePickupCommandHandler() commands.DeletePickupCommandHandler {
	return commands.NewDeletePickupCommandHandler(c.pickupUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCreateReturnCommandHandler() commands.CreateReturnCommandHandler {
	return commands.NewCreateReturnCommandHandler(c.returnUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateUpdateReturnCommandHandler() commands.UpdateReturnCommandHandler {
	return commands.NewUpdateReturnCommandHandler(c.returnUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateTransitionReturnCommandHandler() commands.TransitionReturnCommandHandler {
	return commands.NewTransitionReturnCommandHandler(c.returnUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateDeleteReturnCommandHandler() commands.DeleteReturnCommandHandler {
	return commands.NewDeleteReturnCommandHandler(c.returnUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	return commands.NewCreateDriverCommandHandler(rosterrepo.NewGormDriverRepository(c.gormDB))
}

func (c *CompositionRoot) CreateCreateDesignerCommandHandler() commands.CreateDesignerCommandHandler {
	return commands.NewCreateDesignerCommandHandler(rosterrepo.NewGormDesignerRepository(c.gormDB))
}

func (c *CompositionRoot) CreateCreateSourceCommandHandler() commands.CreateSourceCommandHandler {
	return commands.NewCreateSourceCommandHandler(rosterrepo.NewGormSourceRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPickupsQueryHandler() queries.GetPickupsQueryHandler {
	return queries.NewGetPickupsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReturnsQueryHandler() queries.GetReturnsQueryHandler {
	return queries.NewGetReturnsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRosterQueryHandler() queries.GetRosterQueryHandler {
	return queries.NewGetRosterQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPickupManifestQueryHandler() queries.GetPickupManifestQueryHandler {
	return queries.NewGetPickupManifestQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUsageMetricsQueryHandler() queries.GetUsageMetricsQueryHandler {
	return queries.NewGetUsageMetricsQueryHandler(c.gormDB)
}

// The command package narrows ports.UnitOfWork to per-use-case interfaces.
// Go interface methods do not covary on return type, so each narrowing gets
// a small func adapter.

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) pickupUoWFactory() commands.PickupUoWFactory {
	return FuncPickupUoWFactory(func() commands.PickupUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) returnUoWFactory() commands.ReturnUoWFactory {
	return FuncReturnUoWFactory(func() commands.ReturnUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) crossUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPickupUoWFactory func() commands.PickupUoW

func (f FuncPickupUoWFactory) Create() commands.PickupUoW {
	return f()
}

type FuncReturnUoWFactory func() commands.ReturnUoW

func (f FuncReturnUoWFactory) Create() commands.ReturnUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
