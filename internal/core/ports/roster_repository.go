package ports

import (
	"context"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/roster"
)

// DriverRepository defines the persistence contract for roster drivers.
type DriverRepository interface {
	Add(ctx context.Context, driver *roster.Driver) error
	Get(ctx context.Context, organizationID, id kernel.UUID) (*roster.Driver, error)
	GetAll(ctx context.Context, organizationID kernel.UUID) ([]*roster.Driver, error)
}

// DesignerRepository defines the persistence contract for roster designers.
type DesignerRepository interface {
	Add(ctx context.Context, designer *roster.Designer) error
	Get(ctx context.Context, organizationID, id kernel.UUID) (*roster.Designer, error)
	GetAll(ctx context.Context, organizationID kernel.UUID) ([]*roster.Designer, error)
}

// SourceRepository defines the persistence contract for roster sources.
type SourceRepository interface {
	Add(ctx context.Context, source *roster.Source) error
	Get(ctx context.Context, organizationID, id kernel.UUID) (*roster.Source, error)
	GetAll(ctx context.Context, organizationID kernel.UUID) ([]*roster.Source, error)
}
