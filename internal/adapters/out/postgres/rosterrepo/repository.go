package rosterrepo

import (
	"context"
	"errors"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/roster"
	"opsboard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDriverRepository implements ports.DriverRepository using GORM.
type GormDriverRepository struct {
	db *gorm.DB
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

// Add saves a new driver to the database.
func (r *GormDriverRepository) Add(ctx context.Context, driver *roster.Driver) error {
	if err := driver.Validate(); err != nil {
		return err
	}

	dto := driverFromDomain(driver)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a driver by ID within the organization.
func (r *GormDriverRepository) Get(ctx context.Context, organizationID, id kernel.UUID) (*roster.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND organization_id = ?", id.Bytes(), organizationID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driverId", id.String())
		}
		return nil, err
	}

	return driverToDomain(dto)
}

// GetAll retrieves every driver in the organization, sorted by name.
func (r *GormDriverRepository) GetAll(ctx context.Context, organizationID kernel.UUID) ([]*roster.Driver, error) {
	var dtos []DriverDTO
	err := r.db.WithContext(ctx).
		Order("name").
		Find(&dtos, "organization_id = ?", organizationID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	drivers := make([]*roster.Driver, 0, len(dtos))
	for _, dto := range dtos {
		driver, convErr := driverToDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		drivers = append(drivers, driver)
	}
	return drivers, nil
}

// GormDesignerRepository implements ports.DesignerRepository using GORM.
type GormDesignerRepository struct {
	db *gorm.DB
}

// NewGormDesignerRepository creates a new GORM designer repository.
func NewGormDesignerRepository(db *gorm.DB) *GormDesignerRepository {
	return &GormDesignerRepository{db: db}
}

// Add saves a new designer to the database.
func (r *GormDesignerRepository) Add(ctx context.Context, designer *roster.Designer) error {
	if err := designer.Validate(); err != nil {
		return err
	}

	dto := designerFromDomain(designer)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a designer by ID within the organization.
func (r *GormDesignerRepository) Get(ctx context.Context, organizationID, id kernel.UUID) (*roster.Designer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DesignerDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND organization_id = ?", id.Bytes(), organizationID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("designerId", id.String())
		}
		return nil, err
	}

	return designerToDomain(dto)
}

// GetAll retrieves every designer in the organization, sorted by name.
func (r *GormDesignerRepository) GetAll(ctx context.Context, organizationID kernel.UUID) ([]*roster.Designer, error) {
	var dtos []DesignerDTO
	err := r.db.WithContext(ctx).
		Order("name").
		Find(&dtos, "organization_id = ?", organizationID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	designers := make([]*roster.Designer, 0, len(dtos))
	for _, dto := range dtos {
		designer, convErr := designerToDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		designers = append(designers, designer)
	}
	return designers, nil
}

// GormSourceRepository implements ports.SourceRepository using GORM.
type GormSourceRepository struct {
	db *gorm.DB
}

// NewGormSourceRepository creates a new GORM source repository.
func NewGormSourceRepository(db *gorm.DB) *GormSourceRepository {
	return &GormSourceRepository{db: db}
}

// Add saves a new source to the database.
func (r *GormSourceRepository) Add(ctx context.Context, source *roster.Source) error {
	if err := source.Validate(); err != nil {
		return err
	}

	dto := sourceFromDomain(source)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a source by ID within the organization.
func (r *GormSourceRepository) Get(ctx context.Context, organizationID, id kernel.UUID) (*roster.Source, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SourceDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND organization_id = ?", id.Bytes(), organizationID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sourceId", id.String())
		}
		return nil, err
	}

	return sourceToDomain(dto)
}

// GetAll retrieves every source in the organization, sorted by name.
func (r *GormSourceRepository) GetAll(ctx context.Context, organizationID kernel.UUID) ([]*roster.Source, error) {
	var dtos []SourceDTO
	err := r.db.WithContext(ctx).
		Order("name").
		Find(&dtos, "organization_id = ?", organizationID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	sources := make([]*roster.Source, 0, len(dtos))
	for _, dto := range dtos {
		source, convErr := sourceToDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		sources = append(sources, source)
	}
	return sources, nil
}
