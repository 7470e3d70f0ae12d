package orgrepo

import (
	"context"
	"errors"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/organization"
	"opsboard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrganizationRepository implements ports.OrganizationRepository using
// GORM. Organizations are the tenancy root, so reads are not org-scoped.
type GormOrganizationRepository struct {
	db *gorm.DB
}

// NewGormOrganizationRepository creates a new GORM organization repository.
func NewGormOrganizationRepository(db *gorm.DB) *GormOrganizationRepository {
	return &GormOrganizationRepository{db: db}
}

// Add saves a new organization to the database.
func (r *GormOrganizationRepository) Add(ctx context.Context, aggregate *organization.Organization) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing organization to the database.
func (r *GormOrganizationRepository) Update(ctx context.Context, aggregate *organization.Organization) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrganizationDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("organizationId", aggregate.ID().String())
	}
	return nil
}

// Get retrieves an organization by ID.
func (r *GormOrganizationRepository) Get(ctx context.Context, id kernel.UUID) (*organization.Organization, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrganizationDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("organizationId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
