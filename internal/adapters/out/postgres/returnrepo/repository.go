package returnrepo

import (
	"context"
	"errors"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/returns"
	"opsboard/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormReturnRepository implements ports.ReturnRepository using GORM.
type GormReturnRepository struct {
	db *gorm.DB
}

// NewGormReturnRepository creates a new GORM return repository.
func NewGormReturnRepository(db *gorm.DB) *GormReturnRepository {
	return &GormReturnRepository{db: db}
}

// Add saves a new return to the database.
func (r *GormReturnRepository) Add(ctx context.Context, aggregate *returns.Return) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing return under optimistic concurrency control.
func (r *GormReturnRepository) Update(ctx context.Context, aggregate *returns.Return) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&ReturnDTO{}).
		Where("id = ? AND organization_id = ? AND version = ?",
			dto.ID, dto.OrganizationID, aggregate.Version()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.classifyMissedWrite(ctx, dto.OrganizationID, dto.ID)
	}
	return nil
}

// Get retrieves a return by ID within the organization.
func (r *GormReturnRepository) Get(ctx context.Context, organizationID, id kernel.UUID) (*returns.Return, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReturnDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND organization_id = ?", id.Bytes(), organizationID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("returnId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every return in the organization.
func (r *GormReturnRepository) GetAll(ctx context.Context, organizationID kernel.UUID) ([]*returns.Return, error) {
	var dtos []ReturnDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "organization_id = ?", organizationID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetActiveByOrder retrieves the non-archived returns referencing the given
// order.
func (r *GormReturnRepository) GetActiveByOrder(
	ctx context.Context, organizationID, orderID kernel.UUID,
) ([]*returns.Return, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ReturnDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "organization_id = ? AND status <> ? AND ? = ANY(order_ids)",
			organizationID.Bytes(), returns.StatusArchived.String(), orderID.String()).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// Delete removes a return from storage.
func (r *GormReturnRepository) Delete(ctx context.Context, organizationID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id.Bytes(), organizationID.Bytes()).
		Delete(&ReturnDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("returnId", id.String())
	}
	return nil
}

func (r *GormReturnRepository) toDomainAll(dtos []ReturnDTO) ([]*returns.Return, error) {
	runs := make([]*returns.Return, 0, len(dtos))
	for _, dto := range dtos {
		ret, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		runs = append(runs, ret)
	}
	return runs, nil
}

func (r *GormReturnRepository) classifyMissedWrite(
	ctx context.Context, organizationID, id uuid.UUID,
) error {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ReturnDTO{}).
		Where("id = ? AND organization_id = ?", id, organizationID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("returnId", id)
	}
	return errs.NewVersionConflictError("returnId", id)
}
