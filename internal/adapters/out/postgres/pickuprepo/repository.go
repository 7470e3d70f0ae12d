package pickuprepo

import (
	"context"
	"errors"
	"time"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/pickup"
	"opsboard/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPickupRepository implements ports.PickupRepository using GORM.
type GormPickupRepository struct {
	db *gorm.DB
}

// NewGormPickupRepository creates a new GORM pickup repository.
func NewGormPickupRepository(db *gorm.DB) *GormPickupRepository {
	return &GormPickupRepository{db: db}
}

// Add saves a new pickup to the database.
func (r *GormPickupRepository) Add(ctx context.Context, aggregate *pickup.Pickup) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing pickup under optimistic concurrency control.
func (r *GormPickupRepository) Update(ctx context.Context, aggregate *pickup.Pickup) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&PickupDTO{}).
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

// Get retrieves a pickup by ID within the organization.
func (r *GormPickupRepository) Get(ctx context.Context, organizationID, id kernel.UUID) (*pickup.Pickup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PickupDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND organization_id = ?", id.Bytes(), organizationID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pickupId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves the pickups matching the given identifiers within the
// organization. Unresolved identifiers are absent from the result.
func (r *GormPickupRepository) GetByIDs(
	ctx context.Context, organizationID kernel.UUID, ids []kernel.UUID,
) ([]*pickup.Pickup, error) {
	if len(ids) == 0 {
		return []*pickup.Pickup{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []PickupDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "organization_id = ? AND id IN ?", organizationID.Bytes(), raw).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetAll retrieves every pickup in the organization.
func (r *GormPickupRepository) GetAll(ctx context.Context, organizationID kernel.UUID) ([]*pickup.Pickup, error) {
	var dtos []PickupDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "organization_id = ?", organizationID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetActiveByOrder retrieves the non-archived pickups holding the given
// order. At most one with the double-booking rule intact.
func (r *GormPickupRepository) GetActiveByOrder(
	ctx context.Context, organizationID, orderID kernel.UUID,
) ([]*pickup.Pickup, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PickupDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "organization_id = ? AND status <> ? AND ? = ANY(order_ids)",
			organizationID.Bytes(), pickup.StatusArchived.String(), orderID.String()).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetCompletedBefore retrieves completed pickups, across organizations,
// scheduled before the cutoff. Feeds the archival job.
func (r *GormPickupRepository) GetCompletedBefore(ctx context.Context, cutoff time.Time) ([]*pickup.Pickup, error) {
	var dtos []PickupDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND scheduled_date < ?",
			pickup.StatusCompleted.String(), cutoff).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// Delete removes a pickup from storage.
func (r *GormPickupRepository) Delete(ctx context.Context, organizationID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id.Bytes(), organizationID.Bytes()).
		Delete(&PickupDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("pickupId", id.String())
	}
	return nil
}

func (r *GormPickupRepository) toDomainAll(dtos []PickupDTO) ([]*pickup.Pickup, error) {
	pickups := make([]*pickup.Pickup, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		pickups = append(pickups, p)
	}
	return pickups, nil
}

func (r *GormPickupRepository) classifyMissedWrite(
	ctx context.Context, organizationID, id uuid.UUID,
) error {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&PickupDTO{}).
		Where("id = ? AND organization_id = ?", id, organizationID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("pickupId", id)
	}
	return errs.NewVersionConflictError("pickupId", id)
}
