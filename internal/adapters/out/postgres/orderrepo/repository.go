package orderrepo

import (
	"context"
	"errors"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/order"
	"opsboard/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
// Every read and write is scoped to an organization; a row belonging to a
// different tenant behaves exactly like a missing one.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing order under optimistic concurrency control.
// The write only lands if the stored version still matches the version the
// aggregate was read at; the stored version is bumped in the same statement.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
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

// Get retrieves an order by ID within the organization.
func (r *GormOrderRepository) Get(ctx context.Context, organizationID, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND organization_id = ?", id.Bytes(), organizationID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves the orders matching the given identifiers within the
// organization. Unresolved identifiers are absent from the result.
func (r *GormOrderRepository) GetByIDs(
	ctx context.Context, organizationID kernel.UUID, ids []kernel.UUID,
) ([]*order.Order, error) {
	if len(ids) == 0 {
		return []*order.Order{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "organization_id = ? AND id IN ?", organizationID.Bytes(), raw).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetAll retrieves every order in the organization.
func (r *GormOrderRepository) GetAll(ctx context.Context, organizationID kernel.UUID) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "organization_id = ?", organizationID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// Delete removes an order from storage. Reference checks are the caller's
// responsibility; deleting a missing order reports not found.
func (r *GormOrderRepository) Delete(ctx context.Context, organizationID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id.Bytes(), organizationID.Bytes()).
		Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", id.String())
	}
	return nil
}

func (r *GormOrderRepository) toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// classifyMissedWrite distinguishes a vanished row from a concurrent write
// after a guarded update matched nothing.
func (r *GormOrderRepository) classifyMissedWrite(
	ctx context.Context, organizationID, id uuid.UUID,
) error {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND organization_id = ?", id, organizationID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("orderId", id)
	}
	return errs.NewVersionConflictError("orderId", id)
}
