// Package orderrepo persists order aggregates with GORM, mapping between
// the domain model and the relational schema.
package orderrepo

import (
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row for an order aggregate. Status and priority
// are stored as their string representations so raw-SQL read models and ad
// hoc queries stay legible.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID  uuid.UUID `gorm:"type:uuid;index"`
	JobName         string
	JobNumber       string
	OrderNumber     string
	PurchaseOrder   string
	DesignerID      uuid.UUID `gorm:"type:uuid"`
	SourceID        uuid.UUID `gorm:"type:uuid"`
	DestinationName string
	CostCents       int64
	Status          string     `gorm:"index"`
	Priority        string
	PickupID        *uuid.UUID `gorm:"type:uuid;index"`
	Version         int
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var pickupID *uuid.UUID
	if id := aggregate.PickupID(); id != nil {
		raw := id.Bytes()
		pickupID = &raw
	}

	details := aggregate.Details()
	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		OrganizationID:  aggregate.OrganizationID().Bytes(),
		JobName:         details.JobName,
		JobNumber:       details.JobNumber,
		OrderNumber:     details.OrderNumber,
		PurchaseOrder:   details.PurchaseOrder,
		DesignerID:      details.DesignerID.Bytes(),
		SourceID:        details.SourceID.Bytes(),
		DestinationName: details.DestinationName,
		CostCents:       details.Cost.Cents(),
		Status:          aggregate.Status().String(),
		Priority:        aggregate.Priority().String(),
		PickupID:        pickupID,
		Version:         aggregate.Version(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	organizationID, err := kernel.UUIDFromBytes(dto.OrganizationID[:])
	if err != nil {
		return nil, err
	}
	designerID, err := kernel.UUIDFromBytes(dto.DesignerID[:])
	if err != nil {
		return nil, err
	}
	sourceID, err := kernel.UUIDFromBytes(dto.SourceID[:])
	if err != nil {
		return nil, err
	}

	var pickupID *kernel.UUID
	if dto.PickupID != nil {
		claimer, pickupErr := kernel.UUIDFromBytes((*dto.PickupID)[:])
		if pickupErr != nil {
			return nil, pickupErr
		}
		pickupID = &claimer
	}

	cost, err := kernel.NewCost(dto.CostCents)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	priority, err := kernel.PriorityFromString(dto.Priority)
	if err != nil {
		return nil, err
	}

	details := order.Details{
		JobName:         dto.JobName,
		JobNumber:       dto.JobNumber,
		OrderNumber:     dto.OrderNumber,
		PurchaseOrder:   dto.PurchaseOrder,
		DesignerID:      designerID,
		SourceID:        sourceID,
		DestinationName: dto.DestinationName,
		Cost:            cost,
	}

	return order.RestoreOrder(id, organizationID, details, status, priority, pickupID, dto.Version)
}
