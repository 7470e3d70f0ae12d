// Package pickuprepo persists pickup aggregates with GORM. The order-id set
// is stored as a text array, which keeps the claim lookup ("which run holds
// this order") a single ANY() predicate.
package pickuprepo

import (
	"time"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/pickup"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PickupDTO is the database row for a pickup aggregate.
type PickupDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;index"`
	Name           string
	DriverID       uuid.UUID `gorm:"type:uuid;index"`
	ScheduledDate  time.Time
	OrderIDs       pq.StringArray `gorm:"type:text[]"`
	Status         string         `gorm:"index"`
	Priority       string
	Version        int
}

// TableName overrides GORM's default naming to use "pickups".
func (PickupDTO) TableName() string {
	return "pickups"
}

func fromDomain(aggregate *pickup.Pickup) PickupDTO {
	orderIDs := make(pq.StringArray, 0, len(aggregate.OrderIDs()))
	for _, id := range aggregate.OrderIDs() {
		orderIDs = append(orderIDs, id.String())
	}

	return PickupDTO{
		ID:             aggregate.ID().Bytes(),
		OrganizationID: aggregate.OrganizationID().Bytes(),
		Name:           aggregate.Name(),
		DriverID:       aggregate.DriverID().Bytes(),
		ScheduledDate:  aggregate.ScheduledDate(),
		OrderIDs:       orderIDs,
		Status:         aggregate.Status().String(),
		Priority:       aggregate.Priority().String(),
		Version:        aggregate.Version(),
	}
}

func toDomain(dto PickupDTO) (*pickup.Pickup, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	organizationID, err := kernel.UUIDFromBytes(dto.OrganizationID[:])
	if err != nil {
		return nil, err
	}
	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	orderIDs := make([]kernel.UUID, 0, len(dto.OrderIDs))
	for _, raw := range dto.OrderIDs {
		orderID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return nil, idErr
		}
		orderIDs = append(orderIDs, orderID)
	}

	status, err := pickup.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	priority, err := kernel.PriorityFromString(dto.Priority)
	if err != nil {
		return nil, err
	}

	return pickup.RestorePickup(
		id, organizationID, dto.Name, driverID,
		dto.ScheduledDate, orderIDs, priority, status, dto.Version,
	)
}
