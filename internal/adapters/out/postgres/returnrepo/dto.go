// Package returnrepo persists return aggregates with GORM. Mirrors the
// pickup schema, except the driver assignment is optional and the order-id
// set carries no claim semantics.
package returnrepo

import (
	"time"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/returns"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ReturnDTO is the database row for a return aggregate.
type ReturnDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;index"`
	Name           string
	DriverID       *uuid.UUID `gorm:"type:uuid;index"`
	ScheduledDate  time.Time
	OrderIDs       pq.StringArray `gorm:"type:text[]"`
	Status         string         `gorm:"index"`
	Priority       string
	Version        int
}

// TableName overrides GORM's default naming to use "returns".
func (ReturnDTO) TableName() string {
	return "returns"
}

func fromDomain(aggregate *returns.Return) ReturnDTO {
	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	orderIDs := make(pq.StringArray, 0, len(aggregate.OrderIDs()))
	for _, id := range aggregate.OrderIDs() {
		orderIDs = append(orderIDs, id.String())
	}

	return ReturnDTO{
		ID:             aggregate.ID().Bytes(),
		OrganizationID: aggregate.OrganizationID().Bytes(),
		Name:           aggregate.Name(),
		DriverID:       driverID,
		ScheduledDate:  aggregate.ScheduledDate(),
		OrderIDs:       orderIDs,
		Status:         aggregate.Status().String(),
		Priority:       aggregate.Priority().String(),
		Version:        aggregate.Version(),
	}
}

func toDomain(dto ReturnDTO) (*returns.Return, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	organizationID, err := kernel.UUIDFromBytes(dto.OrganizationID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		assigned, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &assigned
	}

	orderIDs := make([]kernel.UUID, 0, len(dto.OrderIDs))
	for _, raw := range dto.OrderIDs {
		orderID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return nil, idErr
		}
		orderIDs = append(orderIDs, orderID)
	}

	status, err := returns.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	priority, err := kernel.PriorityFromString(dto.Priority)
	if err != nil {
		return nil, err
	}

	return returns.RestoreReturn(
		id, organizationID, dto.Name, driverID,
		dto.ScheduledDate, orderIDs, priority, status, dto.Version,
	)
}
