package queries

import (
	"errors"
	"time"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/errs"
	"opsboard/internal/pkg/guard"
)

var ErrGetPickupManifestQueryIsNotConstructed = errors.New(
	"GetPickupManifestQuery must be created via NewGetPickupManifestQuery constructor",
)

// GetPickupManifestQuery builds the printable manifest for one pickup run:
// the run header plus one line per order, with designer and source details
// resolved so the driver sheet is self-contained.
type GetPickupManifestQuery struct {
	pickupID       kernel.UUID
	organizationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPickupManifestQuery creates a manifest query for the given pickup.
func NewGetPickupManifestQuery(pickupID, organizationID kernel.UUID) (GetPickupManifestQuery, error) {
	if err := pickupID.Validate(); err != nil {
		return GetPickupManifestQuery{}, errs.NewValueIsRequiredErrorWithCause("pickupId", err)
	}
	if err := organizationID.Validate(); err != nil {
		return GetPickupManifestQuery{}, errs.NewValueIsRequiredErrorWithCause("organizationId", err)
	}

	return GetPickupManifestQuery{
		pickupID:       pickupID,
		organizationID: organizationID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPickupManifestQuery) Validate() error {
	return q.guard.Validate(ErrGetPickupManifestQueryIsNotConstructed)
}

// PickupID returns the run the manifest describes.
func (q GetPickupManifestQuery) PickupID() kernel.UUID {
	return q.pickupID
}

// OrganizationID returns the tenant the run must belong to.
func (q GetPickupManifestQuery) OrganizationID() kernel.UUID {
	return q.organizationID
}

// ManifestLine is one order row on the driver sheet.
type ManifestLine struct {
	OrderID         kernel.UUID
	JobName         string
	JobNumber       string
	OrderNumber     string
	SourceName      string
	SourceAddress   string
	DesignerName    string
	DestinationName string
	Cost            kernel.Cost
}

// GetPickupManifestQueryResponse is the full manifest read model.
type GetPickupManifestQueryResponse struct {
	PickupID      kernel.UUID
	Name          string
	DriverName    string
	Vehicle       string
	ScheduledDate time.Time
	Status        string
	Lines         []ManifestLine
}
