package queries

import (
	"context"

	"opsboard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRosterQueryHandler retrieves an organization's drivers, designers and
// sources. Three single-table reads; each list is sorted by name.
type GetRosterQueryHandler struct {
	db *gorm.DB
}

// NewGetRosterQueryHandler creates a handler for roster queries.
func NewGetRosterQueryHandler(db *gorm.DB) GetRosterQueryHandler {
	return GetRosterQueryHandler{db: db}
}

// Handle executes the query.
func (h GetRosterQueryHandler) Handle(
	ctx context.Context,
	query GetRosterQuery,
) (GetRosterQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRosterQueryResponse{}, err
	}

	resp := GetRosterQueryResponse{
		Drivers:   make([]RosterDriver, 0),
		Designers: make([]RosterDesigner, 0),
		Sources:   make([]RosterSource, 0),
	}
	orgID := query.OrganizationID().Bytes()

	if err := h.loadDrivers(ctx, orgID, &resp); err != nil {
		return GetRosterQueryResponse{}, err
	}
	if err := h.loadDesigners(ctx, orgID, &resp); err != nil {
		return GetRosterQueryResponse{}, err
	}
	if err := h.loadSources(ctx, orgID, &resp); err != nil {
		return GetRosterQueryResponse{}, err
	}

	return resp, nil
}

func (h GetRosterQueryHandler) loadDrivers(
	ctx context.Context, orgID uuid.UUID, resp *GetRosterQueryResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, email, phone, vehicle
		FROM drivers
		WHERE organization_id = ?
		ORDER BY name
	`, orgID).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var driver RosterDriver
		var id uuid.UUID

		if err = rows.Scan(&id, &driver.Name, &driver.Email, &driver.Phone, &driver.Vehicle); err != nil {
			return err
		}
		if driver.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return err
		}
		resp.Drivers = append(resp.Drivers, driver)
	}
	return rows.Err()
}

func (h GetRosterQueryHandler) loadDesigners(
	ctx context.Context, orgID uuid.UUID, resp *GetRosterQueryResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, email, phone
		FROM designers
		WHERE organization_id = ?
		ORDER BY name
	`, orgID).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var designer RosterDesigner
		var id uuid.UUID

		if err = rows.Scan(&id, &designer.Name, &designer.Email, &designer.Phone); err != nil {
			return err
		}
		if designer.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return err
		}
		resp.Designers = append(resp.Designers, designer)
	}
	return rows.Err()
}

func (h GetRosterQueryHandler) loadSources(
	ctx context.Context, orgID uuid.UUID, resp *GetRosterQueryResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, address, phone_number, main_contact
		FROM sources
		WHERE organization_id = ?
		ORDER BY name
	`, orgID).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var source RosterSource
		var id uuid.UUID

		if err = rows.Scan(&id, &source.Name, &source.Address, &source.PhoneNumber, &source.MainContact); err != nil {
			return err
		}
		if source.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return err
		}
		resp.Sources = append(resp.Sources, source)
	}
	return rows.Err()
}
