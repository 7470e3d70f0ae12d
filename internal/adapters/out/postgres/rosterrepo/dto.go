// Package rosterrepo persists the organization's reference data: drivers,
// designers and sources. Three flat tables; no versioning, roster entries
// have no concurrent-edit story.
package rosterrepo

import (
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/roster"

	"github.com/google/uuid"
)

// DriverDTO is the database row for a roster driver.
type DriverDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;index"`
	Name           string
	Email          string
	Phone          string
	Vehicle        string
}

// TableName overrides GORM's default naming to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

// DesignerDTO is the database row for a roster designer.
type DesignerDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;index"`
	Name           string
	Email          string
	Phone          string
}

// TableName overrides GORM's default naming to use "designers".
func (DesignerDTO) TableName() string {
	return "designers"
}

// SourceDTO is the database row for a roster source.
type SourceDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;index"`
	Name           string
	Address        string
	PhoneNumber    string
	MainContact    string
}

// TableName overrides GORM's default naming to use "sources".
func (SourceDTO) TableName() string {
	return "sources"
}

func driverFromDomain(driver *roster.Driver) DriverDTO {
	return DriverDTO{
		ID:             driver.ID().Bytes(),
		OrganizationID: driver.OrganizationID().Bytes(),
		Name:           driver.Name(),
		Email:          driver.Email(),
		Phone:          driver.Phone(),
		Vehicle:        driver.Vehicle(),
	}
}

func driverToDomain(dto DriverDTO) (*roster.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	organizationID, err := kernel.UUIDFromBytes(dto.OrganizationID[:])
	if err != nil {
		return nil, err
	}
	return roster.RestoreDriver(id, organizationID, dto.Name, dto.Email, dto.Phone, dto.Vehicle)
}

func designerFromDomain(designer *roster.Designer) DesignerDTO {
	return DesignerDTO{
		ID:             designer.ID().Bytes(),
		OrganizationID: designer.OrganizationID().Bytes(),
		Name:           designer.Name(),
		Email:          designer.Email(),
		Phone:          designer.Phone(),
	}
}

func designerToDomain(dto DesignerDTO) (*roster.Designer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	organizationID, err := kernel.UUIDFromBytes(dto.OrganizationID[:])
	if err != nil {
		return nil, err
	}
	return roster.RestoreDesigner(id, organizationID, dto.Name, dto.Email, dto.Phone)
}

func sourceFromDomain(source *roster.Source) SourceDTO {
	return SourceDTO{
		ID:             source.ID().Bytes(),
		OrganizationID: source.OrganizationID().Bytes(),
		Name:           source.Name(),
		Address:        source.Address(),
		PhoneNumber:    source.PhoneNumber(),
		MainContact:    source.MainContact(),
	}
}

func sourceToDomain(dto SourceDTO) (*roster.Source, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	organizationID, err := kernel.UUIDFromBytes(dto.OrganizationID[:])
	if err != nil {
		return nil, err
	}
	return roster.RestoreSource(id, organizationID, dto.Name, dto.Address, dto.PhoneNumber, dto.MainContact)
}
