// Package orgrepo persists organization (tenant) records with GORM.
package orgrepo

import (
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/organization"

	"github.com/google/uuid"
)

// OrganizationDTO is the database row for a tenant.
type OrganizationDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
	Slug string `gorm:"uniqueIndex"`
	Plan string
}

// TableName overrides GORM's default naming to use "organizations".
func (OrganizationDTO) TableName() string {
	return "organizations"
}

func fromDomain(aggregate *organization.Organization) OrganizationDTO {
	return OrganizationDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
		Slug: aggregate.Slug(),
		Plan: aggregate.Plan().String(),
	}
}

func toDomain(dto OrganizationDTO) (*organization.Organization, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	plan, err := organization.PlanFromString(dto.Plan)
	if err != nil {
		return nil, err
	}

	return organization.RestoreOrganization(id, dto.Name, dto.Slug, plan)
}
