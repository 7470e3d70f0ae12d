package organization

import (
	"errors"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/errs"
	"opsboard/internal/pkg/guard"
)

// ErrOrganizationIsNotConstructed is returned when an Organization instance
// was not created through NewOrganization or RestoreOrganization.
var ErrOrganizationIsNotConstructed = errors.New(
	"Organization must be created via NewOrganization or RestoreOrganization")

// Organization is a tenant. All orders, pickups, returns and roster records
// belong to exactly one organization and are invisible outside of it.
type Organization struct {
	id   kernel.UUID
	name string
	slug string
	plan Plan

	guard guard.ConstructorGuard
}

// NewOrganization creates a tenant on the free plan.
func NewOrganization(id kernel.UUID, name, slug string) (*Organization, error) {
	return RestoreOrganization(id, name, slug, PlanFree)
}

// RestoreOrganization reconstructs a tenant from persistence.
func RestoreOrganization(id kernel.UUID, name, slug string, plan Plan) (*Organization, error) {
	o := &Organization{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		o.setID(id),
		o.setName(name),
		o.setSlug(slug),
		o.setPlan(plan),
	); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate ensures the Organization was created through a constructor.
func (o *Organization) Validate() error {
	if o == nil {
		return ErrOrganizationIsNotConstructed
	}
	return o.guard.Validate(ErrOrganizationIsNotConstructed)
}

// ID returns the organization's unique identifier.
func (o *Organization) ID() kernel.UUID { return o.id }

// Name returns the organization's display name.
func (o *Organization) Name() string { return o.name }

// Slug returns the organization's URL-safe short name.
func (o *Organization) Slug() string { return o.slug }

// Plan returns the organization's subscription tier.
func (o *Organization) Plan() Plan { return o.plan }

// Limits returns the resource ceilings of the organization's plan.
func (o *Organization) Limits() Limits { return o.plan.Limits() }

// ChangePlan moves the organization to another subscription tier. Existing
// resources above the new tier's ceiling are kept; only new creations are
// blocked.
func (o *Organization) ChangePlan(plan Plan) error {
	return o.setPlan(plan)
}

func (o *Organization) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Organization) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	o.name = name
	return nil
}

func (o *Organization) setSlug(slug string) error {
	if slug == "" {
		return errs.NewValueIsRequiredError("slug")
	}
	o.slug = slug
	return nil
}

func (o *Organization) setPlan(plan Plan) error {
	if !plan.IsValid() {
		return errs.NewValueIsInvalidError("plan")
	}
	o.plan = plan
	return nil
}
