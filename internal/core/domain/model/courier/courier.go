package courier

import (
	"errors"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/errs"
	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when creating a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when creating a courier without a phone
	// number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrCourierIsNotConstructed is returned when using an improperly
	// initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier")
	// ErrCourierInactive is returned when assigning deliveries to an
	// inactive courier.
	ErrCourierInactive = errors.New("courier is inactive")
)

// Courier represents a delivery courier. A courier may hold any number of
// concurrent schedules, as there is no exclusivity rule, but only active
// couriers may take new assignments.
type Courier struct {
	id     kernel.UUID
	name   string
	phone  string
	status Status

	guard guard.ConstructorGuard
}

// NewCourier creates an active courier. Name and phone are both required:
// dispatch reaches couriers by phone.
func NewCourier(id kernel.UUID, name, phone string) (*Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}
	if phone == "" {
		return nil, ErrPhoneIsRequired
	}

	return &Courier{
		id:     id,
		name:   name,
		phone:  phone,
		status: Active,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// RestoreCourier reconstructs a courier from persistence.
func RestoreCourier(id kernel.UUID, name, phone string, status Status) (*Courier, error) {
	c, err := NewCourier(id, name, phone)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	c.status = status
	return c, nil
}

// Validate ensures the courier came through a constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the courier identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's name.
func (c *Courier) Name() string {
	return c.name
}

// Phone returns the courier's contact number.
func (c *Courier) Phone() string {
	return c.phone
}

// Status returns the courier's availability status.
func (c *Courier) Status() Status {
	return c.status
}

// IsActive reports whether the courier can take new assignments.
func (c *Courier) IsActive() bool {
	return c.status == Active
}

// EnsureAssignable returns ErrCourierInactive for an inactive courier.
func (c *Courier) EnsureAssignable() error {
	if !c.IsActive() {
		return ErrCourierInactive
	}
	return nil
}

// Deactivate takes the courier off the roster. Existing schedules keep
// their assignment; only new assignments are blocked.
func (c *Courier) Deactivate() {
	c.status = Inactive
}

// Activate puts the courier back on the roster.
func (c *Courier) Activate() {
	c.status = Active
}
