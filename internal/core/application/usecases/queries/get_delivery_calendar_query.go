package queries

import (
	"errors"
	"time"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/guard"
)

var (
	ErrGetDeliveryCalendarQueryIsNotConstructed = errors.New(
		"GetDeliveryCalendarQuery must be created via NewGetDeliveryCalendarQuery constructor",
	)
	ErrCalendarRangeIsInvalid = errors.New("calendar range start must be before end")
)

// GetDeliveryCalendarQuery retrieves every delivery schedule inside a
// date range, with courier details joined in. Backs the dispatch
// calendar screen.
type GetDeliveryCalendarQuery struct { //nolint:recvcheck //using for validation
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewGetDeliveryCalendarQuery creates a query for the [from, to) range.
// Validates that both bounds are set and from precedes to.
func NewGetDeliveryCalendarQuery(from, to time.Time) (GetDeliveryCalendarQuery, error) {
	query := GetDeliveryCalendarQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setRange(from, to); err != nil {
		return GetDeliveryCalendarQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryCalendarQueryIsNotConstructed if validation fails.
func (q GetDeliveryCalendarQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryCalendarQueryIsNotConstructed)
}

// From returns the inclusive start of the range.
func (q GetDeliveryCalendarQuery) From() time.Time {
	return q.from
}

// To returns the exclusive end of the range.
func (q GetDeliveryCalendarQuery) To() time.Time {
	return q.to
}

func (q *GetDeliveryCalendarQuery) setRange(from, to time.Time) error {
	if from.IsZero() || to.IsZero() || !from.Before(to) {
		return ErrCalendarRangeIsInvalid
	}

	q.from = from
	q.to = to
	return nil
}

// GetDeliveryCalendarQueryResponse represents one schedule on the
// dispatch calendar. CourierName is empty while unassigned.
type GetDeliveryCalendarQueryResponse struct {
	ScheduleID   kernel.UUID
	OrderID      kernel.UUID
	OrderKind    string
	DeliveryDate time.Time
	TimeSlot     string
	Status       string
	CourierName  string
	Notes        string
}
