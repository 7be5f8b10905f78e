package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_NewSchedulingPolicy_AppliesDefaults(t *testing.T) {
	policy := NewSchedulingPolicy(0, -1, true)
	assert.Equal(t, DefaultMaxPerDay, policy.MaxPerDay())

	approvedAt := time.Date(2026, 3, 1, 14, 30, 0, 0, time.UTC)
	earliest := policy.EarliestCustomDeliveryDate(approvedAt)
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), earliest)
}

func Test_SchedulingPolicy_CheckCapacity(t *testing.T) {
	policy := NewSchedulingPolicy(3, 10, true)

	assert.NoError(t, policy.CheckCapacity(0))
	assert.NoError(t, policy.CheckCapacity(2))
	assert.ErrorIs(t, policy.CheckCapacity(3), ErrCapacityExceeded)
	assert.ErrorIs(t, policy.CheckCapacity(5), ErrCapacityExceeded)
}

func Test_SchedulingPolicy_CheckLeadTime(t *testing.T) {
	policy := NewSchedulingPolicy(3, 10, true)
	approvedAt := time.Date(2026, 3, 1, 9, 15, 0, 0, time.UTC)

	tests := []struct {
		name         string
		deliveryDate time.Time
		wantErr      error
	}{
		{
			name:         "day before lead time ends",
			deliveryDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			wantErr:      ErrTooEarly,
		},
		{
			name:         "exactly at lead time boundary",
			deliveryDate: time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
			wantErr:      nil,
		},
		{
			name:         "well past lead time",
			deliveryDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			wantErr:      nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := policy.CheckLeadTime(approvedAt, test.deliveryDate)
			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func Test_SchedulingPolicy_CheckLeadTime_Disabled(t *testing.T) {
	policy := NewSchedulingPolicy(3, 10, false)
	approvedAt := time.Date(2026, 3, 1, 9, 15, 0, 0, time.UTC)

	// Next-day delivery is allowed when enforcement is off.
	err := policy.CheckLeadTime(approvedAt, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
}
