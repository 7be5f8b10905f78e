package commands_test

import (
	"testing"
	"time"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/require"
)

func TestNewScheduleDeliveryCommand_Success(t *testing.T) {
	ref := regularRef(t)
	date := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	cmd, err := commands.NewScheduleDeliveryCommand(ref, date, "afternoon", "leave at front desk", nil)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Equal(t, "afternoon", cmd.TimeSlot())
	require.Equal(t, "leave at front desk", cmd.Notes())
}

func TestNewScheduleDeliveryCommand_MissingFields(t *testing.T) {
	ref := regularRef(t)
	date := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	_, err := commands.NewScheduleDeliveryCommand(ref, time.Time{}, "morning", "", nil)
	require.ErrorIs(t, err, commands.ErrDeliveryDateIsRequired)

	_, err = commands.NewScheduleDeliveryCommand(ref, date, "", "", nil)
	require.ErrorIs(t, err, commands.ErrTimeSlotIsRequired)
}
