package commands_test

import (
	"testing"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/application/usecases/commands"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func regularRef(t *testing.T) kernel.OrderRef {
	t.Helper()

	ref, err := kernel.NewOrderRef(kernel.RegularOrder, kernel.NewUUID())
	require.NoError(t, err)

	return ref
}

func customRef(t *testing.T) kernel.OrderRef {
	t.Helper()

	ref, err := kernel.NewOrderRef(kernel.CustomOrder, kernel.NewUUID())
	require.NoError(t, err)

	return ref
}

func TestNewSubmitCancellationCommand_Success(t *testing.T) {
	ref := regularRef(t)

	cmd, err := commands.NewSubmitCancellationCommand(ref, "changed my mind")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.True(t, cmd.OrderRef().IsEqual(ref))
	require.Equal(t, "changed my mind", cmd.Reason())
}

func TestNewSubmitCancellationCommand_EmptyReason(t *testing.T) {
	_, err := commands.NewSubmitCancellationCommand(regularRef(t), "")
	require.ErrorIs(t, err, commands.ErrCancellationReasonIsRequired)
}

func TestNewSubmitCancellationCommand_InvalidRef(t *testing.T) {
	_, err := commands.NewSubmitCancellationCommand(kernel.OrderRef{}, "reason")
	require.Error(t, err)
}
