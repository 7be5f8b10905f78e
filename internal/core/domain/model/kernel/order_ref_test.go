package kernel_test

import (
	"testing"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderKind_Validate(t *testing.T) {
	require.NoError(t, kernel.RegularOrder.Validate())
	require.NoError(t, kernel.CustomOrder.Validate())
	require.Error(t, kernel.UnknownOrderKind.Validate())
	require.Error(t, kernel.OrderKind(42).Validate())
}

func TestOrderKind_String(t *testing.T) {
	assert.Equal(t, "regular", kernel.RegularOrder.String())
	assert.Equal(t, "custom", kernel.CustomOrder.String())
	assert.Equal(t, "unknown", kernel.UnknownOrderKind.String())
}

func TestNewOrderRef(t *testing.T) {
	t.Run("valid_regular_ref", func(t *testing.T) {
		id := kernel.NewUUID()

		ref, err := kernel.NewOrderRef(kernel.RegularOrder, id)

		require.NoError(t, err)
		assert.Equal(t, kernel.RegularOrder, ref.Kind())
		assert.True(t, id.IsEqual(ref.ID()))
		require.NoError(t, ref.Validate())
	})

	t.Run("invalid_kind", func(t *testing.T) {
		_, err := kernel.NewOrderRef(kernel.UnknownOrderKind, kernel.NewUUID())

		require.Error(t, err)
	})

	t.Run("invalid_id", func(t *testing.T) {
		var zero kernel.UUID

		_, err := kernel.NewOrderRef(kernel.CustomOrder, zero)

		require.Error(t, err)
	})
}

func TestOrderRef_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	regular, err := kernel.NewOrderRef(kernel.RegularOrder, id)
	require.NoError(t, err)
	custom, err := kernel.NewOrderRef(kernel.CustomOrder, id)
	require.NoError(t, err)
	same, err := kernel.NewOrderRef(kernel.RegularOrder, id)
	require.NoError(t, err)

	assert.True(t, regular.IsEqual(same))
	assert.False(t, regular.IsEqual(custom))
}

func TestOrderRef_Validate_ZeroValue(t *testing.T) {
	var ref kernel.OrderRef

	require.ErrorIs(t, ref.Validate(), kernel.ErrOrderRefIsNotConstructed)
}

func TestOrderRef_String(t *testing.T) {
	id := kernel.NewUUID()
	ref, err := kernel.NewOrderRef(kernel.CustomOrder, id)
	require.NoError(t, err)

	assert.Equal(t, "custom:"+id.String(), ref.String())
}
