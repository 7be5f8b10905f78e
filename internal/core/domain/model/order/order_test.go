package order_test

import (
	"testing"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNewItem(t *testing.T, qty int) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), qty)
	require.NoError(t, err)
	return item
}

func mustNewOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "ORD1751723365461", kernel.NewUUID(),
		[]order.Item{mustNewItem(t, 2)})
	require.NoError(t, err)
	return o
}

func TestNewItem(t *testing.T) {
	t.Run("valid_item", func(t *testing.T) {
		productID := kernel.NewUUID()

		item, err := order.NewItem(productID, 3)

		require.NoError(t, err)
		assert.True(t, productID.IsEqual(item.ProductID()))
		assert.Equal(t, 3, item.Quantity())
	})

	t.Run("non_positive_quantity_rejected", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), 0)

		require.Error(t, err)
	})

	t.Run("invalid_product_id_rejected", func(t *testing.T) {
		var zero kernel.UUID

		_, err := order.NewItem(zero, 1)

		require.Error(t, err)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("valid_order_starts_pending", func(t *testing.T) {
		o := mustNewOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "ORD1751723365461", o.OrderNumber())
		assert.Len(t, o.Items(), 1)
	})

	t.Run("empty_order_number_rejected", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "", kernel.NewUUID(),
			[]order.Item{mustNewItem(t, 1)})

		require.ErrorIs(t, err, order.ErrOrderNumberIsRequired)
	})

	t.Run("no_items_rejected", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "ORD1", kernel.NewUUID(), nil)

		require.ErrorIs(t, err, order.ErrItemsAreRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_with_explicit_status", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), "ORD2", kernel.NewUUID(),
			[]order.Item{mustNewItem(t, 1)}, order.Confirmed)

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, o.Status())
	})

	t.Run("invalid_status_rejected", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), "ORD2", kernel.NewUUID(),
			[]order.Item{mustNewItem(t, 1)}, order.Unknown)

		require.Error(t, err)
	})
}

func TestOrder_Confirm(t *testing.T) {
	t.Run("pending_order_confirms", func(t *testing.T) {
		o := mustNewOrder(t)

		require.NoError(t, o.Confirm())

		assert.Equal(t, order.Confirmed, o.Status())
	})

	t.Run("repeat_confirm_fails_without_status_change", func(t *testing.T) {
		o := mustNewOrder(t)
		require.NoError(t, o.Confirm())

		require.Error(t, o.Confirm())

		assert.Equal(t, order.Confirmed, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("confirmed_order_cancels", func(t *testing.T) {
		o := mustNewOrder(t)
		require.NoError(t, o.Confirm())

		require.NoError(t, o.Cancel())

		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("pending_order_cannot_cancel", func(t *testing.T) {
		o := mustNewOrder(t)

		require.Error(t, o.Cancel())

		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("repeat_cancel_fails", func(t *testing.T) {
		o := mustNewOrder(t)
		require.NoError(t, o.Confirm())
		require.NoError(t, o.Cancel())

		require.Error(t, o.Cancel())
	})
}

func TestOrder_Ref(t *testing.T) {
	o := mustNewOrder(t)

	ref, err := o.Ref()

	require.NoError(t, err)
	assert.Equal(t, kernel.RegularOrder, ref.Kind())
	assert.True(t, o.ID().IsEqual(ref.ID()))
}

func TestOrder_Items_ReturnsCopy(t *testing.T) {
	o := mustNewOrder(t)

	items := o.Items()
	items[0] = order.Item{}

	assert.Equal(t, 2, o.Items()[0].Quantity())
}
