package ports

import (
	"context"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
)

// OrderStatusNotifier publishes order status changes to interested
// consumers (notification service, analytics). Publication happens after
// the owning transaction commits; a failed publish must not fail the
// command, so implementations log and swallow transport errors.
type OrderStatusNotifier interface {
	// NotifyStatusChanged announces that an order entered a new status.
	NotifyStatusChanged(ctx context.Context, ref kernel.OrderRef, orderNumber string, status string) error
}
