package commands

import (
	"context"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/ports"
)

// ConfirmOrderCommandHandler handles the business logic for order
// confirmation. Flips the order from pending to confirmed and reserves
// stock for every line item atomically; if any product lacks stock the
// whole confirmation rolls back.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderStockUoWFactory
	notifier   ports.OrderStatusNotifier
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
// Requires an OrderStockUoWFactory for transactional persistence and a
// notifier for post-commit status announcements.
func NewConfirmOrderCommandHandler(
	uowFactory OrderStockUoWFactory,
	notifier ports.OrderStatusNotifier,
) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the order confirmation command.
// Locks the order row, transitions it to confirmed, and reserves stock
// for each line item under the same transaction. The status change is
// published only after commit; publish failures do not fail the command.
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Confirm(); err != nil {
		return err
	}

	if err = reserveOrderStock(ctx, uow.ProductRepository(), aggregate.Items()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	ref, err := aggregate.Ref()
	if err != nil {
		return err
	}

	_ = h.notifier.NotifyStatusChanged(ctx, ref, aggregate.OrderNumber(), aggregate.Status().String())

	return nil
}
