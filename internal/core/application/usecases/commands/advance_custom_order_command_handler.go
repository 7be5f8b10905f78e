package commands

import (
	"context"
	"time"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/ports"
)

// AdvanceCustomOrderCommandHandler handles custom order lifecycle
// progression. The aggregate's state machine only allows moving to the
// immediate next stage, so skipped stages are rejected.
type AdvanceCustomOrderCommandHandler struct {
	uowFactory CustomOrderUoWFactory
	notifier   ports.OrderStatusNotifier
	clock      func() time.Time
}

// NewAdvanceCustomOrderCommandHandler creates a handler for custom order
// progression. Requires a CustomOrderUoWFactory for transactional
// persistence and a notifier for post-commit status announcements.
func NewAdvanceCustomOrderCommandHandler(
	uowFactory CustomOrderUoWFactory,
	notifier ports.OrderStatusNotifier,
) AdvanceCustomOrderCommandHandler {
	return AdvanceCustomOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      time.Now,
	}
}

// Handle processes the custom order advancement command.
// Reaching the approved stage stamps the approval time that anchors the
// production lead window for delivery booking.
func (h *AdvanceCustomOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceCustomOrderCommand) error {
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

	customOrderRepo := uow.CustomOrderRepository()
	aggregate, err := customOrderRepo.GetForUpdate(ctx, cmd.CustomOrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AdvanceTo(cmd.Target(), h.clock()); err != nil {
		return err
	}

	if err = customOrderRepo.Update(ctx, aggregate); err != nil {
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
