package commands

import (
	"context"
)

// AdvanceDeliveryCommandHandler handles delivery status progression.
// The schedule's own state machine decides which transitions are legal.
type AdvanceDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewAdvanceDeliveryCommandHandler creates a handler for delivery status
// changes. Requires a DeliveryUoWFactory for transactional persistence.
func NewAdvanceDeliveryCommandHandler(uowFactory DeliveryUoWFactory) AdvanceDeliveryCommandHandler {
	return AdvanceDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery advancement command.
// Locks the schedule row so concurrent advancements serialize.
func (h *AdvanceDeliveryCommandHandler) Handle(ctx context.Context, cmd AdvanceDeliveryCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()
	schedule, err := deliveryRepo.GetForUpdate(ctx, cmd.ScheduleID())
	if err != nil {
		return err
	}

	if err = schedule.Advance(cmd.Target()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, schedule); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
