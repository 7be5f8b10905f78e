package commands

import (
	"context"
	"time"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/delivery"
)

// FlagOverdueDeliveriesCommandHandler handles the overdue delivery
// sweep. Schedules still in the scheduled status whose delivery date has
// passed are flagged as delayed so staff can follow up.
type FlagOverdueDeliveriesCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewFlagOverdueDeliveriesCommandHandler creates a handler for the
// overdue sweep. Requires a DeliveryUoWFactory for transactional
// persistence.
func NewFlagOverdueDeliveriesCommandHandler(uowFactory DeliveryUoWFactory) FlagOverdueDeliveriesCommandHandler {
	return FlagOverdueDeliveriesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the overdue sweep command.
// Returns the number of schedules flagged. A schedule dated today is not
// overdue; only dates strictly before the asOf day qualify.
func (h *FlagOverdueDeliveriesCommandHandler) Handle(ctx context.Context, cmd FlagOverdueDeliveriesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	year, month, day := cmd.AsOf().UTC().Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	deliveryRepo := uow.DeliveryRepository()
	overdue, err := deliveryRepo.GetOverdueScheduled(ctx, today)
	if err != nil {
		return 0, err
	}

	for _, schedule := range overdue {
		if err = schedule.Advance(delivery.Delayed); err != nil {
			return 0, err
		}

		if err = deliveryRepo.Update(ctx, schedule); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(overdue), nil
}
