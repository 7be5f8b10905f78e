package commands

import (
	"context"
	"errors"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/customorder"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/delivery"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/order"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/services"
)

// ErrOrderNotSchedulable is returned when the target order is not in a
// status that allows delivery booking.
var ErrOrderNotSchedulable = errors.New("order is not in a schedulable status")

// ScheduleDeliveryCommandHandler handles delivery booking. Enforces the
// per-day capacity ceiling and, for custom orders, the production lead
// time; the capacity count and the booking share one transaction so
// concurrent requests for the same day cannot both win the last slot.
type ScheduleDeliveryCommandHandler struct {
	uowFactory SchedulingUoWFactory
	policy     services.SchedulingPolicy
}

// NewScheduleDeliveryCommandHandler creates a handler for delivery
// booking. Requires a SchedulingUoWFactory for transactional persistence
// and the scheduling policy for calendar rules.
func NewScheduleDeliveryCommandHandler(
	uowFactory SchedulingUoWFactory,
	policy services.SchedulingPolicy,
) ScheduleDeliveryCommandHandler {
	return ScheduleDeliveryCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the delivery booking command.
// An order's existing schedule does not count against the day it is
// moving to, so rebooking within a full day it already occupies works.
func (h *ScheduleDeliveryCommandHandler) Handle(ctx context.Context, cmd ScheduleDeliveryCommand) error {
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

	if err := h.checkOrderSchedulable(ctx, uow, cmd); err != nil {
		return err
	}

	deliveryRepo := uow.DeliveryRepository()
	activeCount, err := deliveryRepo.CountActiveOn(ctx, cmd.DeliveryDate(), cmd.OrderRef())
	if err != nil {
		return err
	}

	if err = h.policy.CheckCapacity(activeCount); err != nil {
		return err
	}

	schedule, err := h.buildSchedule(ctx, uow, cmd)
	if err != nil {
		return err
	}

	if cmd.CourierID() != nil {
		if err = h.assignCourier(ctx, uow, schedule, *cmd.CourierID()); err != nil {
			return err
		}
	}

	if err = deliveryRepo.Upsert(ctx, schedule); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// assignCourier puts the requested courier on the schedule at booking
// time, subject to the same active-courier rule as standalone assignment.
func (h *ScheduleDeliveryCommandHandler) assignCourier(
	ctx context.Context,
	uow SchedulingUoW,
	schedule *delivery.Schedule,
	courierID kernel.UUID,
) error {
	assignee, err := uow.CourierRepository().Get(ctx, courierID)
	if err != nil {
		return err
	}

	if err = assignee.EnsureAssignable(); err != nil {
		return err
	}

	return schedule.AssignCourier(assignee.ID())
}

// checkOrderSchedulable verifies the order is in a status that allows
// booking and, for custom orders, that the delivery date clears the
// production lead time.
func (h *ScheduleDeliveryCommandHandler) checkOrderSchedulable(
	ctx context.Context,
	uow SchedulingUoW,
	cmd ScheduleDeliveryCommand,
) error {
	ref := cmd.OrderRef()
	if ref.Kind() == kernel.CustomOrder {
		aggregate, err := uow.CustomOrderRepository().Get(ctx, ref.ID())
		if err != nil {
			return err
		}

		if !aggregate.IsSchedulable() {
			return ErrOrderNotSchedulable
		}

		approvedAt := aggregate.ApprovedAt()
		if approvedAt == nil {
			return customorder.ErrNotYetApproved
		}

		return h.policy.CheckLeadTime(*approvedAt, cmd.DeliveryDate())
	}

	aggregate, err := uow.OrderRepository().Get(ctx, ref.ID())
	if err != nil {
		return err
	}

	if aggregate.Status() != order.Confirmed {
		return ErrOrderNotSchedulable
	}

	return nil
}

// buildSchedule moves the order's existing active schedule or creates a
// fresh one when none exists or the old one is terminal.
func (h *ScheduleDeliveryCommandHandler) buildSchedule(
	ctx context.Context,
	uow SchedulingUoW,
	cmd ScheduleDeliveryCommand,
) (*delivery.Schedule, error) {
	existing, err := uow.DeliveryRepository().GetByOrderRef(ctx, cmd.OrderRef())
	if err != nil {
		return nil, err
	}

	if existing != nil && !existing.Status().IsTerminal() {
		if err = existing.Reschedule(cmd.DeliveryDate(), cmd.TimeSlot()); err != nil {
			return nil, err
		}
		if cmd.Notes() != "" {
			existing.SetNotes(cmd.Notes())
		}
		return existing, nil
	}

	// A terminal schedule keeps its row under the per-order unique index,
	// so a fresh booking reuses its id and the upsert overwrites in place.
	id := kernel.NewUUID()
	if existing != nil {
		id = existing.ID()
	}

	schedule, err := delivery.NewSchedule(id, cmd.OrderRef(), cmd.DeliveryDate(), cmd.TimeSlot())
	if err != nil {
		return nil, err
	}
	schedule.SetNotes(cmd.Notes())

	return schedule, nil
}
