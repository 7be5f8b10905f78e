package commands

import (
	"context"
)

// AssignCourierCommandHandler handles courier assignment on delivery
// schedules. Only active couriers may be assigned.
type AssignCourierCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewAssignCourierCommandHandler creates a handler for courier
// assignment. Requires a DeliveryUoWFactory for transactional persistence.
func NewAssignCourierCommandHandler(uowFactory DeliveryUoWFactory) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier assignment command.
// Reassignment is allowed while the schedule is not terminal, so a
// delayed delivery can move to another courier.
func (h *AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) error {
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

	assignee, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if err = assignee.EnsureAssignable(); err != nil {
		return err
	}

	deliveryRepo := uow.DeliveryRepository()
	schedule, err := deliveryRepo.GetForUpdate(ctx, cmd.ScheduleID())
	if err != nil {
		return err
	}

	if err = schedule.AssignCourier(assignee.ID()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, schedule); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
