package commands

import (
	"context"
	"time"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/delivery"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/ports"
)

// ResolveCancellationCommandHandler handles the business logic for
// cancellation resolution. Rejection only stamps the request; approval
// cancels the order, returns its reserved stock, and cancels any
// delivery schedule, all in one transaction. If any step fails the
// request stays pending.
type ResolveCancellationCommandHandler struct {
	uowFactory CancellationUoWFactory
	notifier   ports.OrderStatusNotifier
	clock      func() time.Time
}

// NewResolveCancellationCommandHandler creates a handler for cancellation
// resolution. Requires a CancellationUoWFactory for transactional
// persistence and a notifier for post-commit status announcements.
func NewResolveCancellationCommandHandler(
	uowFactory CancellationUoWFactory,
	notifier ports.OrderStatusNotifier,
) ResolveCancellationCommandHandler {
	return ResolveCancellationCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      time.Now,
	}
}

// Handle processes the cancellation resolution command.
// Locks the request row first so concurrent resolutions serialize; the
// loser of the race sees an already resolved request and fails without
// touching stock a second time.
func (h *ResolveCancellationCommandHandler) Handle(ctx context.Context, cmd ResolveCancellationCommand) error {
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

	cancellationRepo := uow.CancellationRepository()
	request, err := cancellationRepo.GetForUpdate(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	now := h.clock()
	if cmd.Decision() == DecisionReject {
		if err = request.Reject(cmd.AdminNotes(), now); err != nil {
			return err
		}

		if err = cancellationRepo.Update(ctx, request); err != nil {
			return err
		}

		return uow.Commit(ctx)
	}

	if err = request.Approve(cmd.AdminNotes(), now); err != nil {
		return err
	}

	if err = h.cancelOrder(ctx, uow, request.OrderRef()); err != nil {
		return err
	}

	if err = h.cancelSchedule(ctx, uow, request.OrderRef()); err != nil {
		return err
	}

	if err = cancellationRepo.Update(ctx, request); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.NotifyStatusChanged(ctx, request.OrderRef(), request.OrderNumber(), "cancelled")

	return nil
}

// cancelOrder cancels the target order and, for regular orders, returns
// its reserved stock to the available pool.
func (h *ResolveCancellationCommandHandler) cancelOrder(
	ctx context.Context,
	uow CancellationUoW,
	ref kernel.OrderRef,
) error {
	if ref.Kind() == kernel.CustomOrder {
		aggregate, err := uow.CustomOrderRepository().GetForUpdate(ctx, ref.ID())
		if err != nil {
			return err
		}

		if err = aggregate.Cancel(); err != nil {
			return err
		}

		return uow.CustomOrderRepository().Update(ctx, aggregate)
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, ref.ID())
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = releaseOrderStock(ctx, uow.ProductRepository(), aggregate.Items()); err != nil {
		return err
	}

	return orderRepo.Update(ctx, aggregate)
}

// cancelSchedule cancels the order's delivery schedule if one exists and
// is still active.
func (h *ResolveCancellationCommandHandler) cancelSchedule(
	ctx context.Context,
	uow CancellationUoW,
	ref kernel.OrderRef,
) error {
	deliveryRepo := uow.DeliveryRepository()
	schedule, err := deliveryRepo.GetByOrderRef(ctx, ref)
	if err != nil {
		return err
	}
	if schedule == nil || schedule.Status().IsTerminal() {
		return nil
	}

	if err = schedule.Advance(delivery.Cancelled); err != nil {
		return err
	}

	return deliveryRepo.Update(ctx, schedule)
}
