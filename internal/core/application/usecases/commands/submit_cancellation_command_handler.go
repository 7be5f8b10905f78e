package commands

import (
	"context"
	"errors"
	"time"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/cancellation"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/order"
)

var (
	// ErrOrderNotCancellable is returned when the target order is not in
	// a status a cancellation request could ever act on.
	ErrOrderNotCancellable = errors.New("order is not in a cancellable status")
	// ErrCancellationAlreadyPending is returned when the order already
	// has an unresolved cancellation request.
	ErrCancellationAlreadyPending = errors.New("order already has a pending cancellation request")
)

// SubmitCancellationCommandHandler handles the intake of cancellation
// requests. Verifies the target order exists and is cancellable, rejects
// duplicate pending requests, and records the request for later review.
type SubmitCancellationCommandHandler struct {
	uowFactory CancellationIntakeUoWFactory
	clock      func() time.Time
}

// NewSubmitCancellationCommandHandler creates a handler for cancellation
// submission. Requires a CancellationIntakeUoWFactory for transactional
// persistence.
func NewSubmitCancellationCommandHandler(uowFactory CancellationIntakeUoWFactory) SubmitCancellationCommandHandler {
	return SubmitCancellationCommandHandler{
		uowFactory: uowFactory,
		clock:      time.Now,
	}
}

// Handle processes the cancellation submission command.
// The order is only read here; its status changes when an administrator
// resolves the request.
func (h *SubmitCancellationCommandHandler) Handle(ctx context.Context, cmd SubmitCancellationCommand) error {
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

	orderNumber, err := h.lookupOrderNumber(ctx, uow, cmd.OrderRef())
	if err != nil {
		return err
	}

	cancellationRepo := uow.CancellationRepository()
	pending, err := cancellationRepo.GetPendingByOrderRef(ctx, cmd.OrderRef())
	if err != nil {
		return err
	}
	if pending != nil {
		return ErrCancellationAlreadyPending
	}

	request, err := cancellation.NewRequest(kernel.NewUUID(), cmd.OrderRef(), orderNumber, cmd.Reason(), h.clock())
	if err != nil {
		return err
	}

	if err = cancellationRepo.Add(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// lookupOrderNumber resolves the target order and checks it is in a
// status a cancellation could act on.
func (h *SubmitCancellationCommandHandler) lookupOrderNumber(
	ctx context.Context,
	uow CancellationIntakeUoW,
	ref kernel.OrderRef,
) (string, error) {
	switch ref.Kind() {
	case kernel.CustomOrder:
		aggregate, err := uow.CustomOrderRepository().Get(ctx, ref.ID())
		if err != nil {
			return "", err
		}
		if !aggregate.IsCancellable() {
			return "", ErrOrderNotCancellable
		}
		return aggregate.OrderNumber(), nil
	default:
		aggregate, err := uow.OrderRepository().Get(ctx, ref.ID())
		if err != nil {
			return "", err
		}
		if aggregate.Status() != order.Confirmed {
			return "", ErrOrderNotCancellable
		}
		return aggregate.OrderNumber(), nil
	}
}
