package commands_test

import (
	"testing"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/application/usecases/commands"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/cancellation"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/customorder"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitCancellationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	aggregate := pendingOrder(t, productID, 1)
	require.NoError(t, aggregate.Confirm())

	ref, err := kernel.NewOrderRef(kernel.RegularOrder, aggregate.ID())
	require.NoError(t, err)

	cmd, err := commands.NewSubmitCancellationCommand(ref, "wrong size ordered")
	require.NoError(t, err)

	uow := NewMockUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.Orders.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.Cancellations.On("GetPendingByOrderRef", ctx, ref).Return(nil, nil).Once(),
		uow.Cancellations.On("Add", ctx, mock.AnythingOfType("*cancellation.Request")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCancellationIntakeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitCancellationCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}

func TestSubmitCancellationCommandHandler_Handle_DuplicatePending(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	aggregate := pendingOrder(t, productID, 1)
	require.NoError(t, aggregate.Confirm())

	ref, err := kernel.NewOrderRef(kernel.RegularOrder, aggregate.ID())
	require.NoError(t, err)

	existing, err := cancellation.NewRequest(
		kernel.NewUUID(), ref, aggregate.OrderNumber(), "first request", mockNow(t))
	require.NoError(t, err)

	cmd, err := commands.NewSubmitCancellationCommand(ref, "second request")
	require.NoError(t, err)

	uow := NewMockUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.Orders.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.Cancellations.On("GetPendingByOrderRef", ctx, ref).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCancellationIntakeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitCancellationCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), commands.ErrCancellationAlreadyPending)
	uow.AssertExpectations(t)
}

func TestSubmitCancellationCommandHandler_Handle_UnconfirmedCustomOrderNotCancellable(t *testing.T) {
	ctx := t.Context()

	aggregate, err := customorder.NewCustomOrder(kernel.NewUUID(), "CUSTOM-3002", kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, aggregate.AdvanceTo(customorder.Approved, mockNow(t)))

	ref, err := kernel.NewOrderRef(kernel.CustomOrder, aggregate.ID())
	require.NoError(t, err)

	cmd, err := commands.NewSubmitCancellationCommand(ref, "changed my mind on the design")
	require.NoError(t, err)

	uow := NewMockUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.CustomOrders.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCancellationIntakeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitCancellationCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), commands.ErrOrderNotCancellable)
	uow.AssertExpectations(t)
}

func TestSubmitCancellationCommandHandler_Handle_PendingOrderNotCancellable(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	aggregate := pendingOrder(t, productID, 1) // never confirmed

	ref, err := kernel.NewOrderRef(kernel.RegularOrder, aggregate.ID())
	require.NoError(t, err)

	cmd, err := commands.NewSubmitCancellationCommand(ref, "reason")
	require.NoError(t, err)

	uow := NewMockUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.Orders.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCancellationIntakeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitCancellationCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), commands.ErrOrderNotCancellable)
	uow.AssertExpectations(t)
}
