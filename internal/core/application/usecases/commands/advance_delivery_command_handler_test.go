package commands_test

import (
	"testing"
	"time"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/application/usecases/commands"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/delivery"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func scheduledDelivery(t *testing.T) *delivery.Schedule {
	t.Helper()

	schedule, err := delivery.NewSchedule(kernel.NewUUID(), regularRef(t),
		time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), "morning")
	require.NoError(t, err)

	return schedule
}

func TestAdvanceDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	schedule := scheduledDelivery(t)

	cmd, err := commands.NewAdvanceDeliveryCommand(schedule.ID(), delivery.InTransit)
	require.NoError(t, err)

	uow := NewMockUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.Deliveries.On("GetForUpdate", ctx, schedule.ID()).Return(schedule, nil).Once(),
		uow.Deliveries.On("Update", ctx, schedule).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceDeliveryCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, delivery.InTransit, schedule.Status())
	uow.AssertExpectations(t)
}

func TestAdvanceDeliveryCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	schedule := scheduledDelivery(t)
	require.NoError(t, schedule.Advance(delivery.Delivered))

	cmd, err := commands.NewAdvanceDeliveryCommand(schedule.ID(), delivery.InTransit)
	require.NoError(t, err)

	uow := NewMockUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.Deliveries.On("GetForUpdate", ctx, schedule.ID()).Return(schedule, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceDeliveryCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
	uow.Deliveries.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
