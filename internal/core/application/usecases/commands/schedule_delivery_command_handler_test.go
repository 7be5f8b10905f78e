package commands_test

import (
	"testing"
	"time"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/application/usecases/commands"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/courier"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/customorder"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/delivery"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func defaultPolicy() services.SchedulingPolicy {
	return services.NewSchedulingPolicy(3, 10, true)
}

func confirmedCustomOrder(t *testing.T, approvedAt time.Time) *customorder.CustomOrder {
	t.Helper()

	aggregate, err := customorder.NewCustomOrder(kernel.NewUUID(), "CUSTOM-3001", kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, aggregate.AdvanceTo(customorder.Approved, approvedAt))
	require.NoError(t, aggregate.AdvanceTo(customorder.Confirmed, approvedAt))

	return aggregate
}

func TestScheduleDeliveryCommandHandler_Handle_BooksNewSchedule(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	aggregate := pendingOrder(t, productID, 1)
	require.NoError(t, aggregate.Confirm())

	ref, err := kernel.NewOrderRef(kernel.RegularOrder, aggregate.ID())
	require.NoError(t, err)

	date := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	cmd, err := commands.NewScheduleDeliveryCommand(ref, date, "morning", "", nil)
	require.NoError(t, err)

	uow := NewMockUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.Orders.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.Deliveries.On("CountActiveOn", ctx, date, ref).Return(1, nil).Once(),
		uow.Deliveries.On("GetByOrderRef", ctx, ref).Return(nil, nil).Once(),
		uow.Deliveries.On("Upsert", ctx, mock.AnythingOfType("*delivery.Schedule")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSchedulingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewScheduleDeliveryCommandHandler(factory, defaultPolicy())
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}

func TestScheduleDeliveryCommandHandler_Handle_BooksWithCourier(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	aggregate := pendingOrder(t, productID, 1)
	require.NoError(t, aggregate.Confirm())

	assignee, err := courier.NewCourier(kernel.NewUUID(), "Dana Reyes", "+63-917-555-0101")
	require.NoError(t, err)
	courierID := assignee.ID()

	ref, err := kernel.NewOrderRef(kernel.RegularOrder, aggregate.ID())
	require.NoError(t, err)

	date := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	cmd, err := commands.NewScheduleDeliveryCommand(ref, date, "morning", "", &courierID)
	require.NoError(t, err)

	uow := NewMockUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.Orders.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.Deliveries.On("CountActiveOn", ctx, date, ref).Return(0, nil).Once(),
		uow.Deliveries.On("GetByOrderRef", ctx, ref).Return(nil, nil).Once(),
		uow.Couriers.On("Get", ctx, courierID).Return(assignee, nil).Once(),
		uow.Deliveries.On("Upsert", ctx, mock.MatchedBy(func(s *delivery.Schedule) bool {
			return s.CourierID() != nil && s.CourierID().IsEqual(courierID)
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSchedulingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewScheduleDeliveryCommandHandler(factory, defaultPolicy())
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}

func TestScheduleDeliveryCommandHandler_Handle_RebooksCancelledScheduleInPlace(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	aggregate := pendingOrder(t, productID, 1)
	require.NoError(t, aggregate.Confirm())

	ref, err := kernel.NewOrderRef(kernel.RegularOrder, aggregate.ID())
	require.NoError(t, err)

	cancelled, err := delivery.NewSchedule(kernel.NewUUID(), ref,
		time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), "morning")
	require.NoError(t, err)
	require.NoError(t, cancelled.Advance(delivery.Cancelled))

	date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	cmd, err := commands.NewScheduleDeliveryCommand(ref, date, "afternoon", "", nil)
	require.NoError(t, err)

	uow := NewMockUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.Orders.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.Deliveries.On("CountActiveOn", ctx, date, ref).Return(0, nil).Once(),
		uow.Deliveries.On("GetByOrderRef", ctx, ref).Return(cancelled, nil).Once(),
		uow.Deliveries.On("Upsert", ctx, mock.MatchedBy(func(s *delivery.Schedule) bool {
			return s.ID().IsEqual(cancelled.ID()) && s.Status() == delivery.Scheduled
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSchedulingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewScheduleDeliveryCommandHandler(factory, defaultPolicy())
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}

func TestScheduleDeliveryCommandHandler_Handle_DayFull(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	aggregate := pendingOrder(t, productID, 1)
	require.NoError(t, aggregate.Confirm())

	ref, err := kernel.NewOrderRef(kernel.RegularOrder, aggregate.ID())
	require.NoError(t, err)

	date := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	cmd, err := commands.NewScheduleDeliveryCommand(ref, date, "morning", "", nil)
	require.NoError(t, err)

	uow := NewMockUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.Orders.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.Deliveries.On("CountActiveOn", ctx, date, ref).Return(3, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSchedulingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewScheduleDeliveryCommandHandler(factory, defaultPolicy())
	require.ErrorIs(t, h.Handle(ctx, cmd), services.ErrCapacityExceeded)
	uow.AssertExpectations(t)
	uow.Deliveries.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestScheduleDeliveryCommandHandler_Handle_CustomOrderInsideLeadTime(t *testing.T) {
	ctx := t.Context()
	approvedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	aggregate := confirmedCustomOrder(t, approvedAt)

	ref, err := kernel.NewOrderRef(kernel.CustomOrder, aggregate.ID())
	require.NoError(t, err)

	// Five days after approval, lead time is ten.
	cmd, err := commands.NewScheduleDeliveryCommand(ref,
		time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC), "morning", "", nil)
	require.NoError(t, err)

	uow := NewMockUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.CustomOrders.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSchedulingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewScheduleDeliveryCommandHandler(factory, defaultPolicy())
	require.ErrorIs(t, h.Handle(ctx, cmd), services.ErrTooEarly)
	uow.AssertExpectations(t)
}

func TestScheduleDeliveryCommandHandler_Handle_CustomOrderPastLeadTime(t *testing.T) {
	ctx := t.Context()
	approvedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	aggregate := confirmedCustomOrder(t, approvedAt)

	ref, err := kernel.NewOrderRef(kernel.CustomOrder, aggregate.ID())
	require.NoError(t, err)

	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	cmd, err := commands.NewScheduleDeliveryCommand(ref, date, "afternoon", "", nil)
	require.NoError(t, err)

	uow := NewMockUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.CustomOrders.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.Deliveries.On("CountActiveOn", ctx, date, ref).Return(0, nil).Once(),
		uow.Deliveries.On("GetByOrderRef", ctx, ref).Return(nil, nil).Once(),
		uow.Deliveries.On("Upsert", ctx, mock.AnythingOfType("*delivery.Schedule")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSchedulingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewScheduleDeliveryCommandHandler(factory, defaultPolicy())
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}

func TestScheduleDeliveryCommandHandler_Handle_MovesExistingSchedule(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	aggregate := pendingOrder(t, productID, 1)
	require.NoError(t, aggregate.Confirm())

	ref, err := kernel.NewOrderRef(kernel.RegularOrder, aggregate.ID())
	require.NoError(t, err)

	existing, err := delivery.NewSchedule(kernel.NewUUID(), ref,
		time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), "morning")
	require.NoError(t, err)

	newDate := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	cmd, err := commands.NewScheduleDeliveryCommand(ref, newDate, "evening", "call ahead", nil)
	require.NoError(t, err)

	uow := NewMockUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.Orders.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.Deliveries.On("CountActiveOn", ctx, newDate, ref).Return(2, nil).Once(),
		uow.Deliveries.On("GetByOrderRef", ctx, ref).Return(existing, nil).Once(),
		uow.Deliveries.On("Upsert", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSchedulingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewScheduleDeliveryCommandHandler(factory, defaultPolicy())
	require.NoError(t, h.Handle(ctx, cmd))

	require.True(t, existing.DeliveryDate().Equal(newDate))
	require.Equal(t, "evening", existing.TimeSlot())
	require.Equal(t, "call ahead", existing.Notes())
	uow.AssertExpectations(t)
}
