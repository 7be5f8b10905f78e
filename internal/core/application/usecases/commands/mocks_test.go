package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/application/usecases/commands"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/cancellation"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/courier"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/customorder"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/delivery"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/order"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/product"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	all, _ := args.Get(0).([]*product.Product)
	return all, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockCustomOrderRepository struct{ mock.Mock }

func (m *MockCustomOrderRepository) Add(ctx context.Context, o *customorder.CustomOrder) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockCustomOrderRepository) Update(ctx context.Context, o *customorder.CustomOrder) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockCustomOrderRepository) Get(ctx context.Context, id kernel.UUID) (*customorder.CustomOrder, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*customorder.CustomOrder)
	return o, args.Error(1)
}

func (m *MockCustomOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*customorder.CustomOrder, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*customorder.CustomOrder)
	return o, args.Error(1)
}

type MockCancellationRepository struct{ mock.Mock }

func (m *MockCancellationRepository) Add(ctx context.Context, r *cancellation.Request) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockCancellationRepository) Update(ctx context.Context, r *cancellation.Request) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockCancellationRepository) Get(ctx context.Context, id kernel.UUID) (*cancellation.Request, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*cancellation.Request)
	return r, args.Error(1)
}

func (m *MockCancellationRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*cancellation.Request, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*cancellation.Request)
	return r, args.Error(1)
}

func (m *MockCancellationRepository) GetPendingByOrderRef(ctx context.Context, ref kernel.OrderRef) (*cancellation.Request, error) {
	args := m.Called(ctx, ref)
	r, _ := args.Get(0).(*cancellation.Request)
	return r, args.Error(1)
}

func (m *MockCancellationRepository) GetAllPending(ctx context.Context) ([]*cancellation.Request, error) {
	args := m.Called(ctx)
	all, _ := args.Get(0).([]*cancellation.Request)
	return all, args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Upsert(ctx context.Context, s *delivery.Schedule) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, s *delivery.Schedule) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Schedule, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*delivery.Schedule)
	return s, args.Error(1)
}

func (m *MockDeliveryRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Schedule, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*delivery.Schedule)
	return s, args.Error(1)
}

func (m *MockDeliveryRepository) GetByOrderRef(ctx context.Context, ref kernel.OrderRef) (*delivery.Schedule, error) {
	args := m.Called(ctx, ref)
	s, _ := args.Get(0).(*delivery.Schedule)
	return s, args.Error(1)
}

func (m *MockDeliveryRepository) CountActiveOn(ctx context.Context, day time.Time, exclude kernel.OrderRef) (int, error) {
	args := m.Called(ctx, day, exclude)
	return args.Int(0), args.Error(1)
}

func (m *MockDeliveryRepository) GetAllBetween(ctx context.Context, from, to time.Time) ([]*delivery.Schedule, error) {
	args := m.Called(ctx, from, to)
	all, _ := args.Get(0).([]*delivery.Schedule)
	return all, args.Error(1)
}

func (m *MockDeliveryRepository) GetOverdueScheduled(ctx context.Context, before time.Time) ([]*delivery.Schedule, error) {
	args := m.Called(ctx, before)
	all, _ := args.Get(0).([]*delivery.Schedule)
	return all, args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*courier.Courier)
	return c, args.Error(1)
}

func (m *MockCourierRepository) GetAllActive(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	all, _ := args.Get(0).([]*courier.Courier)
	return all, args.Error(1)
}

// MockUoW satisfies every unit of work composition used by the command
// handlers. Tests wire only the repositories a handler touches.
type MockUoW struct {
	mock.Mock

	Products      *MockProductRepository
	Orders        *MockOrderRepository
	CustomOrders  *MockCustomOrderRepository
	Cancellations *MockCancellationRepository
	Deliveries    *MockDeliveryRepository
	Couriers      *MockCourierRepository
}

func NewMockUoW() *MockUoW {
	return &MockUoW{
		Products:      new(MockProductRepository),
		Orders:        new(MockOrderRepository),
		CustomOrders:  new(MockCustomOrderRepository),
		Cancellations: new(MockCancellationRepository),
		Deliveries:    new(MockDeliveryRepository),
		Couriers:      new(MockCourierRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) ProductRepository() ports.ProductRepository           { return m.Products }
func (m *MockUoW) OrderRepository() ports.OrderRepository               { return m.Orders }
func (m *MockUoW) CustomOrderRepository() ports.CustomOrderRepository   { return m.CustomOrders }
func (m *MockUoW) CancellationRepository() ports.CancellationRepository { return m.Cancellations }
func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository         { return m.Deliveries }
func (m *MockUoW) CourierRepository() ports.CourierRepository           { return m.Couriers }

type MockOrderStockUoWFactory struct{ mock.Mock }

func (m *MockOrderStockUoWFactory) Create() commands.OrderStockUoW {
	return m.Called().Get(0).(commands.OrderStockUoW)
}

type MockCancellationIntakeUoWFactory struct{ mock.Mock }

func (m *MockCancellationIntakeUoWFactory) Create() commands.CancellationIntakeUoW {
	return m.Called().Get(0).(commands.CancellationIntakeUoW)
}

type MockCancellationUoWFactory struct{ mock.Mock }

func (m *MockCancellationUoWFactory) Create() commands.CancellationUoW {
	return m.Called().Get(0).(commands.CancellationUoW)
}

type MockSchedulingUoWFactory struct{ mock.Mock }

func (m *MockSchedulingUoWFactory) Create() commands.SchedulingUoW {
	return m.Called().Get(0).(commands.SchedulingUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return m.Called().Get(0).(commands.DeliveryUoW)
}

type MockCourierUoWFactory struct{ mock.Mock }

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	return m.Called().Get(0).(commands.CourierUoW)
}

type MockCustomOrderUoWFactory struct{ mock.Mock }

func (m *MockCustomOrderUoWFactory) Create() commands.CustomOrderUoW {
	return m.Called().Get(0).(commands.CustomOrderUoW)
}

// mockNow is a fixed timestamp for request fixtures.
func mockNow(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyStatusChanged(ctx context.Context, ref kernel.OrderRef, orderNumber, status string) error {
	return m.Called(ctx, ref, orderNumber, status).Error(0)
}
