package cmd

import (
	"log/slog"

	"github.com/kurtadodoli/sevenfour-sub008/internal/adapters/in/http"
	"github.com/kurtadodoli/sevenfour-sub008/internal/adapters/out/kafka"
	"github.com/kurtadodoli/sevenfour-sub008/internal/adapters/out/postgres"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/application/usecases/commands"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/application/usecases/queries"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/services"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/ports"
	"github.com/kurtadodoli/sevenfour-sub008/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.OrderStatusNotifier
	policy     services.SchedulingPolicy
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	notifier := kafka.NewOrderStatusNotifier(
		[]string{configs.KafkaHost},
		configs.KafkaOrderStatusTopic,
		logger,
	)

	policy := services.NewSchedulingPolicy(
		configs.DeliveryMaxPerDay,
		configs.DeliveryLeadDays,
		configs.DeliveryEnforceLeadTime,
	)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		policy:     policy,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	var f commands.OrderStockUoWFactory = FuncOrderStockUoWFactory(func() commands.OrderStockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateSubmitCancellationCommandHandler() commands.SubmitCancellationCommandHandler {
	var f commands.CancellationIntakeUoWFactory = FuncCancellationIntakeUoWFactory(func() commands.CancellationIntakeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitCancellationCommandHandler(f)
}

func (c *CompositionRoot) CreateResolveCancellationCommandHandler() commands.ResolveCancellationCommandHandler {
	var f commands.CancellationUoWFactory = FuncCancellationUoWFactory(func() commands.CancellationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveCancellationCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateScheduleDeliveryCommandHandler() commands.ScheduleDeliveryCommandHandler {
	var f commands.SchedulingUoWFactory = FuncSchedulingUoWFactory(func() commands.SchedulingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewScheduleDeliveryCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateAdvanceDeliveryCommandHandler() commands.AdvanceDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceCustomOrderCommandHandler() commands.AdvanceCustomOrderCommandHandler {
	var f commands.CustomOrderUoWFactory = FuncCustomOrderUoWFactory(func() commands.CustomOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceCustomOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateFlagOverdueDeliveriesCommandHandler() commands.FlagOverdueDeliveriesCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFlagOverdueDeliveriesCommandHandler(f)
}

func (c *CompositionRoot) CreateGetStockSummaryQueryHandler() queries.GetStockSummaryQueryHandler {
	return queries.NewGetStockSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingCancellationsQueryHandler() queries.GetPendingCancellationsQueryHandler {
	return queries.NewGetPendingCancellationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryCalendarQueryHandler() queries.GetDeliveryCalendarQueryHandler {
	return queries.NewGetDeliveryCalendarQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateConfirmOrderCommandHandler(),
		c.CreateSubmitCancellationCommandHandler(),
		c.CreateResolveCancellationCommandHandler(),
		c.CreateScheduleDeliveryCommandHandler(),
		c.CreateAdvanceDeliveryCommandHandler(),
		c.CreateAssignCourierCommandHandler(),
		c.CreateCreateCourierCommandHandler(),
		c.CreateAdvanceCustomOrderCommandHandler(),
		c.CreateGetStockSummaryQueryHandler(),
		c.CreateGetPendingCancellationsQueryHandler(),
		c.CreateGetDeliveryCalendarQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateFlagOverdueDeliveriesCommandHandler(),
		c.logger,
	)
}

type FuncOrderStockUoWFactory func() commands.OrderStockUoW

func (f FuncOrderStockUoWFactory) Create() commands.OrderStockUoW {
	return f()
}

type FuncCancellationIntakeUoWFactory func() commands.CancellationIntakeUoW

func (f FuncCancellationIntakeUoWFactory) Create() commands.CancellationIntakeUoW {
	return f()
}

type FuncCancellationUoWFactory func() commands.CancellationUoW

func (f FuncCancellationUoWFactory) Create() commands.CancellationUoW {
	return f()
}

type FuncSchedulingUoWFactory func() commands.SchedulingUoW

func (f FuncSchedulingUoWFactory) Create() commands.SchedulingUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncCustomOrderUoWFactory func() commands.CustomOrderUoW

func (f FuncCustomOrderUoWFactory) Create() commands.CustomOrderUoW {
	return f()
}
