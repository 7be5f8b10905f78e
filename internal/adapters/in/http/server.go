package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/application/usecases/commands"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/application/usecases/queries"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/cancellation"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/courier"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/customorder"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/delivery"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/product"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/services"
	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// customOrderNumberPrefix marks order numbers issued for made-to-order
// items. The kind is resolved from it exactly once, here at the boundary.
const customOrderNumberPrefix = "CUSTOM-"

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	confirmOrderHandler        commands.ConfirmOrderCommandHandler
	submitCancellationHandler  commands.SubmitCancellationCommandHandler
	resolveCancellationHandler commands.ResolveCancellationCommandHandler
	scheduleDeliveryHandler    commands.ScheduleDeliveryCommandHandler
	advanceDeliveryHandler     commands.AdvanceDeliveryCommandHandler
	assignCourierHandler       commands.AssignCourierCommandHandler
	createCourierHandler       commands.CreateCourierCommandHandler
	advanceCustomOrderHandler  commands.AdvanceCustomOrderCommandHandler

	// Query handlers
	getStockSummaryHandler         queries.GetStockSummaryQueryHandler
	getPendingCancellationsHandler queries.GetPendingCancellationsQueryHandler
	getDeliveryCalendarHandler     queries.GetDeliveryCalendarQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	submitCancellationHandler commands.SubmitCancellationCommandHandler,
	resolveCancellationHandler commands.ResolveCancellationCommandHandler,
	scheduleDeliveryHandler commands.ScheduleDeliveryCommandHandler,
	advanceDeliveryHandler commands.AdvanceDeliveryCommandHandler,
	assignCourierHandler commands.AssignCourierCommandHandler,
	createCourierHandler commands.CreateCourierCommandHandler,
	advanceCustomOrderHandler commands.AdvanceCustomOrderCommandHandler,
	getStockSummaryHandler queries.GetStockSummaryQueryHandler,
	getPendingCancellationsHandler queries.GetPendingCancellationsQueryHandler,
	getDeliveryCalendarHandler queries.GetDeliveryCalendarQueryHandler,
) *Server {
	return &Server{
		confirmOrderHandler:            confirmOrderHandler,
		submitCancellationHandler:      submitCancellationHandler,
		resolveCancellationHandler:     resolveCancellationHandler,
		scheduleDeliveryHandler:        scheduleDeliveryHandler,
		advanceDeliveryHandler:         advanceDeliveryHandler,
		assignCourierHandler:           assignCourierHandler,
		createCourierHandler:           createCourierHandler,
		advanceCustomOrderHandler:      advanceCustomOrderHandler,
		getStockSummaryHandler:         getStockSummaryHandler,
		getPendingCancellationsHandler: getPendingCancellationsHandler,
		getDeliveryCalendarHandler:     getDeliveryCalendarHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders/:id/confirm", s.ConfirmOrder)
	api.POST("/custom-orders/:id/advance", s.AdvanceCustomOrder)

	api.POST("/cancellations", s.SubmitCancellation)
	api.POST("/cancellations/:id/resolve", s.ResolveCancellation)
	api.GET("/cancellations/pending", s.GetPendingCancellations)

	api.POST("/deliveries", s.ScheduleDelivery)
	api.POST("/deliveries/:id/advance", s.AdvanceDelivery)
	api.POST("/deliveries/:id/courier", s.AssignCourier)
	api.GET("/deliveries/calendar", s.GetDeliveryCalendar)

	api.POST("/couriers", s.CreateCourier)
	api.GET("/stock", s.GetStockSummary)
}

// ConfirmOrder handles POST /api/v1/orders/:id/confirm - verifies payment
// and reserves stock for a pending order.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceCustomOrder handles POST /api/v1/custom-orders/:id/advance - moves
// a custom order one step forward through its production lifecycle.
func (s *Server) AdvanceCustomOrder(ctx echo.Context) error {
	customOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid custom order ID")
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, ok := customOrderStatusFromString(body.Status)
	if !ok {
		return badRequest(ctx, "Unknown custom order status: "+body.Status)
	}

	cmd, err := commands.NewAdvanceCustomOrderCommand(customOrderID, target)
	if err != nil {
		return badRequest(ctx, "Invalid custom order data: "+err.Error())
	}

	if handleErr := s.advanceCustomOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitCancellation handles POST /api/v1/cancellations - files a
// cancellation request for a confirmed regular order or an active custom order.
func (s *Server) SubmitCancellation(ctx echo.Context) error {
	var body struct {
		OrderID     string `json:"order_id"`
		OrderNumber string `json:"order_number"`
		Reason      string `json:"reason"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ref, err := orderRefFromRequest(body.OrderID, body.OrderNumber)
	if err != nil {
		return badRequest(ctx, "Invalid order reference: "+err.Error())
	}

	cmd, err := commands.NewSubmitCancellationCommand(ref, body.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid cancellation data: "+err.Error())
	}

	if handleErr := s.submitCancellationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ResolveCancellation handles POST /api/v1/cancellations/:id/resolve -
// records the admin verdict on a pending request.
func (s *Server) ResolveCancellation(ctx echo.Context) error {
	requestID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid request ID")
	}

	var body struct {
		Decision   string `json:"decision"`
		AdminNotes string `json:"admin_notes"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	decision, ok := decisionFromString(body.Decision)
	if !ok {
		return badRequest(ctx, "Decision must be approve or reject")
	}

	cmd, err := commands.NewResolveCancellationCommand(requestID, decision, body.AdminNotes)
	if err != nil {
		return badRequest(ctx, "Invalid resolution data: "+err.Error())
	}

	if handleErr := s.resolveCancellationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPendingCancellations handles GET /api/v1/cancellations/pending -
// the admin review queue, oldest first.
func (s *Server) GetPendingCancellations(ctx echo.Context) error {
	query := queries.NewGetPendingCancellationsQuery()

	pending, err := s.getPendingCancellationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve pending cancellations")
	}

	type item struct {
		RequestID   string    `json:"request_id"`
		OrderID     string    `json:"order_id"`
		OrderKind   string    `json:"order_kind"`
		OrderNumber string    `json:"order_number"`
		Reason      string    `json:"reason"`
		RequestedAt time.Time `json:"requested_at"`
	}

	response := make([]item, len(pending))
	for i, p := range pending {
		response[i] = item{
			RequestID:   p.RequestID.String(),
			OrderID:     p.OrderID.String(),
			OrderKind:   p.OrderKind,
			OrderNumber: p.OrderNumber,
			Reason:      p.Reason,
			RequestedAt: p.RequestedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ScheduleDelivery handles POST /api/v1/deliveries - books or moves the
// delivery slot for an order.
func (s *Server) ScheduleDelivery(ctx echo.Context) error {
	var body struct {
		OrderID      string `json:"order_id"`
		OrderNumber  string `json:"order_number"`
		DeliveryDate string `json:"delivery_date"`
		TimeSlot     string `json:"time_slot"`
		Notes        string `json:"notes"`
		CourierID    string `json:"courier_id"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ref, err := orderRefFromRequest(body.OrderID, body.OrderNumber)
	if err != nil {
		return badRequest(ctx, "Invalid order reference: "+err.Error())
	}

	deliveryDate, err := time.Parse(dateLayout, body.DeliveryDate)
	if err != nil {
		return badRequest(ctx, "Delivery date must be formatted as YYYY-MM-DD")
	}

	var courierID *kernel.UUID
	if body.CourierID != "" {
		id, err := kernel.UUIDFromString(body.CourierID)
		if err != nil {
			return badRequest(ctx, "Invalid courier ID")
		}
		courierID = &id
	}

	cmd, err := commands.NewScheduleDeliveryCommand(ref, deliveryDate, body.TimeSlot, body.Notes, courierID)
	if err != nil {
		return badRequest(ctx, "Invalid schedule data: "+err.Error())
	}

	if handleErr := s.scheduleDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// AdvanceDelivery handles POST /api/v1/deliveries/:id/advance - moves a
// schedule to a new delivery status.
func (s *Server) AdvanceDelivery(ctx echo.Context) error {
	scheduleID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid schedule ID")
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, ok := deliveryStatusFromString(body.Status)
	if !ok {
		return badRequest(ctx, "Unknown delivery status: "+body.Status)
	}

	cmd, err := commands.NewAdvanceDeliveryCommand(scheduleID, target)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if handleErr := s.advanceDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignCourier handles POST /api/v1/deliveries/:id/courier - puts an
// active courier on a schedule.
func (s *Server) AssignCourier(ctx echo.Context) error {
	scheduleID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid schedule ID")
	}

	var body struct {
		CourierID string `json:"courier_id"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(body.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier ID")
	}

	cmd, err := commands.NewAssignCourierCommand(scheduleID, courierID)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	if handleErr := s.assignCourierHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDeliveryCalendar handles GET /api/v1/deliveries/calendar?from=&to= -
// all schedules in the half-open date range, with courier names.
func (s *Server) GetDeliveryCalendar(ctx echo.Context) error {
	from, err := time.Parse(dateLayout, ctx.QueryParam("from"))
	if err != nil {
		return badRequest(ctx, "from must be formatted as YYYY-MM-DD")
	}

	to, err := time.Parse(dateLayout, ctx.QueryParam("to"))
	if err != nil {
		return badRequest(ctx, "to must be formatted as YYYY-MM-DD")
	}

	query, err := queries.NewGetDeliveryCalendarQuery(from, to)
	if err != nil {
		return badRequest(ctx, "Invalid calendar range: "+err.Error())
	}

	schedules, err := s.getDeliveryCalendarHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve delivery calendar")
	}

	type item struct {
		ScheduleID   string `json:"schedule_id"`
		OrderID      string `json:"order_id"`
		OrderKind    string `json:"order_kind"`
		DeliveryDate string `json:"delivery_date"`
		TimeSlot     string `json:"time_slot"`
		Status       string `json:"status"`
		CourierName  string `json:"courier_name,omitempty"`
		Notes        string `json:"notes,omitempty"`
	}

	response := make([]item, len(schedules))
	for i, sched := range schedules {
		response[i] = item{
			ScheduleID:   sched.ScheduleID.String(),
			OrderID:      sched.OrderID.String(),
			OrderKind:    sched.OrderKind,
			DeliveryDate: sched.DeliveryDate.Format(dateLayout),
			TimeSlot:     sched.TimeSlot,
			Status:       sched.Status,
			CourierName:  sched.CourierName,
			Notes:        sched.Notes,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCourier handles POST /api/v1/couriers - registers a new courier.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var body struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID := kernel.NewUUID()

	cmd, err := commands.NewCreateCourierCommand(courierID, body.Name, body.Phone)
	if err != nil {
		return badRequest(ctx, "Invalid courier data: "+err.Error())
	}

	if handleErr := s.createCourierHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": courierID.String()})
}

// GetStockSummary handles GET /api/v1/stock - per-product stock counters
// and derived stock status.
func (s *Server) GetStockSummary(ctx echo.Context) error {
	query := queries.NewGetStockSummaryQuery()

	products, err := s.getStockSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve stock summary")
	}

	type item struct {
		ProductID      string `json:"product_id"`
		Name           string `json:"name"`
		TotalStock     int    `json:"total_stock"`
		AvailableStock int    `json:"available_stock"`
		ReservedStock  int    `json:"reserved_stock"`
		Status         string `json:"status"`
	}

	response := make([]item, len(products))
	for i, p := range products {
		response[i] = item{
			ProductID:      p.ProductID.String(),
			Name:           p.Name,
			TotalStock:     p.TotalStock,
			AvailableStock: p.AvailableStock,
			ReservedStock:  p.ReservedStock,
			Status:         p.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// orderRefFromRequest resolves the order kind from the order number
// prefix and builds the reference used across aggregates.
func orderRefFromRequest(orderID, orderNumber string) (kernel.OrderRef, error) {
	id, err := kernel.UUIDFromString(orderID)
	if err != nil {
		return kernel.OrderRef{}, err
	}

	kind := kernel.RegularOrder
	if strings.HasPrefix(orderNumber, customOrderNumberPrefix) {
		kind = kernel.CustomOrder
	}

	return kernel.NewOrderRef(kind, id)
}

func decisionFromString(s string) (commands.Decision, bool) {
	switch s {
	case "approve":
		return commands.DecisionApprove, true
	case "reject":
		return commands.DecisionReject, true
	default:
		return commands.UnknownDecision, false
	}
}

func deliveryStatusFromString(s string) (delivery.Status, bool) {
	switch s {
	case "scheduled":
		return delivery.Scheduled, true
	case "in_transit":
		return delivery.InTransit, true
	case "delivered":
		return delivery.Delivered, true
	case "delayed":
		return delivery.Delayed, true
	case "cancelled":
		return delivery.Cancelled, true
	default:
		return delivery.Unknown, false
	}
}

func customOrderStatusFromString(s string) (customorder.Status, bool) {
	switch s {
	case "pending":
		return customorder.Pending, true
	case "approved":
		return customorder.Approved, true
	case "confirmed":
		return customorder.Confirmed, true
	case "in_production":
		return customorder.InProduction, true
	case "completed":
		return customorder.Completed, true
	case "cancelled":
		return customorder.Cancelled, true
	default:
		return customorder.Unknown, false
	}
}

// commandError maps a command handler failure to an HTTP status: missing
// aggregates are 404, business rule conflicts are 409, everything else
// is a 500. Input validation happens before the handler runs, so an
// invalid-value error surfacing here is an illegal state transition.
func commandError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	case isConflict(err), errors.Is(err, errs.ErrValueIsInvalid):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		return internalError(ctx, err.Error())
	}
}

func isConflict(err error) bool {
	conflicts := []error{
		commands.ErrOrderNotCancellable,
		commands.ErrCancellationAlreadyPending,
		commands.ErrOrderNotSchedulable,
		services.ErrCapacityExceeded,
		services.ErrTooEarly,
		cancellation.ErrAlreadyResolved,
		courier.ErrCourierInactive,
		customorder.ErrNotYetApproved,
		delivery.ErrNotReschedulable,
		product.ErrInsufficientStock,
	}
	for _, conflict := range conflicts {
		if errors.Is(err, conflict) {
			return true
		}
	}
	return false
}

func badRequest(ctx echo.Context, message string) error {
	return errorResponse(ctx, http.StatusBadRequest, message)
}

func internalError(ctx echo.Context, message string) error {
	return errorResponse(ctx, http.StatusInternalServerError, message)
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}
