// Package http provides the echo-based inbound adapter: route registration,
// request/response mapping, and translation of core errors to HTTP statuses.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/vendor"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const dateParamLayout = "2006-01-02"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler         commands.CreateOrderCommandHandler
	removeOrderHandler         commands.RemoveOrderCommandHandler
	setStoreOpenHandler        commands.SetStoreOpenCommandHandler
	updatePackSettingsHandler  commands.UpdatePackSettingsCommandHandler
	updateWorkingHoursHandler  commands.UpdateWorkingHoursCommandHandler
	updateVendorProfileHandler commands.UpdateVendorProfileCommandHandler

	// Query handlers
	getVendorOrdersHandler queries.GetVendorOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	removeOrderHandler commands.RemoveOrderCommandHandler,
	setStoreOpenHandler commands.SetStoreOpenCommandHandler,
	updatePackSettingsHandler commands.UpdatePackSettingsCommandHandler,
	updateWorkingHoursHandler commands.UpdateWorkingHoursCommandHandler,
	updateVendorProfileHandler commands.UpdateVendorProfileCommandHandler,
	getVendorOrdersHandler queries.GetVendorOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		removeOrderHandler:         removeOrderHandler,
		setStoreOpenHandler:        setStoreOpenHandler,
		updatePackSettingsHandler:  updatePackSettingsHandler,
		updateWorkingHoursHandler:  updateWorkingHoursHandler,
		updateVendorProfileHandler: updateVendorProfileHandler,
		getVendorOrdersHandler:     getVendorOrdersHandler,
	}
}

// RegisterRoutes attaches all marketplace routes under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1", IdentityMiddleware)

	api.POST("/orders", s.CreateOrder)

	api.GET("/vendor/orders", s.GetVendorOrders)
	api.GET("/vendor/orders/today", s.GetTodayOrders)
	api.DELETE("/vendor/orders/:code", s.RemoveOrder)

	api.POST("/vendor/store/open", s.OpenStore)
	api.POST("/vendor/store/close", s.CloseStore)
	api.PUT("/vendor/pack-settings", s.UpdatePackSettings)
	api.PUT("/vendor/working-hours", s.UpdateWorkingHours)
	api.PUT("/vendor/profile", s.UpdateVendorProfile)
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrStateIsInvalid):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func fail(ctx echo.Context, err error) error {
	status := errorStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}
	return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}

// CreateOrderItem is one requested line in an order payload.
type CreateOrderItem struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

// CreateOrderRequest is the order placement payload. The customer identity
// comes from the auth gateway, never from this body.
type CreateOrderRequest struct {
	VendorID     string            `json:"vendorId"`
	PhoneNumber  string            `json:"phoneNumber"`
	DeliveryType string            `json:"deliveryType"`
	Location     string            `json:"location"`
	Address      string            `json:"address"`
	Notes        string            `json:"notes"`
	Items        []CreateOrderItem `json:"items"`
}

// OrderItemResponse is one snapshotted line of a placed order.
type OrderItemResponse struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unitPrice"`
	Quantity   int     `json:"quantity"`
}

// OrderResponse is the placed-order payload returned to the customer.
type OrderResponse struct {
	OrderID      string              `json:"orderId"`
	VendorID     string              `json:"vendorId"`
	CustomerName string              `json:"customerName"`
	PhoneNumber  string              `json:"phoneNumber"`
	DeliveryType string              `json:"deliveryType"`
	Address      string              `json:"address"`
	Items        []OrderItemResponse `json:"items"`
	TotalAmount  float64             `json:"totalAmount"`
	Status       string              `json:"status"`
	CreatedAt    time.Time           `json:"createdAt"`
}

func orderToResponse(aggregate *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemResponse{
			MenuItemID: item.MenuItemID().String(),
			Name:       item.Name(),
			UnitPrice:  item.UnitPrice(),
			Quantity:   item.Quantity(),
		})
	}

	return OrderResponse{
		OrderID:      aggregate.Code().String(),
		VendorID:     aggregate.VendorID().String(),
		CustomerName: aggregate.Contact().Name,
		PhoneNumber:  aggregate.Contact().Phone,
		DeliveryType: aggregate.Delivery().Type,
		Address:      aggregate.Delivery().Address,
		Items:        items,
		TotalAmount:  aggregate.TotalAmount(),
		Status:       aggregate.Status().String(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	customerID, ok := customerIDFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "customer identity required",
		})
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	vendorID, err := kernel.UUIDFromString(req.VendorID)
	if err != nil {
		return fail(ctx, err)
	}

	items := make([]commands.ItemRequest, 0, len(req.Items))
	for _, item := range req.Items {
		menuItemID, idErr := kernel.UUIDFromString(item.MenuItemID)
		if idErr != nil {
			return fail(ctx, idErr)
		}
		items = append(items, commands.ItemRequest{MenuItemID: menuItemID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, vendorID, req.PhoneNumber,
		order.Delivery{
			Type:     req.DeliveryType,
			Location: req.Location,
			Address:  req.Address,
			Notes:    req.Notes,
		}, items)
	if err != nil {
		return fail(ctx, err)
	}

	placed, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(placed))
}

// OrdersPageResponse is the paginated listing payload.
type OrdersPageResponse struct {
	Orders     []OrderSummaryResponse `json:"orders"`
	Total      int64                  `json:"total"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	TotalPages int                    `json:"totalPages"`
}

// OrderSummaryResponse is one row of a vendor's order listing.
type OrderSummaryResponse struct {
	OrderID      string    `json:"orderId"`
	CustomerName string    `json:"customerName"`
	PhoneNumber  string    `json:"phoneNumber"`
	DeliveryType string    `json:"deliveryType"`
	Address      string    `json:"address"`
	TotalAmount  float64   `json:"totalAmount"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

func pageToResponse(page queries.OrdersPage) OrdersPageResponse {
	orders := make([]OrderSummaryResponse, 0, len(page.Orders))
	for _, summary := range page.Orders {
		orders = append(orders, OrderSummaryResponse{
			OrderID:      summary.Code,
			CustomerName: summary.CustomerName,
			PhoneNumber:  summary.PhoneNumber,
			DeliveryType: summary.DeliveryType,
			Address:      summary.Address,
			TotalAmount:  summary.TotalAmount,
			Status:       summary.Status,
			CreatedAt:    summary.CreatedAt,
		})
	}

	return OrdersPageResponse{
		Orders:     orders,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	}
}

// intParam parses a numeric query parameter, falling back to a default on
// absent or non-numeric input. Range clamping happens in the query itself.
func intParam(ctx echo.Context, name string, fallback int) int {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// dateParam parses a YYYY-MM-DD query parameter; malformed input counts as
// absent. endOfDay shifts the bound to 23:59:59.999 so ranges stay inclusive.
func dateParam(ctx echo.Context, name string, endOfDay bool) time.Time {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return time.Time{}
	}
	value, err := time.ParseInLocation(dateParamLayout, raw, time.Local)
	if err != nil {
		return time.Time{}
	}
	if endOfDay {
		value = value.Add(24*time.Hour - time.Millisecond)
	}
	return value
}

// GetVendorOrders handles GET /api/v1/vendor/orders.
func (s *Server) GetVendorOrders(ctx echo.Context) error {
	vendorID, ok := vendorIDFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "vendor identity required",
		})
	}

	query, err := queries.NewGetVendorOrdersQuery(
		vendorID,
		intParam(ctx, "page", 1),
		intParam(ctx, "limit", queries.DefaultPageLimit),
		ctx.QueryParam("search"),
		dateParam(ctx, "startDate", false),
		dateParam(ctx, "endDate", true),
	)
	if err != nil {
		return fail(ctx, err)
	}

	page, err := s.getVendorOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pageToResponse(page))
}

// GetTodayOrders handles GET /api/v1/vendor/orders/today.
func (s *Server) GetTodayOrders(ctx echo.Context) error {
	vendorID, ok := vendorIDFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "vendor identity required",
		})
	}

	query, err := queries.NewGetTodayOrdersQuery(
		vendorID,
		intParam(ctx, "page", 1),
		intParam(ctx, "limit", queries.DefaultPageLimit),
		ctx.QueryParam("search"),
		time.Now(),
	)
	if err != nil {
		return fail(ctx, err)
	}

	page, err := s.getVendorOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pageToResponse(page))
}

// RemoveOrder handles DELETE /api/v1/vendor/orders/:code.
func (s *Server) RemoveOrder(ctx echo.Context) error {
	vendorID, ok := vendorIDFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "vendor identity required",
		})
	}

	code, err := kernel.OrderCodeFromString(ctx.Param("code"))
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewRemoveOrderCommand(code, vendorID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.removeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) setStoreOpen(ctx echo.Context, open bool) error {
	vendorID, ok := vendorIDFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "vendor identity required",
		})
	}

	var (
		cmd commands.SetStoreOpenCommand
		err error
	)
	if open {
		cmd, err = commands.NewOpenStoreCommand(vendorID)
	} else {
		cmd, err = commands.NewCloseStoreCommand(vendorID)
	}
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.setStoreOpenHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]bool{"isStoreOpen": open})
}

// OpenStore handles POST /api/v1/vendor/store/open.
func (s *Server) OpenStore(ctx echo.Context) error {
	return s.setStoreOpen(ctx, true)
}

// CloseStore handles POST /api/v1/vendor/store/close.
func (s *Server) CloseStore(ctx echo.Context) error {
	return s.setStoreOpen(ctx, false)
}

// PackSettingsRequest is the full-replacement pack settings payload.
type PackSettingsRequest struct {
	Limit int     `json:"limit"`
	Price float64 `json:"price"`
}

// UpdatePackSettings handles PUT /api/v1/vendor/pack-settings.
func (s *Server) UpdatePackSettings(ctx echo.Context) error {
	vendorID, ok := vendorIDFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "vendor identity required",
		})
	}

	var req PackSettingsRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdatePackSettingsCommand(vendorID, req.Limit, req.Price)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.updatePackSettingsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, req)
}

// WorkingHoursRequest is a partial edit of one schedule day.
type WorkingHoursRequest struct {
	Day         string  `json:"day"`
	OpeningTime *string `json:"openingTime"`
	ClosingTime *string `json:"closingTime"`
	IsActive    *bool   `json:"isActive"`
}

// WorkingDayResponse is one row of the returned weekly schedule.
type WorkingDayResponse struct {
	Day         string `json:"day"`
	OpeningTime string `json:"openingTime"`
	ClosingTime string `json:"closingTime"`
	IsActive    bool   `json:"isActive"`
}

func workingHoursToResponse(week vendor.WorkingHours) []WorkingDayResponse {
	days := make([]WorkingDayResponse, 0, len(week.Days()))
	for _, day := range week.Days() {
		days = append(days, WorkingDayResponse{
			Day:         day.Day(),
			OpeningTime: day.OpeningTime(),
			ClosingTime: day.ClosingTime(),
			IsActive:    day.IsActive(),
		})
	}
	return days
}

// UpdateWorkingHours handles PUT /api/v1/vendor/working-hours.
func (s *Server) UpdateWorkingHours(ctx echo.Context) error {
	vendorID, ok := vendorIDFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "vendor identity required",
		})
	}

	var req WorkingHoursRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateWorkingHoursCommand(vendorID, req.Day, vendor.DayUpdate{
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return fail(ctx, err)
	}

	week, err := s.updateWorkingHoursHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, workingHoursToResponse(week))
}

// VendorProfileRequest is the allowlisted partial profile payload. Absent
// fields keep their stored values; fields outside this struct are not
// reachable through this endpoint.
type VendorProfileRequest struct {
	RestaurantName *string `json:"restaurantName"`
	Slug           *string `json:"slug"`
	Description    *string `json:"description"`
	PhoneNumber    *string `json:"phoneNumber"`
	Address        *string `json:"address"`
	City           *string `json:"city"`
	LogoURL        *string `json:"logoUrl"`
}

// VendorProfileResponse is the full vendor record after a profile update.
type VendorProfileResponse struct {
	VendorID       string  `json:"vendorId"`
	RestaurantName string  `json:"restaurantName"`
	Slug           string  `json:"slug"`
	Description    string  `json:"description"`
	PhoneNumber    string  `json:"phoneNumber"`
	Address        string  `json:"address"`
	City           string  `json:"city"`
	LogoURL        string  `json:"logoUrl"`
	IsStoreOpen    bool    `json:"isStoreOpen"`
	PackLimit      int     `json:"packLimit"`
	PackPrice      float64 `json:"packPrice"`
}

// UpdateVendorProfile handles PUT /api/v1/vendor/profile.
func (s *Server) UpdateVendorProfile(ctx echo.Context) error {
	vendorID, ok := vendorIDFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "vendor identity required",
		})
	}

	var req VendorProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateVendorProfileCommand(vendorID, vendor.ProfileUpdate{
		RestaurantName: req.RestaurantName,
		Slug:           req.Slug,
		Description:    req.Description,
		PhoneNumber:    req.PhoneNumber,
		Address:        req.Address,
		City:           req.City,
		LogoURL:        req.LogoURL,
	})
	if err != nil {
		return fail(ctx, err)
	}

	updated, err := s.updateVendorProfileHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	profile := updated.Profile()
	return ctx.JSON(http.StatusOK, VendorProfileResponse{
		VendorID:       updated.ID().String(),
		RestaurantName: profile.RestaurantName,
		Slug:           profile.Slug,
		Description:    profile.Description,
		PhoneNumber:    profile.PhoneNumber,
		Address:        profile.Address,
		City:           profile.City,
		LogoURL:        profile.LogoURL,
		IsStoreOpen:    updated.IsStoreOpen(),
		PackLimit:      updated.PackSettings().Limit(),
		PackPrice:      updated.PackSettings().Price(),
	})
}
