package handler

import (
	"errors"
	"net/http"
	"strings"

	"storefront-orders/internal/core/logger"
	"storefront-orders/internal/core/validation"
	"storefront-orders/internal/features/orders/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrderHandler handles HTTP requests related to orders.
type OrderHandler struct {
	// service is the OrderService instance.
	service *service.OrderService
	// validator checks query parameters.
	validator *validation.Validator
}

// NewOrderHandler creates a new instance of OrderHandler.
func NewOrderHandler(s *service.OrderService, v *validation.Validator) *OrderHandler {
	return &OrderHandler{
		service:   s,
		validator: v,
	}
}

// historyQuery are the order history query parameters.
type historyQuery struct {
	Year     string `query:"year" validate:"omitempty,eq=all|numeric"`
	Query    string `query:"q" validate:"max=100"`
	Sort     string `query:"sort"`
	Page     int    `query:"page" validate:"gte=0,lte=100000"`
	PageSize int    `query:"page_size" validate:"gte=0"`
}

// thumbnailQuery are the thumbnail row query parameters.
type thumbnailQuery struct {
	Width *float64 `query:"width" validate:"required,gte=0"`
	Tile  *float64 `query:"tile" validate:"omitempty,gt=0"`
	Gap   *float64 `query:"gap" validate:"omitempty,gte=0"`
}

// GetOrder returns the order detail view.
// @Summary Get order detail
// @Description Fetch an order normalized into fulfillment groups with badges and item actions.
// @Tags orders
// @Accept json
// @Produce json
// @Param number path string true "Order Number"
// @Success 200 {object} service.OrderDetail
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /orders/{number} [get]
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	number := strings.TrimSpace(c.Params("number"))
	rayID := requestID(c)

	if number == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Order number is required",
			RayID:   rayID,
		})
	}

	detail, err := h.service.GetOrderDetail(c.UserContext(), number)
	if err != nil {
		return h.fail(c, err, zap.String("order_number", number))
	}

	return c.Status(http.StatusOK).JSON(detail)
}

// ListCustomerOrders returns a page of a customer's order history.
// @Summary List order history
// @Description Filter by year and free text, sort, and paginate a customer's orders.
// @Tags orders
// @Accept json
// @Produce json
// @Param customerId path string true "Customer ID"
// @Param year query string false "4-digit year or all"
// @Param q query string false "Matches order number, status or item name"
// @Param sort query string false "date_desc (default), date_asc, total_desc, total_asc"
// @Param page query int false "1-based page"
// @Param page_size query int false "Orders per page"
// @Success 200 {object} service.OrderHistory
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /customers/{customerId}/orders [get]
func (h *OrderHandler) ListCustomerOrders(c *fiber.Ctx) error {
	customerID := strings.TrimSpace(c.Params("customerId"))
	rayID := requestID(c)

	if customerID == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Customer ID is required",
			RayID:   rayID,
		})
	}

	var q historyQuery
	if err := h.parseQuery(c, &q); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID,
		})
	}

	history, err := h.service.ListOrderHistory(c.UserContext(), customerID, service.ListParams{
		Year:     q.Year,
		Query:    q.Query,
		Sort:     q.Sort,
		Page:     q.Page,
		PageSize: q.PageSize,
	})
	if err != nil {
		return h.fail(c, err, zap.String("customer_id", customerID))
	}

	return c.Status(http.StatusOK).JSON(history)
}

// GetThumbnails lays out the order's item thumbnails for a row width.
// @Summary Get thumbnail row layout
// @Description Decide how many item thumbnails fit in a row and the "+N" overflow badge.
// @Tags orders
// @Accept json
// @Produce json
// @Param number path string true "Order Number"
// @Param width query number true "Row width in px"
// @Param tile query number false "Tile size in px"
// @Param gap query number false "Gap between tiles in px"
// @Success 200 {object} service.ThumbnailStrip
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/{number}/thumbnails [get]
func (h *OrderHandler) GetThumbnails(c *fiber.Ctx) error {
	number := strings.TrimSpace(c.Params("number"))
	rayID := requestID(c)

	var q thumbnailQuery
	if err := h.parseQuery(c, &q); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID,
		})
	}

	strip, err := h.service.Thumbnails(c.UserContext(), number, service.ThumbnailParams{
		Width: *q.Width,
		Tile:  q.Tile,
		Gap:   q.Gap,
	})
	if err != nil {
		return h.fail(c, err, zap.String("order_number", number))
	}

	return c.Status(http.StatusOK).JSON(strip)
}

func (h *OrderHandler) parseQuery(c *fiber.Ctx, out any) error {
	if err := c.QueryParser(out); err != nil {
		return errors.New("invalid query parameters")
	}
	return h.validator.Struct(out)
}

func (h *OrderHandler) fail(c *fiber.Ctx, err error, fields ...zap.Field) error {
	rayID := requestID(c)

	status := http.StatusInternalServerError
	msg := "Internal Server Error"

	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		status = http.StatusNotFound
		msg = "Order not found"
	case errors.Is(err, service.ErrInvalidLayout):
		status = http.StatusBadRequest
		msg = err.Error()
	default:
		logger.Get().Error("Order request failed",
			append(fields, zap.String("ray_id", rayID), zap.Error(err))...,
		)
	}

	return c.Status(status).JSON(ErrorResponse{
		Message: msg,
		RayID:   rayID,
	})
}

func requestID(c *fiber.Ctx) string {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return rayID
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}
