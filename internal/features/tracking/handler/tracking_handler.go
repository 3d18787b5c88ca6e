package handler

import (
	"errors"
	"strings"

	"storefront-orders/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
)

// TrackingHandler handles HTTP requests for tracking operations.
type TrackingHandler struct {
	trackingService *service.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(trackingService *service.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// GetTrackingLink godoc
// @Summary Get the carrier tracking link for a shipment
// @Description Builds the public carrier tracking page URL for a tracking number
// @Tags tracking
// @Accept json
// @Produce json
// @Param number path string true "Tracking Number"
// @Param carrier query string true "Carrier display name (e.g., UPS, USPS Priority Mail, FedEx)"
// @Success 200 {object} domain.TrackingLink
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tracking/{number} [get]
func (h *TrackingHandler) GetTrackingLink(c *fiber.Ctx) error {
	trackingNumber := strings.TrimSpace(c.Params("number"))
	if trackingNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "tracking number is required",
			RayID:   rayID(c),
		})
	}

	carrier := c.Query("carrier")
	if strings.TrimSpace(carrier) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "carrier query parameter is required",
			RayID:   rayID(c),
		})
	}

	link, err := h.trackingService.GetTrackingLink(trackingNumber, carrier)
	if err != nil {
		if errors.Is(err, service.ErrCarrierNotSupported) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Message: "carrier not supported",
				RayID:   rayID(c),
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}

	return c.JSON(link)
}

func rayID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
