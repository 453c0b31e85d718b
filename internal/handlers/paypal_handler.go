package handlers

import (
	"carbooking/internal/services"
	"carbooking/internal/utils"
	"carbooking/internal/validators"
	"carbooking/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PayPalHandler struct {
	paymentService services.PaymentService
	logger         *logger.Logger
}

func NewPayPalHandler(paymentService services.PaymentService, log *logger.Logger) *PayPalHandler {
	return &PayPalHandler{
		paymentService: paymentService,
		logger:         log,
	}
}

type captureOrderRequest struct {
	OrderID     string                 `json:"orderID"`
	BookingData map[string]interface{} `json:"bookingData"`
}

func (h *PayPalHandler) CreateOrder(c *gin.Context) {
	var req validators.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}
	if errs := validators.ValidateCreateOrder(&req); len(errs) > 0 {
		validationFailed(c, errs)
		return
	}

	order, err := h.paymentService.CreateOrder(c.Request.Context(), decimal.NewFromFloat(req.Amount), req.Currency)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	if order.Raw != nil {
		utils.SuccessResponse(c, "", order.Raw)
		return
	}
	utils.SuccessResponse(c, "", order)
}

// CaptureOrder captures an approved order and books the trip. The booking
// payload is validated before any money moves.
func (h *PayPalHandler) CaptureOrder(c *gin.Context) {
	var req captureOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}
	if req.OrderID == "" {
		utils.BadRequestResponse(c, "orderID is required")
		return
	}
	if req.BookingData == nil {
		utils.BadRequestResponse(c, "bookingData is required")
		return
	}

	input, err := bookingInputFromMap(req.BookingData)
	if err != nil {
		invalidBody(c, err)
		return
	}
	if errs := validators.ValidateBookingInput(input); len(errs) > 0 {
		validationFailed(c, errs)
		return
	}

	booking, err := h.paymentService.CaptureOrder(c.Request.Context(), req.OrderID, input)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	utils.BookingCreatedResponse(c, "Payment captured and booking created", booking)
}
