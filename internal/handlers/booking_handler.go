package handlers

import (
	"carbooking/internal/models"
	"carbooking/internal/repositories/interfaces"
	"carbooking/internal/services"
	"carbooking/internal/utils"
	"carbooking/internal/validators"
	"carbooking/pkg/logger"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingService services.BookingService
	logger         *logger.Logger
}

func NewBookingHandler(bookingService services.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		logger:         log,
	}
}

// CreateBooking stores a booking and notifies admin and passenger. A failed
// notification is reported in notificationStatus, not as an error.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	input, err := decodeBookingInput(c)
	if err != nil {
		invalidBody(c, err)
		return
	}

	if errs := validators.ValidateBookingInput(input); len(errs) > 0 {
		validationFailed(c, errs)
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), input)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	utils.CreatedResponse(c, "Booking created successfully", gin.H{
		"id":                 booking.ID,
		"bookingReference":   booking.BookingReference,
		"notificationStatus": booking.NotificationStatus,
	})
}

func (h *BookingHandler) ListBookings(c *gin.Context) {
	filter := interfaces.BookingFilter{
		Email:  c.Query("email"),
		Status: models.BookingStatus(c.Query("status")),
	}
	params := utils.GetPaginationParams(c)

	bookings, total, err := h.bookingService.ListBookings(c.Request.Context(), filter, params)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "", bookings, &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
		Count:      len(bookings),
	})
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.bookingService.GetBooking(c.Request.Context(), c.Param("reference"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "", booking)
}

// CancelBooking handles PATCH {"status":"cancelled"}; no other status change
// is accepted.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	var req validators.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}
	if errs := validators.ValidateCancelRequest(&req); len(errs) > 0 {
		utils.BadRequestResponse(c, utils.ErrInvalidStatusChange)
		return
	}

	booking, err := h.bookingService.CancelBooking(c.Request.Context(), c.Param("reference"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Booking cancelled successfully", booking)
}
