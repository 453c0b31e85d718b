package handlers

import (
	"errors"
	"net/http"

	"carbooking/internal/services"
	"carbooking/internal/utils"
	"carbooking/internal/validators"
	"carbooking/pkg/logger"
	"carbooking/pkg/maps"

	"github.com/gin-gonic/gin"
)

// handleServiceError maps service errors onto the response envelope.
func handleServiceError(c *gin.Context, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidID):
		utils.BadRequestResponse(c, utils.ErrInvalidID)
	case errors.Is(err, services.ErrCarNotFound):
		utils.NotFoundResponse(c, "Car")
	case errors.Is(err, services.ErrDomainNotFound):
		utils.NotFoundResponse(c, "Domain")
	case errors.Is(err, services.ErrBookingNotFound):
		utils.NotFoundResponse(c, "Booking")
	case errors.Is(err, services.ErrDomainExists):
		utils.BadRequestResponse(c, utils.ErrDomainExists)
	case errors.Is(err, services.ErrCancellationWindowExpired):
		utils.BadRequestResponse(c, utils.ErrWindowExpired)
	case errors.Is(err, services.ErrAlreadyCancelled):
		utils.BadRequestResponse(c, utils.ErrAlreadyCancelled)
	case errors.Is(err, services.ErrCarTypeImmutable):
		utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, services.ErrPaymentNotCompleted):
		utils.ErrorResponse(c, http.StatusBadRequest, utils.ErrPaymentNotCompleted, err.Error())
	case errors.Is(err, utils.ErrUnsupportedImage):
		utils.BadRequestResponse(c, "Image must be a JPG, PNG or GIF file")
	case errors.Is(err, services.ErrEmailNotConfigured):
		log.WithRequestID(c.GetString("request_id")).Error("Booking rejected, email service is not configured")
		utils.InternalServerErrorResponse(c, utils.ErrEmailNotConfigured, nil)
	case errors.Is(err, maps.ErrMissingAPIKey), errors.Is(err, services.ErrPaymentNotConfigured),
		errors.Is(err, services.ErrImageStorageDisabled):
		utils.InternalServerErrorResponse(c, "", err)
	default:
		log.WithRequestID(c.GetString("request_id")).WithError(err).
			WithField("path", c.Request.URL.Path).Error("Request failed")
		utils.InternalServerErrorResponse(c, "", err)
	}
}

// validationFailed answers 400. Missing required fields are named in the
// message.
func validationFailed(c *gin.Context, errs validators.ValidationErrors) {
	message := validators.MissingFieldsMessage(errs)
	if message == "" {
		message = utils.ErrValidationFailed
	}
	c.JSON(http.StatusBadRequest, utils.APIResponse{
		Success: false,
		Message: message,
		Details: errs.Details(),
	})
}

func invalidBody(c *gin.Context, err error) {
	utils.ErrorResponse(c, http.StatusBadRequest, utils.ErrInvalidRequestBody, err.Error())
}
