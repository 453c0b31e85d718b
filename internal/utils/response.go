package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope every endpoint answers with. Booking is used
// instead of Data by the PayPal capture endpoint.
type APIResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Booking interface{}       `json:"booking,omitempty"`
	Error   string            `json:"error,omitempty"`
	Details map[string]string `json:"details,omitempty"`
	Meta    *Meta             `json:"meta,omitempty"`
}

type Meta struct {
	Pagination *PaginationMeta `json:"pagination,omitempty"`
	Count      int             `json:"count,omitempty"`
}

func SuccessResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func SuccessResponseWithMeta(c *gin.Context, message string, data interface{}, meta *Meta) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

func CreatedResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func BookingCreatedResponse(c *gin.Context, message string, booking interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Message: message,
		Booking: booking,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message, errMsg string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Message: message,
		Error:   errMsg,
	})
}

func BadRequestResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, message, "")
}

func NotFoundResponse(c *gin.Context, resource string) {
	ErrorResponse(c, http.StatusNotFound, resource+" not found", "")
}

func UnauthorizedResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusUnauthorized, ErrUnauthorized, "")
}

// InternalServerErrorResponse echoes err to the caller.
func InternalServerErrorResponse(c *gin.Context, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	if message == "" {
		message = ErrInternalServer
	}
	ErrorResponse(c, http.StatusInternalServerError, message, errMsg)
}
