package handlers

import (
	"strings"

	"carbooking/internal/services"
	"carbooking/internal/utils"
	"carbooking/pkg/logger"

	"github.com/gin-gonic/gin"
)

type RouteHandler struct {
	routeService services.RouteService
	logger       *logger.Logger
}

func NewRouteHandler(routeService services.RouteService, log *logger.Logger) *RouteHandler {
	return &RouteHandler{
		routeService: routeService,
		logger:       log,
	}
}

// EstimateRoute geocodes ?from= and ?to= and returns the driving route.
func (h *RouteHandler) EstimateRoute(c *gin.Context) {
	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))
	if from == "" || to == "" {
		utils.BadRequestResponse(c, "from and to query parameters are required")
		return
	}

	estimate, err := h.routeService.Estimate(c.Request.Context(), from, to)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "", estimate)
}
