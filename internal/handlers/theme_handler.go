package handlers

import (
	"carbooking/internal/services"
	"carbooking/internal/utils"
	"carbooking/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ThemeHandler struct {
	themeService services.ThemeService
	logger       *logger.Logger
}

func NewThemeHandler(themeService services.ThemeService, log *logger.Logger) *ThemeHandler {
	return &ThemeHandler{
		themeService: themeService,
		logger:       log,
	}
}

func (h *ThemeHandler) ListThemes(c *gin.Context) {
	themes := h.themeService.ListThemes()
	utils.SuccessResponseWithMeta(c, "", themes, &utils.Meta{Count: len(themes)})
}

// GetTheme never 404s; unknown ids get the default preset.
func (h *ThemeHandler) GetTheme(c *gin.Context) {
	utils.SuccessResponse(c, "", h.themeService.GetTheme(c.Param("id")))
}

func (h *ThemeHandler) GetActiveTheme(c *gin.Context) {
	theme, err := h.themeService.GetActiveTheme(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "", theme)
}

func (h *ThemeHandler) SetActiveTheme(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.BadRequestResponse(c, "theme id is required")
		return
	}

	theme, err := h.themeService.SetActiveTheme(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Active theme updated", theme)
}
