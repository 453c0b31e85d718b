package handlers

import (
	"carbooking/internal/models"
	"carbooking/internal/services"
	"carbooking/internal/utils"
	"carbooking/internal/validators"
	"carbooking/pkg/logger"

	"github.com/gin-gonic/gin"
)

type DomainHandler struct {
	domainService services.DomainService
	logger        *logger.Logger
}

func NewDomainHandler(domainService services.DomainService, log *logger.Logger) *DomainHandler {
	return &DomainHandler{
		domainService: domainService,
		logger:        log,
	}
}

func (h *DomainHandler) ListDomains(c *gin.Context) {
	domains, err := h.domainService.ListDomains(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "", domains, &utils.Meta{Count: len(domains)})
}

func (h *DomainHandler) GetDomain(c *gin.Context) {
	domain, err := h.domainService.GetDomain(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "", domain)
}

// LookupDomain resolves ?name= to a domain ignoring case.
func (h *DomainHandler) LookupDomain(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		utils.BadRequestResponse(c, "name query parameter is required")
		return
	}

	domain, err := h.domainService.LookupDomain(c.Request.Context(), name)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "", domain)
}

func (h *DomainHandler) CreateDomain(c *gin.Context) {
	var input models.DomainInput
	if err := c.ShouldBindJSON(&input); err != nil {
		invalidBody(c, err)
		return
	}

	if errs := validators.ValidateDomainCreate(&input); len(errs) > 0 {
		validationFailed(c, errs)
		return
	}

	domain, err := h.domainService.CreateDomain(c.Request.Context(), &input)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	utils.CreatedResponse(c, "Domain created successfully", domain)
}

func (h *DomainHandler) UpdateDomain(c *gin.Context) {
	var input models.DomainInput
	if err := c.ShouldBindJSON(&input); err != nil {
		invalidBody(c, err)
		return
	}

	if errs := validators.ValidateDomainUpdate(&input); len(errs) > 0 {
		validationFailed(c, errs)
		return
	}

	domain, err := h.domainService.UpdateDomain(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Domain updated successfully", domain)
}

func (h *DomainHandler) DeleteDomain(c *gin.Context) {
	if err := h.domainService.DeleteDomain(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Domain deleted successfully", nil)
}
