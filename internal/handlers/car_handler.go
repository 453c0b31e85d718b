package handlers

import (
	"fmt"
	"strconv"

	"carbooking/internal/models"
	"carbooking/internal/services"
	"carbooking/internal/utils"
	"carbooking/internal/validators"
	"carbooking/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CarHandler struct {
	carService services.CarService
	logger     *logger.Logger
}

func NewCarHandler(carService services.CarService, log *logger.Logger) *CarHandler {
	return &CarHandler{
		carService: carService,
		logger:     log,
	}
}

// ListCars returns the inventory, optionally filtered by carType and active
// and priced for a domain.
func (h *CarHandler) ListCars(c *gin.Context) {
	filter := services.CarListFilter{
		CarType: models.CarType(c.Query("carType")),
		Domain:  c.Query("domain"),
	}
	if filter.CarType != "" && !filter.CarType.IsValid() {
		utils.BadRequestResponse(c, "carType must be transfer or rental")
		return
	}
	if active := c.Query("active"); active != "" {
		isActive, err := strconv.ParseBool(active)
		if err != nil {
			utils.BadRequestResponse(c, "active must be true or false")
			return
		}
		filter.IsActive = &isActive
	}

	cars, err := h.carService.ListCars(c.Request.Context(), filter)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "", cars, &utils.Meta{Count: len(cars)})
}

func (h *CarHandler) GetCar(c *gin.Context) {
	car, err := h.carService.GetCar(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "", car)
}

// CreateCar accepts JSON or a multipart form with an optional image file.
func (h *CarHandler) CreateCar(c *gin.Context) {
	input, image, err := decodeCarInput(c)
	if err != nil {
		invalidBody(c, err)
		return
	}
	defer closeImage(image)

	if errs := validators.ValidateCarCreate(input); len(errs) > 0 {
		validationFailed(c, errs)
		return
	}

	car, err := h.carService.CreateCar(c.Request.Context(), input, image)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	utils.CreatedResponse(c, "Car created successfully", car)
}

// UpdateCar applies only the fields present in the request.
func (h *CarHandler) UpdateCar(c *gin.Context) {
	input, image, err := decodeCarInput(c)
	if err != nil {
		invalidBody(c, err)
		return
	}
	defer closeImage(image)

	if errs := validators.ValidateCarUpdate(input); len(errs) > 0 {
		validationFailed(c, errs)
		return
	}

	car, err := h.carService.UpdateCar(c.Request.Context(), c.Param("id"), input, image)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Car updated successfully", car)
}

func (h *CarHandler) DeleteCar(c *gin.Context) {
	if err := h.carService.DeleteCar(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Car deleted successfully", nil)
}

// SeedCars replaces the inventory with the demo fleet.
func (h *CarHandler) SeedCars(c *gin.Context) {
	cars, err := h.carService.SeedCars(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	utils.SuccessResponseWithMeta(c, fmt.Sprintf("Seeded %d cars", len(cars)), cars, &utils.Meta{Count: len(cars)})
}
