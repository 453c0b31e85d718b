package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"carbooking/internal/models"
	"carbooking/internal/repositories/interfaces"
	"carbooking/internal/utils"
	"carbooking/pkg/logger"
	"carbooking/pkg/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ImageUpload is a car photo received with a multipart request.
type ImageUpload struct {
	Filename string
	Reader   io.Reader
}

type CarListFilter struct {
	CarType  models.CarType
	IsActive *bool
	// Domain applies that domain's price overrides and hides its invisible
	// cars.
	Domain string
}

type ImageConfig struct {
	KeyPrefix string
	MaxWidth  uint
	MaxHeight uint
	Quality   int
}

type CarService interface {
	CreateCar(ctx context.Context, input *models.CarInput, image *ImageUpload) (*models.Car, error)
	GetCar(ctx context.Context, id string) (*models.Car, error)
	ListCars(ctx context.Context, filter CarListFilter) ([]*models.Car, error)
	UpdateCar(ctx context.Context, id string, input *models.CarInput, image *ImageUpload) (*models.Car, error)
	DeleteCar(ctx context.Context, id string) error
	// SeedCars replaces the whole inventory with the built-in fleet.
	SeedCars(ctx context.Context) ([]*models.Car, error)
}

type carService struct {
	carRepo     interfaces.CarRepository
	domainRepo  interfaces.DomainRepository
	storage     storage.StorageProvider
	imageConfig ImageConfig
	logger      *logger.Logger
}

// NewCarService builds the car service. storageProvider may be nil, in which
// case image uploads are rejected.
func NewCarService(
	carRepo interfaces.CarRepository,
	domainRepo interfaces.DomainRepository,
	storageProvider storage.StorageProvider,
	imageConfig ImageConfig,
	log *logger.Logger,
) CarService {
	if imageConfig.MaxWidth == 0 {
		imageConfig.MaxWidth = utils.MaxImageWidth
	}
	if imageConfig.MaxHeight == 0 {
		imageConfig.MaxHeight = utils.MaxImageHeight
	}
	if imageConfig.Quality == 0 {
		imageConfig.Quality = utils.ImageQuality
	}

	return &carService{
		carRepo:     carRepo,
		domainRepo:  domainRepo,
		storage:     storageProvider,
		imageConfig: imageConfig,
		logger:      log,
	}
}

func (s *carService) CreateCar(ctx context.Context, input *models.CarInput, image *ImageUpload) (*models.Car, error) {
	car := input.NewCar()

	if image != nil {
		url, err := s.uploadImage(ctx, image)
		if err != nil {
			return nil, err
		}
		car.Image = url
	}

	if err := s.carRepo.Create(ctx, car); err != nil {
		return nil, err
	}

	s.logger.LogAdminAction("car", "create", car.ID.Hex(), map[string]interface{}{
		"name":     car.Name,
		"car_type": car.CarType,
	})
	return car, nil
}

func (s *carService) GetCar(ctx context.Context, id string) (*models.Car, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	car, err := s.carRepo.GetByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}
	return car, nil
}

func (s *carService) ListCars(ctx context.Context, filter CarListFilter) ([]*models.Car, error) {
	cars, err := s.carRepo.List(ctx, interfaces.CarFilter{
		CarType:  filter.CarType,
		IsActive: filter.IsActive,
	})
	if err != nil {
		return nil, err
	}

	if filter.Domain == "" {
		return cars, nil
	}

	domain, err := s.domainRepo.GetByName(ctx, filter.Domain)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrDomainNotFound
		}
		return nil, err
	}

	return ApplyDomainOverlay(cars, domain), nil
}

// ApplyDomainOverlay prices cars with the domain's overrides and drops the
// ones the domain hides. Cars the domain does not list are kept unchanged.
// The input cars are not modified.
func ApplyDomainOverlay(cars []*models.Car, domain *models.Domain) []*models.Car {
	result := make([]*models.Car, 0, len(cars))
	for _, car := range cars {
		override, ok := domain.Override(car.ID)
		if !ok {
			result = append(result, car)
			continue
		}
		if !override.IsVisible {
			continue
		}

		priced := *car
		if override.Price != nil {
			priced.Price = *override.Price
			if priced.CarType == models.CarTypeRental {
				priced.PricePerDay = *override.Price
			}
		}
		result = append(result, &priced)
	}
	return result
}

func (s *carService) UpdateCar(ctx context.Context, id string, input *models.CarInput, image *ImageUpload) (*models.Car, error) {
	existing, err := s.GetCar(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.CarType != nil && *input.CarType != existing.CarType {
		return nil, ErrCarTypeImmutable
	}

	updates := input.Updates()
	if image != nil {
		url, err := s.uploadImage(ctx, image)
		if err != nil {
			return nil, err
		}
		updates["image"] = url
	}

	if len(updates) == 0 {
		return existing, nil
	}

	car, err := s.carRepo.Update(ctx, existing.ID, updates)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}

	if newImage, ok := updates["image"]; ok && newImage != existing.Image {
		s.deleteImage(ctx, existing.Image)
	}

	s.logger.LogAdminAction("car", "update", car.ID.Hex(), map[string]interface{}{
		"fields": len(updates),
	})
	return car, nil
}

func (s *carService) DeleteCar(ctx context.Context, id string) error {
	existing, err := s.GetCar(ctx, id)
	if err != nil {
		return err
	}

	if err := s.carRepo.Delete(ctx, existing.ID); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return ErrCarNotFound
		}
		return err
	}

	s.deleteImage(ctx, existing.Image)
	s.logger.LogAdminAction("car", "delete", existing.ID.Hex(), nil)
	return nil
}

func (s *carService) SeedCars(ctx context.Context) ([]*models.Car, error) {
	cars := DefaultFleet()
	if _, err := s.carRepo.ReplaceAll(ctx, cars); err != nil {
		return nil, err
	}

	s.logger.LogAdminAction("car", "seed", "", map[string]interface{}{
		"count": len(cars),
	})
	return cars, nil
}

func (s *carService) uploadImage(ctx context.Context, image *ImageUpload) (string, error) {
	if s.storage == nil {
		return "", ErrImageStorageDisabled
	}

	processed, err := utils.PrepareCarImage(image.Reader, image.Filename,
		s.imageConfig.MaxWidth, s.imageConfig.MaxHeight, s.imageConfig.Quality)
	if err != nil {
		return "", err
	}

	key := path.Join(strings.Trim(s.imageConfig.KeyPrefix, "/"), "cars", uuid.NewString()+processed.Extension)
	resp, err := s.storage.Upload(ctx, &storage.UploadRequest{
		Key:          key,
		Reader:       bytes.NewReader(processed.Data),
		ContentType:  processed.ContentType,
		Size:         int64(len(processed.Data)),
		CacheControl: "public, max-age=31536000",
		Metadata: map[string]string{
			"original-name": image.Filename,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload car image: %w", err)
	}
	return resp.URL, nil
}

// deleteImage removes a previously uploaded image. External URLs are left
// alone and failures are only logged.
func (s *carService) deleteImage(ctx context.Context, url string) {
	if s.storage == nil || url == "" {
		return
	}
	key, ok := s.storage.KeyFromURL(url)
	if !ok {
		return
	}
	if err := s.storage.Delete(ctx, key); err != nil {
		s.logger.WithField("key", key).WithError(err).Warn("Failed to delete car image")
	}
}
