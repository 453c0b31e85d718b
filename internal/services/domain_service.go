package services

import (
	"context"
	"errors"
	"strings"

	"carbooking/internal/models"
	"carbooking/internal/repositories/interfaces"
	"carbooking/internal/themes"
	"carbooking/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DomainService interface {
	CreateDomain(ctx context.Context, input *models.DomainInput) (*models.Domain, error)
	GetDomain(ctx context.Context, id string) (*models.Domain, error)
	// LookupDomain matches the whole name ignoring case.
	LookupDomain(ctx context.Context, name string) (*models.Domain, error)
	ListDomains(ctx context.Context) ([]*models.Domain, error)
	UpdateDomain(ctx context.Context, id string, input *models.DomainInput) (*models.Domain, error)
	DeleteDomain(ctx context.Context, id string) error
}

type domainService struct {
	domainRepo interfaces.DomainRepository
	logger     *logger.Logger
}

func NewDomainService(domainRepo interfaces.DomainRepository, log *logger.Logger) DomainService {
	return &domainService{domainRepo: domainRepo, logger: log}
}

func (s *domainService) CreateDomain(ctx context.Context, input *models.DomainInput) (*models.Domain, error) {
	domain := input.NewDomain()

	if _, err := s.domainRepo.GetByName(ctx, domain.DomainName); err == nil {
		return nil, ErrDomainExists
	} else if !errors.Is(err, interfaces.ErrNotFound) {
		return nil, err
	}

	s.warnUnknownTheme(domain.ThemeID)

	if err := s.domainRepo.Create(ctx, domain); err != nil {
		if errors.Is(err, interfaces.ErrDuplicate) {
			return nil, ErrDomainExists
		}
		return nil, err
	}

	s.logger.LogAdminAction("domain", "create", domain.ID.Hex(), map[string]interface{}{
		"domain_name": domain.DomainName,
	})
	return domain, nil
}

func (s *domainService) GetDomain(ctx context.Context, id string) (*models.Domain, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.mapNotFound(s.domainRepo.GetByID(ctx, objectID))
}

func (s *domainService) LookupDomain(ctx context.Context, name string) (*models.Domain, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrDomainNotFound
	}
	return s.mapNotFound(s.domainRepo.GetByName(ctx, name))
}

func (s *domainService) ListDomains(ctx context.Context) ([]*models.Domain, error) {
	return s.domainRepo.List(ctx)
}

func (s *domainService) UpdateDomain(ctx context.Context, id string, input *models.DomainInput) (*models.Domain, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	updates := input.Updates()
	if name, ok := updates["domainName"].(string); ok {
		existing, err := s.domainRepo.GetByName(ctx, name)
		if err == nil && existing.ID != objectID {
			return nil, ErrDomainExists
		}
		if err != nil && !errors.Is(err, interfaces.ErrNotFound) {
			return nil, err
		}
	}
	if themeID, ok := updates["themeId"].(string); ok {
		s.warnUnknownTheme(themeID)
	}

	if len(updates) == 0 {
		return s.GetDomain(ctx, id)
	}

	domain, err := s.domainRepo.Update(ctx, objectID, updates)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicate) {
			return nil, ErrDomainExists
		}
		return s.mapNotFound(nil, err)
	}

	s.logger.LogAdminAction("domain", "update", id, map[string]interface{}{
		"fields": len(updates),
	})
	return domain, nil
}

func (s *domainService) DeleteDomain(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	if err := s.domainRepo.Delete(ctx, objectID); err != nil {
		_, err = s.mapNotFound(nil, err)
		return err
	}

	s.logger.LogAdminAction("domain", "delete", id, nil)
	return nil
}

func (s *domainService) mapNotFound(domain *models.Domain, err error) (*models.Domain, error) {
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrDomainNotFound
		}
		return nil, err
	}
	return domain, nil
}

func (s *domainService) warnUnknownTheme(themeID string) {
	if themeID == "" {
		return
	}
	if _, ok := themes.Lookup(themeID); !ok {
		s.logger.WithField("theme_id", themeID).Warn("Domain references an unknown theme")
	}
}
