package services

import (
	"context"
	"fmt"

	"carbooking/internal/models"
	"carbooking/internal/repositories/interfaces"
	"carbooking/internal/themes"
	"carbooking/pkg/logger"
)

type ThemeService interface {
	ListThemes() []models.Theme
	// GetTheme never fails; unknown ids resolve to the default preset.
	GetTheme(id string) models.Theme
	GetActiveTheme(ctx context.Context) (models.Theme, error)
	SetActiveTheme(ctx context.Context, id string) (models.Theme, error)
}

type themeService struct {
	store  interfaces.ThemePreferenceStore
	logger *logger.Logger
}

func NewThemeService(store interfaces.ThemePreferenceStore, log *logger.Logger) ThemeService {
	return &themeService{store: store, logger: log}
}

func (s *themeService) ListThemes() []models.Theme {
	return themes.All()
}

func (s *themeService) GetTheme(id string) models.Theme {
	return themes.Get(id)
}

func (s *themeService) GetActiveTheme(ctx context.Context) (models.Theme, error) {
	pref, err := s.store.Get(ctx, themes.DefaultThemeID)
	if err != nil {
		return models.Theme{}, fmt.Errorf("failed to load active theme: %w", err)
	}
	return themes.Get(pref.ThemeID), nil
}

func (s *themeService) SetActiveTheme(ctx context.Context, id string) (models.Theme, error) {
	if _, ok := themes.Lookup(id); !ok {
		s.logger.WithField("theme_id", id).Warn("Activating unknown theme id, default preset will be served")
	}

	pref, err := s.store.Set(ctx, id)
	if err != nil {
		return models.Theme{}, fmt.Errorf("failed to set active theme: %w", err)
	}

	s.logger.LogAdminAction("theme", "activate", pref.ThemeID, nil)
	return themes.Get(pref.ThemeID), nil
}
