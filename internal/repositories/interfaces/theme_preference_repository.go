package interfaces

import (
	"context"

	"carbooking/internal/models"
)

// ThemePreferenceStore keeps the single active theme id. Concurrent Set
// calls are last-write-wins.
type ThemePreferenceStore interface {
	// Get returns the stored preference, creating it with defaultThemeID
	// when none exists yet.
	Get(ctx context.Context, defaultThemeID string) (*models.ThemePreference, error)
	Set(ctx context.Context, themeID string) (*models.ThemePreference, error)
}
