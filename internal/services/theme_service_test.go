package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbooking/internal/themes"
	"carbooking/pkg/logger"
)

func TestThemeService_ActiveThemeLifecycle(t *testing.T) {
	store := &fakeThemeStore{}
	svc := NewThemeService(store, logger.NewNop())
	ctx := context.Background()

	active, err := svc.GetActiveTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, themes.DefaultThemeID, active.ID)
	require.NotNil(t, store.pref, "preference is created lazily")

	active, err = svc.SetActiveTheme(ctx, "luxury-gold")
	require.NoError(t, err)
	assert.Equal(t, "luxury-gold", active.ID)

	active, err = svc.GetActiveTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "luxury-gold", active.ID)
}

func TestThemeService_UnknownIDFallsBackToDefault(t *testing.T) {
	svc := NewThemeService(&fakeThemeStore{}, logger.NewNop())

	assert.Equal(t, themes.DefaultThemeID, svc.GetTheme("does-not-exist").ID)

	active, err := svc.SetActiveTheme(context.Background(), "does-not-exist")
	require.NoError(t, err)
	assert.Equal(t, themes.DefaultThemeID, active.ID)
	assert.Len(t, svc.ListThemes(), len(themes.All()))
}
