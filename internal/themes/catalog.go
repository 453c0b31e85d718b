// Package themes holds the built-in storefront theme presets.
package themes

import "carbooking/internal/models"

const DefaultThemeID = "classic-blue"

var catalog = []models.Theme{
	{
		ID:                DefaultThemeID,
		Name:              "Classic Blue",
		Description:       "Clean corporate look with deep blue accents",
		PrimaryColor:      "#1e40af",
		SecondaryColor:    "#3b82f6",
		AccentColor:       "#f59e0b",
		BackgroundColor:   "#ffffff",
		SurfaceColor:      "#f8fafc",
		TextColor:         "#0f172a",
		MutedTextColor:    "#64748b",
		BorderColor:       "#e2e8f0",
		SuccessColor:      "#16a34a",
		WarningColor:      "#d97706",
		ErrorColor:        "#dc2626",
		HeaderBackground:  "#1e3a8a",
		HeaderText:        "#ffffff",
		FooterBackground:  "#0f172a",
		FooterText:        "#cbd5e1",
		ButtonBackground:  "#1e40af",
		ButtonText:        "#ffffff",
		ButtonHover:       "#1d4ed8",
		CardBackground:    "#ffffff",
		HeroGradient:      "linear-gradient(135deg, #1e3a8a 0%, #3b82f6 100%)",
		ButtonGradient:    "linear-gradient(90deg, #1e40af 0%, #2563eb 100%)",
		AccentGradient:    "linear-gradient(90deg, #f59e0b 0%, #fbbf24 100%)",
		InputBackground:   "#ffffff",
		InputBorder:       "#cbd5e1",
		FontFamily:        "'Inter', sans-serif",
		HeadingFontFamily: "'Poppins', sans-serif",
		BorderRadius:      "0.5rem",
		ButtonRadius:      "0.5rem",
		CardRadius:        "0.75rem",
		CardShadow:        "0 4px 6px -1px rgba(0, 0, 0, 0.1)",
		ButtonShadow:      "0 1px 2px rgba(0, 0, 0, 0.05)",
	},
	{
		ID:                "luxury-gold",
		Name:              "Luxury Gold",
		Description:       "Dark premium theme with gold highlights for executive transfers",
		PrimaryColor:      "#b8860b",
		SecondaryColor:    "#d4af37",
		AccentColor:       "#f5deb3",
		BackgroundColor:   "#0b0b0b",
		SurfaceColor:      "#1a1a1a",
		TextColor:         "#f5f5f5",
		MutedTextColor:    "#a3a3a3",
		BorderColor:       "#2e2e2e",
		SuccessColor:      "#22c55e",
		WarningColor:      "#eab308",
		ErrorColor:        "#ef4444",
		HeaderBackground:  "#000000",
		HeaderText:        "#d4af37",
		FooterBackground:  "#000000",
		FooterText:        "#a3a3a3",
		ButtonBackground:  "#d4af37",
		ButtonText:        "#0b0b0b",
		ButtonHover:       "#b8860b",
		CardBackground:    "#141414",
		HeroGradient:      "linear-gradient(135deg, #000000 0%, #3a2c0a 100%)",
		ButtonGradient:    "linear-gradient(90deg, #b8860b 0%, #d4af37 100%)",
		AccentGradient:    "linear-gradient(90deg, #d4af37 0%, #f5deb3 100%)",
		InputBackground:   "#1a1a1a",
		InputBorder:       "#3f3f3f",
		FontFamily:        "'Lato', sans-serif",
		HeadingFontFamily: "'Playfair Display', serif",
		BorderRadius:      "0.25rem",
		ButtonRadius:      "0.25rem",
		CardRadius:        "0.375rem",
		CardShadow:        "0 10px 15px -3px rgba(212, 175, 55, 0.15)",
		ButtonShadow:      "0 2px 4px rgba(212, 175, 55, 0.3)",
	},
	{
		ID:                "emerald-coast",
		Name:              "Emerald Coast",
		Description:       "Fresh green palette suited to holiday and resort rentals",
		PrimaryColor:      "#047857",
		SecondaryColor:    "#10b981",
		AccentColor:       "#0ea5e9",
		BackgroundColor:   "#f0fdf4",
		SurfaceColor:      "#ffffff",
		TextColor:         "#064e3b",
		MutedTextColor:    "#4b7f6b",
		BorderColor:       "#bbf7d0",
		SuccessColor:      "#15803d",
		WarningColor:      "#ca8a04",
		ErrorColor:        "#b91c1c",
		HeaderBackground:  "#065f46",
		HeaderText:        "#ecfdf5",
		FooterBackground:  "#064e3b",
		FooterText:        "#a7f3d0",
		ButtonBackground:  "#059669",
		ButtonText:        "#ffffff",
		ButtonHover:       "#047857",
		CardBackground:    "#ffffff",
		HeroGradient:      "linear-gradient(135deg, #065f46 0%, #0ea5e9 100%)",
		ButtonGradient:    "linear-gradient(90deg, #059669 0%, #10b981 100%)",
		AccentGradient:    "linear-gradient(90deg, #0ea5e9 0%, #38bdf8 100%)",
		InputBackground:   "#ffffff",
		InputBorder:       "#86efac",
		FontFamily:        "'Nunito', sans-serif",
		HeadingFontFamily: "'Montserrat', sans-serif",
		BorderRadius:      "0.75rem",
		ButtonRadius:      "9999px",
		CardRadius:        "1rem",
		CardShadow:        "0 4px 12px rgba(4, 120, 87, 0.12)",
		ButtonShadow:      "0 2px 6px rgba(4, 120, 87, 0.25)",
	},
	{
		ID:                "sunset-orange",
		Name:              "Sunset Orange",
		Description:       "Warm energetic theme with orange and red gradients",
		PrimaryColor:      "#ea580c",
		SecondaryColor:    "#f97316",
		AccentColor:       "#e11d48",
		BackgroundColor:   "#fffaf5",
		SurfaceColor:      "#ffffff",
		TextColor:         "#431407",
		MutedTextColor:    "#9a6a55",
		BorderColor:       "#fed7aa",
		SuccessColor:      "#16a34a",
		WarningColor:      "#f59e0b",
		ErrorColor:        "#be123c",
		HeaderBackground:  "#9a3412",
		HeaderText:        "#fff7ed",
		FooterBackground:  "#431407",
		FooterText:        "#fdba74",
		ButtonBackground:  "#ea580c",
		ButtonText:        "#ffffff",
		ButtonHover:       "#c2410c",
		CardBackground:    "#ffffff",
		HeroGradient:      "linear-gradient(135deg, #f97316 0%, #e11d48 100%)",
		ButtonGradient:    "linear-gradient(90deg, #ea580c 0%, #f97316 100%)",
		AccentGradient:    "linear-gradient(90deg, #e11d48 0%, #fb7185 100%)",
		InputBackground:   "#ffffff",
		InputBorder:       "#fdba74",
		FontFamily:        "'Open Sans', sans-serif",
		HeadingFontFamily: "'Raleway', sans-serif",
		BorderRadius:      "0.5rem",
		ButtonRadius:      "0.375rem",
		CardRadius:        "0.75rem",
		CardShadow:        "0 6px 16px rgba(234, 88, 12, 0.15)",
		ButtonShadow:      "0 2px 4px rgba(234, 88, 12, 0.3)",
	},
	{
		ID:                "midnight-slate",
		Name:              "Midnight Slate",
		Description:       "Minimal dark mode with cool slate tones",
		PrimaryColor:      "#6366f1",
		SecondaryColor:    "#818cf8",
		AccentColor:       "#22d3ee",
		BackgroundColor:   "#0f172a",
		SurfaceColor:      "#1e293b",
		TextColor:         "#e2e8f0",
		MutedTextColor:    "#94a3b8",
		BorderColor:       "#334155",
		SuccessColor:      "#4ade80",
		WarningColor:      "#facc15",
		ErrorColor:        "#f87171",
		HeaderBackground:  "#020617",
		HeaderText:        "#e2e8f0",
		FooterBackground:  "#020617",
		FooterText:        "#64748b",
		ButtonBackground:  "#6366f1",
		ButtonText:        "#ffffff",
		ButtonHover:       "#4f46e5",
		CardBackground:    "#1e293b",
		HeroGradient:      "linear-gradient(135deg, #020617 0%, #312e81 100%)",
		ButtonGradient:    "linear-gradient(90deg, #6366f1 0%, #818cf8 100%)",
		AccentGradient:    "linear-gradient(90deg, #22d3ee 0%, #67e8f9 100%)",
		InputBackground:   "#0f172a",
		InputBorder:       "#475569",
		FontFamily:        "'Inter', sans-serif",
		HeadingFontFamily: "'Inter', sans-serif",
		BorderRadius:      "0.375rem",
		ButtonRadius:      "0.375rem",
		CardRadius:        "0.5rem",
		CardShadow:        "0 8px 20px rgba(0, 0, 0, 0.4)",
		ButtonShadow:      "0 0 0 1px rgba(99, 102, 241, 0.4)",
	},
}

var byID = func() map[string]int {
	m := make(map[string]int, len(catalog))
	for i, t := range catalog {
		m[t.ID] = i
	}
	return m
}()

// All returns a copy of every preset in catalog order.
func All() []models.Theme {
	out := make([]models.Theme, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup reports whether id names a preset.
func Lookup(id string) (models.Theme, bool) {
	i, ok := byID[id]
	if !ok {
		return models.Theme{}, false
	}
	return catalog[i], true
}

// Get returns the preset for id or the default preset when id is unknown.
func Get(id string) models.Theme {
	if t, ok := Lookup(id); ok {
		return t
	}
	t, _ := Lookup(DefaultThemeID)
	return t
}

// Default returns the designated default preset.
func Default() models.Theme {
	return Get(DefaultThemeID)
}
