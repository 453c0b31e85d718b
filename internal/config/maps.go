package config

import "time"

type MapsConfig struct {
	Provider   string            `yaml:"provider"` // tomtom or google
	TomTom     *TomTomConfig     `yaml:"tomtom"`
	GoogleMaps *GoogleMapsConfig `yaml:"google_maps"`
	CacheTTL   time.Duration     `yaml:"cache_ttl"`
}

type TomTomConfig struct {
	APIKey  string        `yaml:"api_key"`
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type GoogleMapsConfig struct {
	APIKey string `yaml:"api_key"`
}

func loadMapsConfig() *MapsConfig {
	return &MapsConfig{
		Provider: getEnv("MAPS_PROVIDER", "tomtom"),
		TomTom: &TomTomConfig{
			APIKey:  firstEnv("", "NEXT_PUBLIC_TOMTOM_API_KEY", "TOMTOM_API_KEY"),
			BaseURL: getEnv("TOMTOM_BASE_URL", "https://api.tomtom.com"),
			Timeout: getEnvAsDuration("TOMTOM_TIMEOUT", 15*time.Second),
		},
		GoogleMaps: &GoogleMapsConfig{
			APIKey: getEnv("GOOGLE_MAPS_API_KEY", ""),
		},
		CacheTTL: getEnvAsDuration("GEOCODE_CACHE_TTL", 24*time.Hour),
	}
}
