package config

import "github.com/spf13/viper"

type Config struct {
	ServerPort         string `mapstructure:"SERVER_PORT"`
	MapboxToken        string `mapstructure:"MAPBOX_TOKEN"`
	ORSAPIKey          string `mapstructure:"ORS_API_KEY"`
	ORSBaseURL         string `mapstructure:"ORS_BASE_URL"`
	MapboxBaseURL      string `mapstructure:"MAPBOX_BASE_URL"`
	OSRMBaseURL        string `mapstructure:"OSRM_BASE_URL"`
	TerrainBaseURL     string `mapstructure:"TERRAIN_BASE_URL"`
	SnapCacheSize      int    `mapstructure:"SNAP_CACHE_SIZE"`
	ElevationCacheSize int    `mapstructure:"ELEVATION_CACHE_SIZE"`
	SettingsPath       string `mapstructure:"SETTINGS_PATH"`
}

func Load() Config {
	viper.AutomaticEnv()
	viper.SetDefault("SERVER_PORT", ":8080")
	viper.SetDefault("MAPBOX_TOKEN", "")
	viper.SetDefault("ORS_API_KEY", "")
	viper.SetDefault("ORS_BASE_URL", "https://api.openrouteservice.org")
	viper.SetDefault("MAPBOX_BASE_URL", "https://api.mapbox.com")
	viper.SetDefault("OSRM_BASE_URL", "https://router.project-osrm.org")
	viper.SetDefault("TERRAIN_BASE_URL", "https://api.mapbox.com")
	viper.SetDefault("SNAP_CACHE_SIZE", 500)
	viper.SetDefault("ELEVATION_CACHE_SIZE", 1000)
	viper.SetDefault("SETTINGS_PATH", "routeforge-settings.json")

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
