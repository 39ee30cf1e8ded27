package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port        int
	FrontendURL string
	LogPath     string

	Duffel   DuffelConfig
	RateHawk RateHawkConfig
	Redis    RedisConfig
	FX       FXConfig

	Destinations *Destinations
}

type DuffelConfig struct {
	AccessToken string
	BaseURL     string
}

type RateHawkConfig struct {
	APIKey  string
	KeyID   string
	BaseURL string
}

type RedisConfig struct {
	// URL enables the redis-backed cache when set. Empty means in-memory.
	URL string
}

type FXConfig struct {
	// RefreshCron pre-warms live exchange rates on a schedule.
	RefreshCron string
}

// Destinations holds the package-flow allow-lists loaded from
// config/destinations.yaml.
type Destinations struct {
	UKAirports   []Airport     `yaml:"uk_airports"`
	PackageDests []Destination `yaml:"package_destinations"`
}

type Airport struct {
	Code   string `yaml:"code"`
	Name   string `yaml:"name"`
	City   string `yaml:"city"`
	Region string `yaml:"region"`
}

type Destination struct {
	Code    string `yaml:"code"`
	Name    string `yaml:"name"`
	Country string `yaml:"country"`
	Region  string `yaml:"region"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnvInt("PORT", 8080),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		LogPath:     getEnv("LOG_PATH", "globehunters.log"),
		Duffel: DuffelConfig{
			AccessToken: os.Getenv("DUFFEL_ACCESS_TOKEN"),
			BaseURL:     getEnv("DUFFEL_API_URL", "https://api.duffel.com"),
		},
		RateHawk: RateHawkConfig{
			APIKey:  os.Getenv("RATEHAWK_API_KEY"),
			KeyID:   os.Getenv("RATEHAWK_KEY_ID"),
			BaseURL: getEnv("RATEHAWK_API_URL", "https://api.worldota.net/api/b2b/v3"),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		FX: FXConfig{
			RefreshCron: getEnv("FX_REFRESH_CRON", "@hourly"),
		},
	}

	dests, err := loadDestinations("config/destinations.yaml")
	if err != nil {
		return nil, fmt.Errorf("load destinations: %w", err)
	}
	cfg.Destinations = dests

	return cfg, nil
}

func loadDestinations(path string) (*Destinations, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Allow running without the allow-lists; package search
			// then rejects everything, which is visible early.
			return &Destinations{}, nil
		}
		return nil, err
	}

	var d Destinations
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ValidUKAirport reports whether code is in the UK-airport allow-list.
func (d *Destinations) ValidUKAirport(code string) bool {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, a := range d.UKAirports {
		if a.Code == code {
			return true
		}
	}
	return false
}

// ResolveDestination matches a name or code against the package-destination
// allow-list, returning the canonical entry.
func (d *Destinations) ResolveDestination(value string) (Destination, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, dest := range d.PackageDests {
		if strings.ToLower(dest.Code) == v || strings.ToLower(dest.Name) == v {
			return dest, true
		}
	}
	return Destination{}, false
}

// VideoJob is one entry of the hero-video catalog.
type VideoJob struct {
	Slug   string `yaml:"slug"`
	Prompt string `yaml:"prompt"`
}

type videoCatalog struct {
	Videos []VideoJob `yaml:"videos"`
}

// LoadVideoCatalog reads the hero-video job list from a yaml file.
func LoadVideoCatalog(path string) ([]VideoJob, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cat videoCatalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	for i, v := range cat.Videos {
		if v.Slug == "" || v.Prompt == "" {
			return nil, fmt.Errorf("video %d: slug and prompt are required", i)
		}
	}
	return cat.Videos, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
