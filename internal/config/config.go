package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

// Config is the resolved service configuration.
type Config struct {
	Port      string
	LogLevel  string
	LogPretty bool

	StorageDriver string
	DBPath        string
	DatabaseURL   string
	RedisAddr     string
	StorageKey    string
	SeedPath      string
	// ClearOnLoad empties the saved marker list whenever a session loads.
	ClearOnLoad bool

	MapboxToken string
	MapStyle    string
	MapZoom     float64
	MapLanguage string

	AnimationFrame time.Duration

	S3 S3Config
}

// S3Config is the object storage target of map exports.
type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

func setDefaults() {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_PRETTY", false)

	viper.SetDefault("STORAGE_DRIVER", DriverSQLite)
	viper.SetDefault("DB_PATH", "data/app.db")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("STORAGE_KEY", "markers")
	viper.SetDefault("SEED_PATH", "data/seeds/markers.json")
	viper.SetDefault("MARKERS_CLEAR_ON_LOAD", true)

	viper.SetDefault("MAPBOX_TOKEN", "")
	viper.SetDefault("MAP_STYLE", "mapbox://styles/mapbox/streets-v11")
	viper.SetDefault("MAP_ZOOM", 3.5)
	viper.SetDefault("MAP_LANGUAGE", "pt")

	viper.SetDefault("ANIMATION_FRAME_MS", 50)

	viper.SetDefault("S3_ENDPOINT", "")
	viper.SetDefault("S3_ACCESS_KEY", "")
	viper.SetDefault("S3_SECRET_KEY", "")
	viper.SetDefault("S3_USE_SSL", false)
	viper.SetDefault("S3_BUCKET", "portuguese-map")
}

// Load reads an optional .env file, then the environment, and applies
// defaults for anything unset.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found (using environment variables)")
	}

	setDefaults()
	viper.AutomaticEnv()

	cfg := Config{
		Port:      viper.GetString("PORT"),
		LogLevel:  viper.GetString("LOG_LEVEL"),
		LogPretty: viper.GetBool("LOG_PRETTY"),

		StorageDriver: strings.ToLower(strings.TrimSpace(viper.GetString("STORAGE_DRIVER"))),
		DBPath:        viper.GetString("DB_PATH"),
		DatabaseURL:   viper.GetString("DATABASE_URL"),
		RedisAddr:     viper.GetString("REDIS_ADDR"),
		StorageKey:    viper.GetString("STORAGE_KEY"),
		SeedPath:      viper.GetString("SEED_PATH"),
		ClearOnLoad:   viper.GetBool("MARKERS_CLEAR_ON_LOAD"),

		MapboxToken: viper.GetString("MAPBOX_TOKEN"),
		MapStyle:    viper.GetString("MAP_STYLE"),
		MapZoom:     viper.GetFloat64("MAP_ZOOM"),
		MapLanguage: viper.GetString("MAP_LANGUAGE"),

		AnimationFrame: time.Duration(viper.GetInt("ANIMATION_FRAME_MS")) * time.Millisecond,

		S3: S3Config{
			Endpoint:  viper.GetString("S3_ENDPOINT"),
			AccessKey: viper.GetString("S3_ACCESS_KEY"),
			SecretKey: viper.GetString("S3_SECRET_KEY"),
			UseSSL:    viper.GetBool("S3_USE_SSL"),
			Bucket:    viper.GetString("S3_BUCKET"),
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.StorageDriver {
	case DriverSQLite, DriverRedis, DriverMemory:
	case DriverPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("load config: DATABASE_URL is required for storage driver %q", c.StorageDriver)
		}
	default:
		return fmt.Errorf("load config: unknown storage driver %q", c.StorageDriver)
	}
	if c.AnimationFrame <= 0 {
		return fmt.Errorf("load config: ANIMATION_FRAME_MS must be positive, got %s", c.AnimationFrame)
	}
	return nil
}

// Get returns the environment value of key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
