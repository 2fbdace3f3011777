package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Auth   AuthConfig
	Geo    GeoConfig
	Log    LogConfig
	// RandomSeed seeds fallback positions and mock distances. 0 seeds from the clock.
	RandomSeed uint64
}

type ServerConfig struct {
	Port            string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

type AuthConfig struct {
	JWTSecret string
	JWTTTL    time.Duration
}

type GeoConfig struct {
	Timeout time.Duration
	// Device is the pinned device position, or nil when the device has none
	Device *DevicePosition
}

type DevicePosition struct {
	Latitude  float64
	Longitude float64
}

type LogConfig struct {
	Level string
	Env   string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("JWT_SECRET", "fieldtrack-dev-secret")
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("GEO_TIMEOUT", "10s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("RANDOM_SEED", 0)
}

// Load reads .env files (missing files are ignored) and then the process
// environment, which wins over the files.
func Load(envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Port:            v.GetString("PORT"),
			RequestTimeout:  v.GetDuration("REQUEST_TIMEOUT"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("JWT_SECRET"),
			JWTTTL:    v.GetDuration("JWT_TTL"),
		},
		Geo: GeoConfig{
			Timeout: v.GetDuration("GEO_TIMEOUT"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
			Env:   v.GetString("APP_ENV"),
		},
		RandomSeed: v.GetUint64("RANDOM_SEED"),
	}

	if v.IsSet("GEO_DEVICE_LAT") || v.IsSet("GEO_DEVICE_LNG") {
		if !v.IsSet("GEO_DEVICE_LAT") || !v.IsSet("GEO_DEVICE_LNG") {
			return nil, fmt.Errorf("GEO_DEVICE_LAT and GEO_DEVICE_LNG must be set together")
		}
		cfg.Geo.Device = &DevicePosition{
			Latitude:  v.GetFloat64("GEO_DEVICE_LAT"),
			Longitude: v.GetFloat64("GEO_DEVICE_LNG"),
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if c.Auth.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive")
	}
	if c.Geo.Timeout <= 0 {
		return fmt.Errorf("GEO_TIMEOUT must be positive")
	}
	if d := c.Geo.Device; d != nil {
		if d.Latitude < -90 || d.Latitude > 90 || d.Longitude < -180 || d.Longitude > 180 {
			return fmt.Errorf("device position %v,%v out of range", d.Latitude, d.Longitude)
		}
	}
	return nil
}

// Addr is the listen address
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}
