package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultGeocodeURL = "https://geocode-api.arcgis.com/arcgis/rest/services/World/GeocodeServer/findAddressCandidates"
	DefaultRouteURL   = "https://route.arcgis.com/arcgis/rest/services/World/Route/NAServer/Route_World/solve"
)

// ErrMissingAPIKey - ключ ESRI не задан ни в .env, ни в окружении
var ErrMissingAPIKey = errors.New("ESRI_API_KEY is not set")

type Config struct {
	Server ServerConfig
	Esri   EsriConfig
	Log    LogConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	StaticDir    string
	AllowOrigins string
}

// EsriConfig - параметры доступа к ArcGIS location services.
// APIKey читается один раз при старте и дальше не меняется.
type EsriConfig struct {
	APIKey         string
	GeocodeURL     string
	RouteURL       string
	RequestTimeout time.Duration
}

// LogConfig - параметры логгера. Service и Env попадают в каждую запись.
type LogConfig struct {
	Level   string
	Format  string
	Service string
	Env     string
}

// Load читает .env из рабочей директории и переменные окружения
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile читает конфигурацию из указанного dotenv-файла; отсутствие файла не ошибка,
// переменные окружения имеют приоритет.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("API_HOST", "")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("LOG_SERVICE_NAME", "geo-gateway")
	v.SetDefault("STATIC_DIR", "./static")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("ESRI_GEOCODE_URL", DefaultGeocodeURL)
	v.SetDefault("ESRI_ROUTE_URL", DefaultRouteURL)
	v.SetDefault("UPSTREAM_TIMEOUT", 30)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         v.GetString("API_HOST"),
			Port:         v.GetInt("API_PORT"),
			Env:          v.GetString("API_ENV"),
			StaticDir:    v.GetString("STATIC_DIR"),
			AllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Esri: EsriConfig{
			APIKey:         strings.TrimSpace(v.GetString("ESRI_API_KEY")),
			GeocodeURL:     v.GetString("ESRI_GEOCODE_URL"),
			RouteURL:       v.GetString("ESRI_ROUTE_URL"),
			RequestTimeout: time.Duration(v.GetInt("UPSTREAM_TIMEOUT")) * time.Second,
		},
		Log: LogConfig{
			Level:   v.GetString("LOG_LEVEL"),
			Format:  strings.ToLower(v.GetString("LOG_FORMAT")),
			Service: v.GetString("LOG_SERVICE_NAME"),
			Env:     v.GetString("API_ENV"),
		},
	}

	if cfg.Esri.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Esri.RequestTimeout <= 0 {
		cfg.Esri.RequestTimeout = 30 * time.Second
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
