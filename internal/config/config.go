package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Datasets DatasetConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins []string
}

// DatasetConfig - пути к исходным файлам и настройки кеша разобранных таблиц
type DatasetConfig struct {
	Dir           string
	Stations      string
	Lines         string
	Prices        string
	Regularity    string
	Frequentation string
	CacheSize     int
	Warmup        bool
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	ViewCacheTTL time.Duration
}

// LogConfig - уровень и формат логов (json или console)
type LogConfig struct {
	Level  string
	Format string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("DATASET_DIR", "./datasets")
	v.SetDefault("DATASET_STATIONS", "gares-de-voyageurs.csv")
	v.SetDefault("DATASET_LINES", "lignes-lgv-et-par-ecartement.geojson")
	v.SetDefault("DATASET_PRICES", "tarifs-tgv-inoui-ouigo.csv")
	v.SetDefault("DATASET_REGULARITY", "regularite-mensuelle-tgv-aqst.csv")
	v.SetDefault("DATASET_FREQUENTATION", "frequentation-gares.csv")
	v.SetDefault("DATASET_CACHE_SIZE", 16)
	v.SetDefault("DATASET_WARMUP", true)

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("VIEW_CACHE_TTL", 300)
}

// Load читает .env (если он есть) и переменные окружения
func Load() (*Config, error) {
	return LoadFile(".env")
}

func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        v.GetString("API_HOST"),
			Port:        v.GetInt("API_PORT"),
			Env:         v.GetString("API_ENV"),
			CORSOrigins: splitList(v.GetString("CORS_ALLOW_ORIGINS")),
		},
		Datasets: DatasetConfig{
			Dir:           v.GetString("DATASET_DIR"),
			Stations:      v.GetString("DATASET_STATIONS"),
			Lines:         v.GetString("DATASET_LINES"),
			Prices:        v.GetString("DATASET_PRICES"),
			Regularity:    v.GetString("DATASET_REGULARITY"),
			Frequentation: v.GetString("DATASET_FREQUENTATION"),
			CacheSize:     v.GetInt("DATASET_CACHE_SIZE"),
			Warmup:        v.GetBool("DATASET_WARMUP"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			ViewCacheTTL: time.Duration(v.GetInt("VIEW_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	if cfg.Datasets.CacheSize <= 0 {
		cfg.Datasets.CacheSize = 16
	}

	return cfg, nil
}

// splitList разбирает список через запятую, пропуская пустые элементы
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Addr - адрес Redis в формате host:port
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatasetPath склеивает каталог данных и имя файла; абсолютные пути не меняются
func (c *DatasetConfig) DatasetPath(name string) string {
	if filepath.IsAbs(name) || c.Dir == "" {
		return name
	}
	return filepath.Join(c.Dir, name)
}
