package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type DbServer struct {
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

// GetConnectionStr prefers a full connection URL (DATABASE_URL) and falls
// back to the composed local default otherwise.
func (config *DbServer) GetConnectionStr() string {
	if config.URL != "" {
		return config.URL
	}
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type Upstream struct {
	CountriesURL string `mapstructure:"countries_url"`
	RatesURL     string `mapstructure:"rates_url"`
}

type Cache struct {
	Dir      string `mapstructure:"dir"`
	MaxItems int64  `mapstructure:"max_items"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	DbServer   DbServer   `mapstructure:"db_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	Upstream   Upstream   `mapstructure:"upstream"`
	Cache      Cache      `mapstructure:"cache"`
	Logging    Logging    `mapstructure:"logging"`
}

func Init() (*AppConfig, error) {
	var cfg AppConfig

	// .env is optional, env vars may come from the environment directly
	_ = godotenv.Load()

	viper.SetConfigFile("config.yaml")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	viper.SetDefault("http_server.port", "8080")
	viper.SetDefault("db_server.host", "localhost")
	viper.SetDefault("db_server.port", "5432")
	viper.SetDefault("db_server.user", "postgres")
	viper.SetDefault("db_server.pass", "postgres")
	viper.SetDefault("db_server.name", "countries")
	viper.SetDefault("db_server.max_conns", 10)
	viper.SetDefault("http_client.timeout_seconds", 10)
	viper.SetDefault("upstream.countries_url", "https://restcountries.com/v2/all?fields=name,capital,region,population,flag,currencies")
	viper.SetDefault("upstream.rates_url", "https://open.er-api.com/v6/latest/USD")
	viper.SetDefault("cache.dir", "cache")
	viper.SetDefault("cache.max_items", 1024)
	viper.SetDefault("logging.level", "info")

	// http server env vars
	_ = viper.BindEnv("http_server.port", "PORT")

	// db server env vars
	_ = viper.BindEnv("db_server.url", "DATABASE_URL")
	_ = viper.BindEnv("db_server.host", "DB_HOST")
	_ = viper.BindEnv("db_server.port", "DB_PORT")
	_ = viper.BindEnv("db_server.user", "DB_USER")
	_ = viper.BindEnv("db_server.pass", "DB_PASS")
	_ = viper.BindEnv("db_server.name", "DB_NAME")
	_ = viper.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	// http client env vars
	_ = viper.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	// upstream env vars
	_ = viper.BindEnv("upstream.countries_url", "COUNTRIES_API_URL")
	_ = viper.BindEnv("upstream.rates_url", "EXCHANGE_RATE_API_URL")

	// cache env vars
	_ = viper.BindEnv("cache.dir", "CACHE_DIR")

	// logging env vars
	_ = viper.BindEnv("logging.level", "LOG_LEVEL")

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
