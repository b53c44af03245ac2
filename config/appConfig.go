package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"wbdimsync/config/values"
)

const (
	BackendSupabase = "supabase"
	BackendPostgres = "postgres"
)

type WildberriesConfig struct {
	ApiToken string `yaml:"api_token"`
	Locale   string `yaml:"locale"`
}

type SupabaseConfig struct {
	URL            string `yaml:"url"`
	ServiceRoleKey string `yaml:"service_role_key"`
}

type SyncConfig struct {
	// supabase (дефолт) или postgres
	Backend     string            `yaml:"backend"`
	Schedule    string            `yaml:"schedule"`
	MetricsAddr string            `yaml:"metrics_addr"`
	Values      values.SyncValues `yaml:"default_values"`
}

type AppConfig struct {
	Wildberries WildberriesConfig `yaml:"wildberries"`
	Supabase    SupabaseConfig    `yaml:"supabase"`
	Postgres    PostgresConfig    `yaml:"postgres"`
	Sync        SyncConfig        `yaml:"sync"`
}

// LoadConfig собирает конфигурацию: yaml-файл (если задан и существует),
// поверх него переменные окружения. Секреты живут только в окружении.
func LoadConfig(filename string) (*AppConfig, error) {
	cfg := &AppConfig{}

	if filename != "" {
		file, err := os.Open(filename)
		if err == nil {
			decoder := yaml.NewDecoder(file)
			if err := decoder.Decode(cfg); err != nil {
				file.Close()
				return nil, fmt.Errorf("decoding config %s: %w", filename, err)
			}
			file.Close()
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	cfg.overlayEnv()
	cfg.Sync.Values.ApplyDefaults()

	return cfg, nil
}

func (c *AppConfig) overlayEnv() {
	c.Wildberries.ApiToken = getEnv(EnvWbApiToken, c.Wildberries.ApiToken)
	c.Wildberries.Locale = getEnv("WB_LOCALE", c.Wildberries.Locale)
	c.Supabase.URL = getEnv(EnvSupabaseURL, c.Supabase.URL)
	c.Supabase.ServiceRoleKey = getEnv(EnvSupabaseServiceKey, c.Supabase.ServiceRoleKey)

	c.Sync.Backend = getEnv("SYNC_BACKEND", c.Sync.Backend)
	c.Sync.Schedule = getEnv("SYNC_SCHEDULE", c.Sync.Schedule)
	c.Sync.MetricsAddr = getEnv("METRICS_ADDR", c.Sync.MetricsAddr)

	if c.Sync.Backend == "" {
		c.Sync.Backend = BackendSupabase
	}
	if c.Sync.Backend == BackendPostgres {
		c.Postgres.OverlayEnv()
	}
}

// Validate -- отсутствие обязательной переменной это fatal на старте.
func (c *AppConfig) Validate() error {
	if c.Wildberries.ApiToken == "" {
		return fmt.Errorf("required environment variable %s is not set", EnvWbApiToken)
	}
	switch c.Sync.Backend {
	case BackendSupabase:
		if c.Supabase.URL == "" {
			return fmt.Errorf("required environment variable %s is not set", EnvSupabaseURL)
		}
		if c.Supabase.ServiceRoleKey == "" {
			return fmt.Errorf("required environment variable %s is not set", EnvSupabaseServiceKey)
		}
	case BackendPostgres:
		// у postgres-бэкенда дефолты на все параметры, валидировать нечего
	default:
		return fmt.Errorf("unknown sync backend: %s", c.Sync.Backend)
	}
	return nil
}
