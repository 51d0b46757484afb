package config

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	Security SecurityConfig `yaml:"security"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
	Mode string `yaml:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"` // sqlite, mysql, postgres
	DSN    string `yaml:"dsn"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	ExpireHour int    `yaml:"expire_hour"`
}

type SecurityConfig struct {
	BcryptCost int `yaml:"bcrypt_cost"`
}

var GlobalConfig *Config

func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config.yaml"
	}

	var cfg *Config

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, err
		}
		cfg = &fileCfg
	}

	cfg.overrideFromEnv()
	cfg.applyDefaults()
	GlobalConfig = cfg
	return cfg, nil
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: "8080",
			Mode: "debug",
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			DSN:    "skillhub.db",
		},
		JWT: JWTConfig{
			Secret:     "skillhub-secret-key-change-in-production",
			ExpireHour: 168, // 7 days
		},
		Security: SecurityConfig{
			BcryptCost: 12,
		},
	}
}

func (c *Config) overrideFromEnv() {
	if host := os.Getenv("SERVER_HOST"); host != "" {
		c.Server.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		c.Server.Port = port
	}
	if mode := os.Getenv("SERVER_MODE"); mode != "" {
		c.Server.Mode = mode
	}
	if driver := os.Getenv("DB_DRIVER"); driver != "" {
		c.Database.Driver = driver
	}
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		c.Database.DSN = dsn
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		c.JWT.Secret = secret
	}
	if hours := os.Getenv("JWT_EXPIRE_HOURS"); hours != "" {
		if h, err := strconv.Atoi(hours); err == nil && h > 0 {
			c.JWT.ExpireHour = h
		}
	}
	if cost := os.Getenv("BCRYPT_COST"); cost != "" {
		if n, err := strconv.Atoi(cost); err == nil && n > 0 {
			c.Security.BcryptCost = n
		}
	}
}

// applyDefaults fills in zero values left by a partial config file.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Server.Host == "" {
		c.Server.Host = def.Server.Host
	}
	if c.Server.Port == "" {
		c.Server.Port = def.Server.Port
	}
	if c.Server.Mode == "" {
		c.Server.Mode = def.Server.Mode
	}
	if c.Database.Driver == "" {
		c.Database.Driver = def.Database.Driver
	}
	if c.Database.DSN == "" {
		c.Database.DSN = def.Database.DSN
	}
	if c.JWT.Secret == "" {
		c.JWT.Secret = def.JWT.Secret
	}
	if c.JWT.ExpireHour <= 0 {
		c.JWT.ExpireHour = def.JWT.ExpireHour
	}
	if c.Security.BcryptCost <= 0 {
		c.Security.BcryptCost = def.Security.BcryptCost
	}
}

func (c *Config) Save(configPath string) error {
	if configPath == "" {
		configPath = "config.yaml"
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}
