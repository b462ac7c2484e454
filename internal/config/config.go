package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is used when no -config flag is given.
const DefaultConfigPath = "config.yml"

// Load reads and validates the YAML config file at path.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := defaultAppConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	normalize(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port:     3000,
		Env:      "production",
		Database: DatabaseConfig{Driver: "mysql"},
	}
}

func normalize(cfg *AppConfig) {
	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))
	if cfg.Env == "dev" {
		cfg.Env = "development"
	}
	if cfg.Env == "" || cfg.Env == "prod" {
		cfg.Env = "production"
	}

	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "mysql"
	}

	cfg.S3.CustomDomain = strings.TrimRight(strings.TrimSpace(cfg.S3.CustomDomain), "/")

	origins := make([]string, 0, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	cfg.AllowedOrigins = origins
}

// Validate enforces the required configuration surface. Startup must fail
// immediately when a required value is absent or malformed.
func (c *AppConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: invalid port %d", c.Port)
	}
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("config: database.dsn is required")
	}
	if c.Database.Driver != "mysql" && c.Database.Driver != "sqlite" {
		return fmt.Errorf("config: unsupported database driver %q", c.Database.Driver)
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("config: jwt_secret is required")
	}
	if strings.TrimSpace(c.AdminPassword) == "" && strings.TrimSpace(c.AdminPasswordBcrypt) == "" {
		return fmt.Errorf("config: admin_password or admin_password_bcrypt is required")
	}
	if err := c.S3.validate(); err != nil {
		return err
	}
	return nil
}

func (s S3Config) validate() error {
	missing := []string{}
	if strings.TrimSpace(s.Region) == "" {
		missing = append(missing, "region")
	}
	if strings.TrimSpace(s.Bucket) == "" {
		missing = append(missing, "bucket")
	}
	if strings.TrimSpace(s.AccessKeyID) == "" {
		missing = append(missing, "access_key_id")
	}
	if strings.TrimSpace(s.SecretAccessKey) == "" {
		missing = append(missing, "secret_access_key")
	}
	if len(missing) > 0 {
		return fmt.Errorf("config: incomplete s3 config, missing %s", strings.Join(missing, ", "))
	}
	return nil
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return c.Env == "development"
}

// MailEnabled reports whether outbound mail is configured.
func (c *AppConfig) MailEnabled() bool {
	return c.Mail.Enable
}
