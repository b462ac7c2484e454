package config

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int            `yaml:"port"`
	Env            string         `yaml:"env"` // "development" | "production"
	Database       DatabaseConfig `yaml:"database"`
	RedisURL       string         `yaml:"redis_url"`
	AllowedOrigins []string       `yaml:"allowed_origins"`

	// Single shared admin credential. When AdminPasswordBcrypt is set it
	// takes precedence and AdminPassword is ignored.
	AdminPassword       string `yaml:"admin_password"`
	AdminPasswordBcrypt string `yaml:"admin_password_bcrypt"`
	JWTSecret           string `yaml:"jwt_secret"`

	S3   S3Config   `yaml:"s3"`
	Mail MailConfig `yaml:"mail"`
}

// DatabaseConfig selects the GORM dialector.
type DatabaseConfig struct {
	Driver string `yaml:"driver"` // "mysql" (default) | "sqlite"
	DSN    string `yaml:"dsn"`
}

// S3Config configures the object storage gateway used for presigned uploads.
type S3Config struct {
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	Bucket          string `yaml:"bucket"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	CustomDomain    string `yaml:"custom_domain"`
	PathStyleAccess bool   `yaml:"path_style_access"`
}

// MailConfig configures the outbound mail sender for contact intake.
type MailConfig struct {
	Enable    bool   `yaml:"enable"`
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	User      string `yaml:"user"`
	Pass      string `yaml:"pass"`
	From      string `yaml:"from"`
	ReplyTo   string `yaml:"reply_to"`
	UseResend bool   `yaml:"use_resend"`
	ResendKey string `yaml:"resend_key"`
	ContactTo string `yaml:"contact_to"`
}
