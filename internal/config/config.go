package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Content  ContentConfig  `yaml:"content"`
	Notify   NotifyConfig   `yaml:"notify"`
	CORS     CORSConfig     `yaml:"cors"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
}

// AuthConfig holds token settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"wuguan"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"12h"`
	EmailTokenTTL  time.Duration `yaml:"email_token_ttl"  env:"AUTH_EMAIL_TOKEN_TTL"  env-default:"24h"`
}

// ContentConfig holds publishing and listing settings.
type ContentConfig struct {
	SectionPageSize   int `yaml:"section_page_size"   env:"CONTENT_SECTION_PAGE_SIZE"   env-default:"10"`
	DashboardPageSize int `yaml:"dashboard_page_size" env:"CONTENT_DASHBOARD_PAGE_SIZE" env-default:"6"`
	QuickSearchLimit  int `yaml:"quick_search_limit"  env:"CONTENT_QUICK_SEARCH_LIMIT"  env-default:"5"`
	SnippetRadius     int `yaml:"snippet_radius"      env:"CONTENT_SNIPPET_RADIUS"      env-default:"80"`
}

// NotifyConfig holds notification dispatch settings.
type NotifyConfig struct {
	Enabled bool   `yaml:"enabled"  env:"NOTIFY_ENABLED"  env-default:"true"`
	SiteURL string `yaml:"site_url" env:"NOTIFY_SITE_URL" env-default:"http://localhost:8080"`
	From    string `yaml:"from"     env:"NOTIFY_FROM"     env-default:"noreply@localhost"`
	// RecentWindow is how long a freshly created post suppresses update
	// notifications triggered by its own initial revision.
	RecentWindow time.Duration `yaml:"recent_window" env:"NOTIFY_RECENT_WINDOW" env-default:"30s"`

	SMTPHost string `yaml:"smtp_host" env:"NOTIFY_SMTP_HOST"`
	SMTPPort int    `yaml:"smtp_port" env:"NOTIFY_SMTP_PORT" env-default:"587"`
	SMTPUser string `yaml:"smtp_user" env:"NOTIFY_SMTP_USER"`
	SMTPPass string `yaml:"smtp_pass" env:"NOTIFY_SMTP_PASS"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
