package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks cross-field constraints the struct tags cannot express.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}

	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters")
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be positive")
	}
	if c.Auth.EmailTokenTTL <= 0 {
		return fmt.Errorf("auth.email_token_ttl must be positive")
	}

	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database.max_conns (%d) below min_conns (%d)",
			c.Database.MaxConns, c.Database.MinConns)
	}

	if c.Notify.RecentWindow < time.Second || c.Notify.RecentWindow > 5*time.Minute {
		return fmt.Errorf("notify.recent_window %s out of range [1s, 5m]", c.Notify.RecentWindow)
	}
	if c.Notify.Enabled && c.Notify.SMTPHost != "" && c.Notify.From == "" {
		return fmt.Errorf("notify.from is required when SMTP is configured")
	}
	if !strings.HasPrefix(c.Notify.SiteURL, "http://") && !strings.HasPrefix(c.Notify.SiteURL, "https://") {
		return fmt.Errorf("notify.site_url must be an absolute http(s) URL")
	}

	if c.Content.SectionPageSize < 1 || c.Content.DashboardPageSize < 1 {
		return fmt.Errorf("content page sizes must be positive")
	}
	if c.Content.SnippetRadius < 10 {
		return fmt.Errorf("content.snippet_radius must be at least 10")
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug|info|warn|error", c.Log.Level)
	}

	return nil
}
