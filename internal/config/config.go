package config

import (
	"crypto/sha256"
	"encoding/base64"
	"strings"

	"camp-backend/internal/utils"
)

// Config is assembled once at startup and passed explicitly into the app.
// Nothing reads the environment after Load returns.
type Config struct {
	Env           string
	DatabaseURL   string
	SessionSecret string
	Port          string
	UploadDir     string
	CookieName    string
}

func Load() *Config {
	connString := utils.GetEnv("DATABASE_URL", "")
	if connString == "" {
		// Fallback to individual vars
		connString = "postgres://" + utils.GetEnv("POSTGRES_USER", "postgres") + ":" +
			utils.GetEnv("POSTGRES_PASSWORD", "postgres") + "@" +
			utils.GetEnv("POSTGRES_HOST", "localhost") + ":" +
			utils.GetEnv("POSTGRES_PORT", "5432") + "/" +
			utils.GetEnv("POSTGRES_DB", "campdb") + "?sslmode=disable"
	}

	return &Config{
		Env:           utils.GetEnv("APP_ENV", "development"),
		DatabaseURL:   connString,
		SessionSecret: utils.GetEnv("SESSION_SECRET", "mysecret"),
		Port:          utils.GetEnv("PORT", "8080"),
		UploadDir:     utils.GetEnv("UPLOAD_DIR", "uploads"),
		CookieName:    utils.GetEnv("SESSION_COOKIE", "campsess"),
	}
}

// CookieKey derives the encryptcookie key from the session secret.
// The middleware wants a base64-encoded 32-byte key, the secret is free-form.
func (c *Config) CookieKey() string {
	sum := sha256.Sum256([]byte(c.SessionSecret))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// Origins allowed by the content security policy. Everything else in these
// categories is rejected by the browser.
var (
	scriptSrcURLs = []string{
		"https://stackpath.bootstrapcdn.com/",
		"https://kit.fontawesome.com/",
		"https://cdnjs.cloudflare.com/",
		"https://cdn.jsdelivr.net",
	}
	styleSrcURLs = []string{
		"https://kit-free.fontawesome.com/",
		"https://stackpath.bootstrapcdn.com/",
		"https://fonts.googleapis.com/",
		"https://use.fontawesome.com/",
		"https://cdn.jsdelivr.net",
	}
	connectSrcURLs = []string{
		"https://api.mapbox.com/",
		"https://events.mapbox.com/",
	}
	imgSrcURLs = []string{
		"https://res.cloudinary.com/",
		"https://images.unsplash.com/",
	}
)

// ContentSecurityPolicy builds the policy string handed to the helmet
// middleware.
func (c *Config) ContentSecurityPolicy() string {
	directives := []string{
		"default-src 'none'",
		"connect-src 'self' " + strings.Join(connectSrcURLs, " "),
		"script-src 'unsafe-inline' 'self' " + strings.Join(scriptSrcURLs, " "),
		"style-src 'self' 'unsafe-inline' " + strings.Join(styleSrcURLs, " "),
		"worker-src 'self' blob:",
		"img-src 'self' blob: data: " + strings.Join(imgSrcURLs, " "),
		"font-src 'self'",
		"form-action 'self'",
	}
	return strings.Join(directives, "; ")
}
