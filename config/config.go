package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the application configuration.
type Config struct {
	Port      int
	MongoURI  string
	MongoDB   string
	Env       string
	PublicDir string

	// SMTP notification settings. Email sending is optional: the notifier
	// is only constructed when host, user and password are all present.
	EmailHost  string
	EmailPort  int
	EmailUser  string
	EmailPass  string
	AdminEmail string

	// Admin endpoints stay open (the original deployment had no accounts)
	// unless AdminPassword is set.
	AdminPassword string
	JWTKey        string

	CORSAllowOrigins []string
}

// LoadConfig reads configuration from the environment, with a best-effort
// .env load first.
func LoadConfig() *Config {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("PORT", "3000"))
	emailPort, _ := strconv.Atoi(getEnv("EMAIL_PORT", "587"))

	return &Config{
		Port:      port,
		MongoURI:  getEnv("MONGODB_URI", "mongodb://127.0.0.1:27017"),
		MongoDB:   getEnv("MONGO_DB", "labax"),
		Env:       getEnv("NODE_ENV", "development"),
		PublicDir: getEnv("PUBLIC_DIR", "public"),

		EmailHost:  getEnv("EMAIL_HOST", ""),
		EmailPort:  emailPort,
		EmailUser:  getEnv("EMAIL_USER", ""),
		EmailPass:  getEnv("EMAIL_PASS", ""),
		AdminEmail: getEnv("ADMIN_EMAIL", "sales@thelabax.com"),

		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		JWTKey:        getEnv("JWT_KEY", "labax-dev-key"),

		CORSAllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
	}
}

// Debug reports whether the server runs outside production.
func (c *Config) Debug() bool {
	return c.Env != "production"
}

// EmailEnabled reports whether the SMTP notification capability is
// configured.
func (c *Config) EmailEnabled() bool {
	return c.EmailHost != "" && c.EmailUser != "" && c.EmailPass != ""
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
