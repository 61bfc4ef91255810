package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains configuration parameters of the web server, the CLI and the development backend.
type Config struct {
	LogLevel    int     `env:"LOG_LEVEL" envDefault:"0"`
	LogFormat   string  `env:"LOG_FORMAT" envDefault:"text"`
	Environment string  `env:"APP_ENV" envDefault:"development"`
	HTTP        HTTP    `envPrefix:"HTTP_"`
	Backend     Backend `envPrefix:"BACKEND_"`
	Session     Session `envPrefix:"SESSION_"`
	DevAPI      DevAPI  `envPrefix:"DEVAPI_"`
	CLI         CLI     `envPrefix:"CLI_"`
}

// HTTP contains web server parameters.
type HTTP struct {
	Port               string        `env:"PORT" envDefault:"8080"`
	EnableHTTPS        bool          `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string        `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string        `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
	ReadHeaderTimeout  time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Backend contains parameters of the remote finance API.
type Backend struct {
	BaseURL string        `env:"BASE_URL" envDefault:"http://localhost:8081"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// Session contains session guard and cookie parameters.
type Session struct {
	ProtectedPrefixes []string `env:"PROTECTED_PREFIXES" envDefault:"/dashboard,/entries,/forecast,/summary" envSeparator:","`
	LoginPath         string   `env:"LOGIN_PATH" envDefault:"/login"`
	HomePath          string   `env:"HOME_PATH" envDefault:"/dashboard"`
	RefreshOnlyPolicy string   `env:"REFRESH_ONLY_POLICY" envDefault:"soft-pass"`
	SameSite          string   `env:"SAME_SITE" envDefault:"lax"`
}

// DevAPI contains development backend parameters.
type DevAPI struct {
	Port         string        `env:"PORT" envDefault:"8081"`
	JWTSecret    string        `env:"JWT_SECRET" envDefault:"devsecret"`
	AccessTTL    time.Duration `env:"ACCESS_TTL" envDefault:"15m"`
	DemoEmail    string        `env:"DEMO_EMAIL" envDefault:"demo@fintrack.local"`
	DemoPassword string        `env:"DEMO_PASSWORD" envDefault:"demo12345"`
}

// CLI contains terminal client parameters.
type CLI struct {
	StorePath string `env:"STORE_PATH"`
}

// IsProduction reports whether the application runs in a production deployment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	switch cfg.Session.SameSite {
	case "lax", "strict":
	default:
		return nil, fmt.Errorf("failed to parse config: unsupported SESSION_SAME_SITE %q", cfg.Session.SameSite)
	}

	return &cfg, nil
}
