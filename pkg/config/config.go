package config

import (
	"errors"
	"os"
	"time"

	env "github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

type Config struct {
	// APIBaseURL points at the reservation backend, e.g.
	// https://localhost:44319/api.
	APIBaseURL string `env:"API_BASE_URL" envDefault:"https://localhost:44319/api"`

	// APITimeout is the whole-request budget; the backend contract
	// allows 10 seconds.
	APITimeout time.Duration `env:"API_TIMEOUT" envDefault:"10s"`

	// APIRetryAttempts stays 0 by default: failures surface to the
	// caller, the backend contract defines no retries.
	APIRetryAttempts int `env:"API_RETRY_ATTEMPTS" envDefault:"0"`

	// SessionFile is the durable session store, the localStorage
	// replacement.
	SessionFile string `env:"SESSION_FILE" envDefault:".reservas-session.json"`

	// SessionRefreshInterval drives the periodic re-read of the
	// session file to pick up external mutation.
	SessionRefreshInterval time.Duration `env:"SESSION_REFRESH_INTERVAL" envDefault:"1m"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// TLSInsecureSkipVerify accepts the backend's self-signed dev
	// certificate. Never enable outside local development.
	TLSInsecureSkipVerify bool `env:"TLS_INSECURE_SKIP_VERIFY" envDefault:"false"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
