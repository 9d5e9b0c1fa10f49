package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, loaded from the environment.
type Config struct {
	Issuer string `env:"AGRISENSE_ISSUER" envDefault:"agrisense"`

	// JWTSeed is a base64url encoded 32 byte Ed25519 seed. When empty an
	// ephemeral key is generated, which invalidates access tokens across
	// restarts.
	JWTSeed string `env:"AGRISENSE_JWT_SEED"`

	DatabaseFile string `env:"AGRISENSE_DATABASE_FILE" envDefault:"agrisense.db"`

	Port                 int           `env:"PORT" envDefault:"8080"`
	LogLevel             string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat            string        `env:"LOG_FORMAT" envDefault:"json"`
	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1h"`
	OTPRetention         time.Duration `env:"OTP_RETENTION" envDefault:"24h"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
