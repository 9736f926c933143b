package claims

import "time"

// Config holds token service configuration.
type Config struct {
	// SigningKey signs and verifies session tokens. Must be at least 32
	// bytes of entropy.
	SigningKey string `env:"AUTH_SIGNING_KEY,required"`

	// TTL is the lifetime of issued tokens.
	TTL time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"24h"`

	// Issuer is stamped on issued tokens.
	Issuer string `env:"AUTH_TOKEN_ISSUER" envDefault:"lorekit"`
}

// NewServiceFromConfig creates a token service from the Config.
func NewServiceFromConfig(cfg Config) (*Service, error) {
	return NewService(cfg.SigningKey, WithIssuer(cfg.Issuer), WithTTL(cfg.TTL))
}
