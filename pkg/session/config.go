package session

import "time"

// Config holds session resolution configuration.
type Config struct {
	// MembershipCacheTTL bounds membership cache staleness. Zero disables
	// caching.
	MembershipCacheTTL time.Duration `env:"SESSION_MEMBERSHIP_CACHE_TTL" envDefault:"1m"`

	// RedisCachePrefix namespaces membership cache keys in a shared Redis
	// instance.
	RedisCachePrefix string `env:"SESSION_REDIS_CACHE_PREFIX" envDefault:"lorekit"`
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{
		MembershipCacheTTL: DefaultCacheTTL,
		RedisCachePrefix:   "lorekit",
	}
}
