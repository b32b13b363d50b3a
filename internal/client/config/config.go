package config

import "time"

// Config holds runtime settings for the offline workout client.
//
// Units: all intervals are time.Duration values (e.g. 5*time.Minute).
type Config struct {
	// DatabasePath is the sqlite file holding the offline cache and journal.
	DatabasePath string
	// RemoteDSN is the Postgres DSN of the backend store; empty means the
	// client starts offline-only.
	RemoteDSN string
	// AccessToken is the auth collaborator's JWT; its subject claim
	// identifies the current user.
	AccessToken string
	// UserID overrides token-derived identity (mostly for development).
	UserID string

	// SyncInterval is the periodic full-pass safety net.
	SyncInterval time.Duration
	// OnlineCheckInterval is how often the client probes reachability.
	OnlineCheckInterval time.Duration
	// RemoteCallTimeout bounds one remote insert or ping.
	RemoteCallTimeout time.Duration
	// CacheTTL is the cached-entity expiry window.
	CacheTTL time.Duration

	// Retry policy for remote writes.
	MaxRetries    uint64
	RetryBaseDelay time.Duration
	RetryMaxDelay  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "workouts.db"
	c.SyncInterval = 5 * time.Minute
	c.OnlineCheckInterval = 30 * time.Second
	c.RemoteCallTimeout = 10 * time.Second
	c.CacheTTL = 7 * 24 * time.Hour
	c.MaxRetries = 3
	c.RetryBaseDelay = time.Second
	c.RetryMaxDelay = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
