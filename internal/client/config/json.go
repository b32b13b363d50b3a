package config

import (
	"encoding/json"
	"os"

	"github.com/Moha-Why/WorkOut-sub000/internal/flagx"
	"github.com/Moha-Why/WorkOut-sub000/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "5m"
// or as integer nanoseconds.
type JsonConfig struct {
	DatabasePath        string         `json:"database_path"`
	RemoteDSN           string         `json:"remote_dsn"`
	AccessToken         string         `json:"access_token"`
	UserID              string         `json:"user_id"`
	SyncInterval        timex.Duration `json:"sync_interval"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	RemoteCallTimeout   timex.Duration `json:"remote_call_timeout"`
	CacheTTL            timex.Duration `json:"cache_ttl"`
	MaxRetries          *uint64        `json:"max_retries"`
	RetryBaseDelay      timex.Duration `json:"retry_base_delay"`
	RetryMaxDelay       timex.Duration `json:"retry_max_delay"`
}

// parseJson overlays Config with values loaded from a JSON file, resolved
// via the -c/-config flags. Fields left at their zero value in the file keep
// the earlier (default) value. Intended usage is:
// defaults -> parseJson -> parseFlags, later stages overriding earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RemoteDSN != "" {
		cfg.RemoteDSN = jc.RemoteDSN
	}
	if jc.AccessToken != "" {
		cfg.AccessToken = jc.AccessToken
	}
	if jc.UserID != "" {
		cfg.UserID = jc.UserID
	}
	if jc.SyncInterval.Duration != 0 {
		cfg.SyncInterval = jc.SyncInterval.Duration
	}
	if jc.OnlineCheckInterval.Duration != 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.RemoteCallTimeout.Duration != 0 {
		cfg.RemoteCallTimeout = jc.RemoteCallTimeout.Duration
	}
	if jc.CacheTTL.Duration != 0 {
		cfg.CacheTTL = jc.CacheTTL.Duration
	}
	if jc.MaxRetries != nil {
		cfg.MaxRetries = *jc.MaxRetries
	}
	if jc.RetryBaseDelay.Duration != 0 {
		cfg.RetryBaseDelay = jc.RetryBaseDelay.Duration
	}
	if jc.RetryMaxDelay.Duration != 0 {
		cfg.RetryMaxDelay = jc.RetryMaxDelay.Duration
	}
}
