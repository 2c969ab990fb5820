// Package config loads keeper configuration from a YAML file, a .env
// file, and the process environment. Environment variables override file
// values; defaults fill whatever remains.
package config

import "time"

// Config is the root configuration for a keeper instance.
type Config struct {
	API         APIConfig         `yaml:"api"`
	Credentials CredentialsConfig `yaml:"credentials"`
	Refresh     RefreshConfig     `yaml:"refresh"`
	Presence    PresenceConfig    `yaml:"presence"`
	Log         LogConfig         `yaml:"log"`
}

// APIConfig holds Warframe Market API settings.
type APIConfig struct {
	BaseURL         string        `yaml:"base_url" envconfig:"KEEPER_API_BASE_URL"`
	Timeout         time.Duration `yaml:"timeout" envconfig:"KEEPER_API_TIMEOUT"`
	RequestInterval time.Duration `yaml:"request_interval" envconfig:"KEEPER_API_REQUEST_INTERVAL"` // minimum gap between requests
}

// CredentialsConfig holds the credential cache and sign-in settings.
type CredentialsConfig struct {
	File  string `yaml:"file" envconfig:"KEEPER_CREDENTIALS_FILE"`
	Email string `yaml:"email" envconfig:"KEEPER_CREDENTIALS_EMAIL"` // pre-fills the sign-in prompt
}

// RefreshConfig holds refresh loop settings.
type RefreshConfig struct {
	UpdateDelay time.Duration `yaml:"update_delay" envconfig:"KEEPER_REFRESH_UPDATE_DELAY"`
	PassDelay   time.Duration `yaml:"pass_delay" envconfig:"KEEPER_REFRESH_PASS_DELAY"`
	MaxPasses   int           `yaml:"max_passes" envconfig:"KEEPER_REFRESH_MAX_PASSES"` // 0 = run until stopped
}

// PresenceConfig holds WebSocket presence settings. Disabled by default;
// the refresh loop works without it.
type PresenceConfig struct {
	Enabled            bool          `yaml:"enabled" envconfig:"KEEPER_PRESENCE_ENABLED"`
	URL                string        `yaml:"url" envconfig:"KEEPER_PRESENCE_URL"`
	Status             string        `yaml:"status" envconfig:"KEEPER_PRESENCE_STATUS"`
	PingInterval       time.Duration `yaml:"ping_interval" envconfig:"KEEPER_PRESENCE_PING_INTERVAL"`
	ReconnectBaseDelay time.Duration `yaml:"reconnect_base_delay" envconfig:"KEEPER_PRESENCE_RECONNECT_BASE_DELAY"`
	ReconnectMaxDelay  time.Duration `yaml:"reconnect_max_delay" envconfig:"KEEPER_PRESENCE_RECONNECT_MAX_DELAY"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level" envconfig:"KEEPER_LOG_LEVEL"`
	Format string `yaml:"format" envconfig:"KEEPER_LOG_FORMAT"`
}
