package config

import (
	"time"

	"github.com/wfm-tools/keeper/internal/api"
)

// Default values for optional configuration fields.
const (
	DefaultBaseURL            = api.DefaultBaseURL
	DefaultAPITimeout         = 30 * time.Second
	DefaultRequestInterval    = 1 * time.Second
	DefaultCredentialsFile    = "cached_credentials.json"
	DefaultUpdateDelay        = 5 * time.Second
	DefaultPresenceURL        = "wss://warframe.market/socket"
	DefaultPresenceStatus     = "ingame"
	DefaultPresencePing       = 30 * time.Second
	DefaultReconnectBaseDelay = 1 * time.Second
	DefaultReconnectMaxDelay  = 60 * time.Second
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "text"
)

func (c *Config) applyDefaults() {
	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}
	if c.API.RequestInterval == 0 {
		c.API.RequestInterval = DefaultRequestInterval
	}

	// Credentials defaults
	if c.Credentials.File == "" {
		c.Credentials.File = DefaultCredentialsFile
	}

	// Refresh defaults. PassDelay and MaxPasses stay zero: a new pass
	// starts immediately and the loop runs until stopped.
	if c.Refresh.UpdateDelay == 0 {
		c.Refresh.UpdateDelay = DefaultUpdateDelay
	}

	// Presence defaults
	if c.Presence.URL == "" {
		c.Presence.URL = DefaultPresenceURL
	}
	if c.Presence.Status == "" {
		c.Presence.Status = DefaultPresenceStatus
	}
	if c.Presence.PingInterval == 0 {
		c.Presence.PingInterval = DefaultPresencePing
	}
	if c.Presence.ReconnectBaseDelay == 0 {
		c.Presence.ReconnectBaseDelay = DefaultReconnectBaseDelay
	}
	if c.Presence.ReconnectMaxDelay == 0 {
		c.Presence.ReconnectMaxDelay = DefaultReconnectMaxDelay
	}

	// Log defaults
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}
