package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	if c.API.Timeout <= 0 {
		return errors.New("api.timeout must be positive")
	}
	if c.API.RequestInterval <= 0 {
		return errors.New("api.request_interval must be positive")
	}

	if c.Credentials.File == "" {
		return errors.New("credentials.file is required")
	}

	if c.Refresh.UpdateDelay < 0 {
		return errors.New("refresh.update_delay cannot be negative")
	}
	if c.Refresh.PassDelay < 0 {
		return errors.New("refresh.pass_delay cannot be negative")
	}
	if c.Refresh.MaxPasses < 0 {
		return errors.New("refresh.max_passes cannot be negative")
	}

	if c.Presence.Enabled {
		if c.Presence.URL == "" {
			return errors.New("presence.url is required when presence is enabled")
		}
		switch c.Presence.Status {
		case "ingame", "online", "invisible":
		default:
			return fmt.Errorf("presence.status must be ingame, online, or invisible, got %q", c.Presence.Status)
		}
		if c.Presence.PingInterval <= 0 {
			return errors.New("presence.ping_interval must be positive")
		}
		if c.Presence.ReconnectBaseDelay <= 0 {
			return errors.New("presence.reconnect_base_delay must be positive")
		}
		if c.Presence.ReconnectMaxDelay < c.Presence.ReconnectBaseDelay {
			return fmt.Errorf("presence.reconnect_max_delay (%v) cannot be below reconnect_base_delay (%v)",
				c.Presence.ReconnectMaxDelay, c.Presence.ReconnectBaseDelay)
		}
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn, or error, got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}

	return nil
}
