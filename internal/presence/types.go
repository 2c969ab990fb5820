package presence

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Errors
var (
	ErrNotConnected    = errors.New("not connected")
	ErrStaleConnection = errors.New("connection stale (no ping)")
)

// setStatusType is the socket message type that changes the account's
// visible status.
const setStatusType = "@WS/USER/SET_STATUS"

// statusMessage is the wire form of a status change.
type statusMessage struct {
	Type    string `json:"type"`
	Payload string `json:"payload"`
}

// StatusFrame encodes the message that sets the account's visible status.
func StatusFrame(status string) ([]byte, error) {
	data, err := json.Marshal(statusMessage{
		Type:    setStatusType,
		Payload: status,
	})
	if err != nil {
		return nil, fmt.Errorf("encode status message: %w", err)
	}
	return data, nil
}

// Config configures the presence keeper.
type Config struct {
	URL                string        // WebSocket URL (e.g., wss://warframe.market/socket)
	Status             string        // Status to hold: ingame, online, invisible
	PingInterval       time.Duration // How often to ping the server
	PingTimeout        time.Duration // Max time without ping traffic before the link counts as stale
	WriteTimeout       time.Duration // Write deadline for sends
	ReconnectBaseDelay time.Duration // First wait between reconnect attempts
	ReconnectMaxDelay  time.Duration // Cap on the reconnect wait
	BufferSize         int           // Inbound message channel buffer
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		URL:                "wss://warframe.market/socket",
		Status:             "ingame",
		PingInterval:       30 * time.Second,
		PingTimeout:        90 * time.Second,
		WriteTimeout:       5 * time.Second,
		ReconnectBaseDelay: 1 * time.Second,
		ReconnectMaxDelay:  60 * time.Second,
		BufferSize:         64,
	}
}
