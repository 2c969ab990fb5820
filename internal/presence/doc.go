// Package presence holds the account's online status on the marketplace
// WebSocket. Item listings only surface orders from users who are in game,
// so a refresher that keeps orders fresh but lets the account go offline
// loses most of its effect.
//
// The presence keeper:
//   - Dials the socket with the account's auth headers
//   - Sets the configured status (ingame by default) once connected
//   - Replies to server pings and pings on its own to detect stale links
//   - Reconnects with exponential backoff and re-sets the status
package presence
