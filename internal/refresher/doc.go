// Package refresher implements the order refresh loop.
//
// The refresher:
//   - Lists the account's visible orders, sell orders before buy orders
//   - Re-submits each order unchanged to bump its last-update timestamp
//   - Waits a fixed delay after every update to pace requests
//   - Logs and skips orders that fail to update; a failed listing ends the run
package refresher
