// Package model defines the domain types shared across the keeper.
//
// Conventions:
//   - Prices: integer platinum (the marketplace currency has no fractions)
//   - Timestamps: time.Time, parsed once at the API boundary
//   - IDs: opaque strings assigned by the marketplace
//
// All values are immutable snapshots of server state; a fresh value is
// built on every fetch and none outlives a single refresh pass.
package model
