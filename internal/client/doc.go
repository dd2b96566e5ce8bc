// Package client assembles the cashbook identity client: configuration,
// structured logging, the durable SQLite record store, the HTTP identity
// provider adapter, and the session/profile-sync services, wired in
// dependency order. Command binaries construct an [App] and drive it; no
// business logic lives here.
package client
