// Package redis connects to a Redis server with startup retry and exposes a
// readiness probe. The resulting client backs the session membership cache.
package redis
