// Package pg provides PostgreSQL connection pooling with startup retry,
// goose-based schema migrations, and pgx error classification helpers used
// by the membership store.
package pg
