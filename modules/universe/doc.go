// Package universe is the HTTP module for universe management: CRUD on
// universes, self-service joining, and member administration. It wires the
// full authorization chain for its routes: bearer token parsing, session
// resolution against the membership store, and per-route permission guards.
package universe
