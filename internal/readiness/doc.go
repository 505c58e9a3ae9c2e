// Package readiness implements the startup-ordering gate between the API
// process and its database: an explicit state machine
// (pending -> probing -> ready | failed) around a bounded health-check loop.
package readiness
