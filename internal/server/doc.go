// Package server implements the HTTP server using Echo framework.
//
// Routes: users and posts CRUD, plus observability (health, metrics, version).
// Handlers split by domain: handlers_users.go, handlers_posts.go, handlers_health.go.
package server
