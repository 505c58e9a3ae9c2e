// Package database provides PostgreSQL connectivity and repositories.
//
// Uses pgx for connection pooling and tern for embedded schema migrations.
// Repositories implement domain interfaces: UserRepository, PostRepository.
// ReadinessProbe supplies the health check the startup gate runs before the
// pool is ever created.
package database
