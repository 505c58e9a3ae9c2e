// Package domain defines the core entities (User, Post) and the repository
// interfaces implemented by the database layer.
package domain
