// Package config provides environment-based configuration.
//
// Loads from .env file (godotenv), maps to Config struct via go-simpler/env struct tags.
// Required database coordinates are validated at load time so a misconfigured
// process exits before touching the network.
package config
