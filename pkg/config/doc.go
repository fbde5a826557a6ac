// Package config loads environment-driven configuration into tagged structs.
//
// It reads an optional .env file with godotenv and then parses the process
// environment with caarlos0/env, so struct tags such as `env:"LOG_LEVEL"` and
// `envDefault:"info"` drive the result.
package config
