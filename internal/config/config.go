// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// Application environments. APP_ENV selects how much error detail is
// exposed and whether the session cookie is marked Secure.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// passwordPlaceholders are substituted in DATABASE with DATABASE_PASSWORD.
var passwordPlaceholders = []string{"<password>", "<PASSWORD>"}

// StructuredConfig is the top-level configuration container for the
// go-natours server. It aggregates all sub-configurations and is populated
// by merging values from the env file, environment variables, command-line
// flags, an optional JSON file and built-in defaults.
//
// Variable names are flat (no prefixes) so an existing config.env keeps
// working unchanged.
type StructuredConfig struct {
	// App holds application-level settings.
	App App

	// Storage holds the relational database settings.
	Storage Storage

	// Server holds listener addresses and timeouts.
	Server Server

	// Auth holds JWT session token settings.
	Auth Auth

	// Payment holds the Stripe credentials.
	Payment Payment

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Env is either "development" or "production".
	// Env: APP_ENV
	Env string `env:"APP_ENV"`

	// PublicURL is the externally visible base URL used to build checkout
	// redirect URLs. When empty it is derived from each request.
	// Env: PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL"`
}

// IsDevelopment reports whether the application runs in development mode.
func (a App) IsDevelopment() bool {
	return a.Env == EnvDevelopment
}

// Storage groups the configuration for storage backends.
type Storage struct {
	DB DB
}

// DB holds connection settings for PostgreSQL.
type DB struct {
	// URI is the connection string; it may contain a <password> placeholder.
	// Env: DATABASE
	URI string `env:"DATABASE"`

	// Password replaces the placeholder in URI.
	// Env: DATABASE_PASSWORD
	Password string `env:"DATABASE_PASSWORD"`
}

// DSN returns the connection string with the password substituted.
func (db DB) DSN() string {
	dsn := db.URI
	for _, p := range passwordPlaceholders {
		dsn = strings.ReplaceAll(dsn, p, db.Password)
	}
	return dsn
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// Host is the interface the listeners bind to; empty means all.
	// Env: HOST
	Host string `env:"HOST"`

	// Port is the HTTP listener port.
	// Env: PORT
	Port int `env:"PORT"`

	// GRPCPort is the gRPC health listener port. Zero disables it.
	// Env: GRPC_PORT
	GRPCPort int `env:"GRPC_PORT"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT"`
}

// HTTPAddress returns the host:port the HTTP server listens on.
func (s Server) HTTPAddress() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// GRPCAddress returns the host:port the gRPC server listens on, or an
// empty string when gRPC is disabled.
func (s Server) GRPCAddress() string {
	if s.GRPCPort == 0 {
		return ""
	}
	return net.JoinHostPort(s.Host, strconv.Itoa(s.GRPCPort))
}

// Auth holds JWT session settings.
type Auth struct {
	// JWTSecret signs and verifies session tokens.
	// Env: JWT_SECRET
	JWTSecret string `env:"JWT_SECRET"`

	// JWTExpiresIn is the token lifetime. Accepts Go durations and a "d"
	// day suffix (e.g. "90d").
	// Env: JWT_EXPIRES_IN
	JWTExpiresIn time.Duration `env:"JWT_EXPIRES_IN"`

	// CookieExpiresInDays is the lifetime of the jwt cookie in days.
	// Env: JWT_COOKIE_EXPIRES_IN
	CookieExpiresInDays int `env:"JWT_COOKIE_EXPIRES_IN"`
}

// CookieMaxAge returns the cookie lifetime.
func (a Auth) CookieMaxAge() time.Duration {
	return time.Duration(a.CookieExpiresInDays) * 24 * time.Hour
}

// Payment holds Stripe credentials. Checkout is disabled when SecretKey
// is empty.
type Payment struct {
	// Env: STRIPE_SECRET_KEY
	StripeSecretKey string `env:"STRIPE_SECRET_KEY"`

	// Env: STRIPE_WEBHOOK_SECRET
	StripeWebhookSecret string `env:"STRIPE_WEBHOOK_SECRET"`
}

// Enabled reports whether Stripe credentials were configured.
func (p Payment) Enabled() bool {
	return p.StripeSecretKey != ""
}

// defaults returns the lowest-priority configuration source.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{Env: EnvProduction},
		Server: Server{
			Port:           3000,
			RequestTimeout: 30 * time.Second,
		},
		Auth: Auth{
			JWTExpiresIn:        90 * 24 * time.Hour,
			CookieExpiresInDays: 90,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. Sources in priority order (first non-zero value wins):
//  1. Environment variables (after loading the env file)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnvFile().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
