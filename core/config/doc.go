// Package config provides centralized configuration management for locsync.
//
// The Config struct is the central repository for all application settings,
// divided into subsections: api, sync, export, storage, and log. Values come
// from environment variables (optionally via a .env file through godotenv),
// with defaults declared as struct tags and registered in Viper through
// reflection.
//
// Validate resolves everything up front: the sync and export cores receive a
// fully validated configuration and never prompt or fall back interactively.
package config
