// Package config loads service configuration from YAML files and
// environment variables, with optional .env file support.
//
// Lookup order: config file values form the base, then environment
// variables (including those loaded from a .env file) override them.
package config
