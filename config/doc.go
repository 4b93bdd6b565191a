// Package config loads and validates the application configuration from
// a YAML file, a .env file and environment variables, in that order of
// increasing precedence.
//
// Configuration is an explicit structure handed to collaborator
// constructors. Nothing in this repository reads configuration from
// package-level mutable state, and the aligner core takes no
// configuration at all.
package config
