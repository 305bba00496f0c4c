// Package cli provides command-line interface setup and configuration
// for the stevens application. It handles flag parsing, command
// creation, credentials and configuration management using cobra,
// viper and env.
package cli
