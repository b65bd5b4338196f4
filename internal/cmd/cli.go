// Package cmd declares the command-line surface. Commands are kong structs;
// Run methods receive the configured logger through kong's binding.
package cmd

// CLI is the root of the command tree.
type CLI struct {
	Config string    `help:"Path to a configuration file (json, yaml or toml)" type:"path"`
	Log    LogConfig `embed:"" prefix:"log."`

	Generate  Generate      `cmd:"" help:"Generate TypeScript declarations from a device capability schema"`
	ConfigCmd ConfigCommand `cmd:"" name:"config" help:"Configuration file helpers"`
}

// LogConfig holds the logging flags shared by all commands.
type LogConfig struct {
	Level string `help:"Log level: trace, debug, info, warn, error" default:"info" enum:"trace,debug,info,warn,error" env:"TSXAPI_LOG_LEVEL"`
	File  string `help:"Write logs to this file instead of the console" env:"TSXAPI_LOG_FILE"`
}
