// Package commands defines the finance-calculators CLI.
//
// Commands
//
//   - list       List calculators, optionally by category
//   - describe   Show a calculator's inputs and defaults
//   - calc       Run a calculator with key=value inputs
//   - serve      Serve the calculators over HTTP
//   - version    Print the build version
//
// # Implementation
//
// The root command loads configuration, builds the logger and registers the
// default calculators before any subcommand runs, so every subcommand works
// from the same registry and tax year.
package commands
