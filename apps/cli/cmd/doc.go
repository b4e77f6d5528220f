// Package cmd implements the reqfile CLI commands using Cobra.
//
// The root command sends the request described by one file:
//
//	reqfile request.toml
//	reqfile request.toml --env-file envs/staging.toml --verbosity detailed
//
// Available subcommands:
//   - validate: Merge and build the request without sending it
//   - version: Show reqfile version information
//   - completion: Generate shell completion scripts
package cmd
