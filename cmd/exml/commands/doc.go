// Package commands defines the exml CLI.
//
// Commands
//
//   - summary   Print region counts and the layout grid of a backup
//   - fmt       Rewrite a backup in canonical form
//   - find      List every placement of a package
//   - move      Move an item within a region
//   - remove    Remove an item from a region
//   - digest    Print the content hash of a backup
//   - export    Convert a backup to JSON, YAML or MessagePack
//   - import    Build a backup from an export snapshot
//   - serve     Run the HTTP service
//
// The root command builds a slog logger from --log-level (or EXML_LOG_LEVEL)
// and the decode options shared by every subcommand before any of them runs.
package commands
