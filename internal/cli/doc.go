// Package cli wires the cobra command tree: the root command generates a
// new MCP server project, with version, doctor, and config subcommands
// alongside it.
package cli
