// Package project defines the project specification resolved from CLI
// arguments: the project name, target language, and package-manager tool.
// All language/tool compatibility rules live here so the rest of the
// pipeline never sees an invalid combination.
package project
