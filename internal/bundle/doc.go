// Package bundle loads the embedded template-bundle descriptors. Each
// supported language has one YAML descriptor listing the directories to
// create, the template files to render, and the system executables the
// generated project depends on. Descriptors are validated against an
// embedded JSON Schema at load time, so a malformed descriptor is caught
// in tests rather than at a user's terminal.
package bundle
