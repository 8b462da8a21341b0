// Package sysdeps probes the command search path for the external
// executables a generated project depends on (git, the language runtime,
// the package manager). The pipeline uses it to fail before any file is
// written; the doctor command uses it for a full diagnostic report with
// advisory version checks.
package sysdeps
