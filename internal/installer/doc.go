// Package installer runs the selected package manager inside a freshly
// generated project. Install failures are surfaced through the exit code
// rather than an error: by the time the installer runs the project
// skeleton is already valid, so callers treat a non-zero exit as a
// warning, not a reason to abort.
package installer
