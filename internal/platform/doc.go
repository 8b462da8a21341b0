// Package platform isolates the few OS-specific behaviors the generator
// needs, so the rest of the code can stay platform-agnostic.
package platform
