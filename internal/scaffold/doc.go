// Package scaffold materializes a template bundle into a new project
// directory: it creates the directory tree and renders each embedded
// template with the project data. It refuses to write into a non-empty
// target, but a failure partway through is not rolled back — the error
// names the file that failed and the partial tree is left for inspection.
package scaffold
