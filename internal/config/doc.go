// Package config wraps Viper access to the user's settings file at
// ~/.mcpc/config.yaml. Settings provide fallback defaults for the
// generator flags (defaults.language, defaults.tool) and toggles like
// git.init; explicit flags always win over config values.
package config
