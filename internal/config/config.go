package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mcpc-dev/mcpc/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized settings keys.
const (
	KeyDefaultLanguage = "defaults.language"
	KeyDefaultTool     = "defaults.tool"
	KeyGitInit         = "git.init"
)

// Dir returns the path to the config directory (~/.mcpc/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.mcpc/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyDefaultLanguage, "ts")
	viper.SetDefault(KeyGitInit, true)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// DefaultLanguage returns the configured default language code.
func DefaultLanguage() string {
	return viper.GetString(KeyDefaultLanguage)
}

// DefaultTool returns the configured default tool code. Empty means
// "use the language's built-in default".
func DefaultTool() string {
	return viper.GetString(KeyDefaultTool)
}

// GitInit reports whether generated projects get a git repository.
func GitInit() bool {
	return viper.GetBool(KeyGitInit)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
