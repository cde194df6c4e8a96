package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"
	"github.com/thegreatbey/strange-lil-scaffold/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyOwner  = "owner"
	KeyModule = "module"
)

var validators = map[string]func(string) error{
	KeyOwner: func(v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("owner must not be empty")
		}
		return nil
	},
	KeyModule: func(v string) error {
		if v != "cjs" && v != "esm" {
			return fmt.Errorf("module must be 'cjs' or 'esm', got %q", v)
		}
		return nil
	},
}

// Dir returns the path to the config directory (~/.strange-lil-scaffold/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
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

// Load initializes Viper to read from the default config file.
func Load() {
	LoadFrom(FilePath())
}

// LoadFrom initializes Viper to read from the given config file. Environment
// variables are deliberately not bound.
func LoadFrom(path string) {
	viper.Reset()
	viper.SetConfigFile(path)
	viper.SetConfigType(fileType)
	viper.SetDefault(KeyOwner, branding.DefaultOwner())
	viper.SetDefault(KeyModule, "cjs")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Owner returns the configured default badge owner.
func Owner() string {
	return viper.GetString(KeyOwner)
}

// Module returns the configured default module system hint ("cjs" or "esm").
func Module() string {
	return viper.GetString(KeyModule)
}

// Keys returns the recognized configuration keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(validators))
	for k := range validators {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set validates and writes a config key-value pair to the default config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}
	return SetIn(FilePath(), key, value)
}

// SetIn validates and writes a config key-value pair to the given file.
func SetIn(configFile, key, value string) error {
	validate, ok := validators[key]
	if !ok {
		return fmt.Errorf("unknown key %q (known keys: %s)", key, strings.Join(Keys(), ", "))
	}
	if err := validate(value); err != nil {
		return err
	}

	viper.Set(key, value)

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
