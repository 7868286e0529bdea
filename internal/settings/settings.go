// Package settings provides process-level settings for the couldyou CLI
// using Viper.
//
// These are knobs for the tool itself (logging, layer path overrides),
// read from COULDYOU_* environment variables with flag values taking
// precedence. They are deliberately separate from the layered project
// configuration in internal/config and never participate in the merge.
package settings

import (
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "COULDYOU"

// Keys understood by the settings layer.
const (
	KeyLogLevel    = "log_level"    // COULDYOU_LOG_LEVEL
	KeyLogFormat   = "log_format"   // COULDYOU_LOG_FORMAT
	KeyConfig      = "config"       // COULDYOU_CONFIG: global layer override
	KeyLocalConfig = "local_config" // COULDYOU_LOCAL_CONFIG: local layer override
)

// Init initializes Viper with defaults and environment binding.
// Call this once at application startup before reading settings.
func Init() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyLogFormat, "text")
}

// LogLevel returns the configured log level name.
func LogLevel() string {
	return viper.GetString(KeyLogLevel)
}

// LogFormat returns the configured log format (text or json).
func LogFormat() string {
	return viper.GetString(KeyLogFormat)
}

// GlobalConfigOverride returns the global layer path override, empty
// when unset.
func GlobalConfigOverride() string {
	return viper.GetString(KeyConfig)
}

// LocalConfigOverride returns the local layer path override, empty when
// unset.
func LocalConfigOverride() string {
	return viper.GetString(KeyLocalConfig)
}
