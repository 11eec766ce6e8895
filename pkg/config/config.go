/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package config

import (
	"strings"

	"github.com/spf13/viper"
)

func init() {
	bindEnv()
}

func bindEnv() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// SetValue sets a configuration value for the specified key.
func SetValue(key, value string) {
	viper.Set(key, value)
}

// LoadConfig loads configuration from the specified file path.
func LoadConfig(path string) error {
	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")
	return viper.ReadInConfig()
}

func getString(key, defaultValue string) string {
	if !viper.IsSet(key) {
		return defaultValue
	}
	return viper.GetString(key)
}

// GetLogLevel returns the logrus level name of the command line tool.
func GetLogLevel() string {
	return getString(logLevel, "info")
}

// GetLogFormat returns either text or json.
func GetLogFormat() string {
	return strings.ToLower(getString(logFormat, LogFormatText))
}

// GetDataConfigPath returns the data config used when none is given on the command line.
func GetDataConfigPath() string {
	return getString(dataConfigPath, "")
}

// GetArgsFilePath returns the model and training arguments file used when --args-file is not given.
func GetArgsFilePath() string {
	return getString(argsFilePath, "")
}
