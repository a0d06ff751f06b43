// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/abacus/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyLogLevel = "log_level"
	cfgKeyGrouping = "grouping"
	cfgKeyGUIScale = "gui.scale"
)

// loadConfig reads config.yaml from configDir using Viper. A missing file is
// not an error: the defaults apply. The returned Viper instance can be used
// to watch the file for changes.
func loadConfig(configDir string) (types.Config, *viper.Viper, error) {
	v := newViper(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, nil, userError(fmt.Errorf("read config: %w", err))
		}
	}

	cfg, err := decodeConfig(v)
	if err != nil {
		return types.Config{}, nil, userError(err)
	}
	return cfg, v, nil
}

func newViper(configDir string) *viper.Viper {
	def := types.DefaultConfig()

	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetDefault(cfgKeyGrouping, def.Grouping)
	v.SetDefault(cfgKeyGUIScale, def.GUI.Scale)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	return v
}

// decodeConfig unmarshals the current Viper values into a Config.
func decodeConfig(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
