// Package config registers every setting with its default and loads the
// TOML file and LIVELINK_* environment through viper.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/livelink-cli/livelink/constant"
	"github.com/livelink-cli/livelink/filesystem"
	"github.com/livelink-cli/livelink/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup initializes the global configuration state, including defaults, environment bindings, and localized file resolution.
func Setup() error {
	viper.SetConfigName(constant.Livelink)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Livelink)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	return nil
}

// File is the path of the config file, whether it exists or not.
func File() string {
	return filepath.Join(where.Config(), fmt.Sprintf("%s.%s", constant.Livelink, "toml"))
}

// Write persists the in-memory settings, creating the file when missing.
func Write() error {
	err := viper.WriteConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}

	return err
}
