package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const configFileKey = "config"

// ConfigFile binds the --config flag. When it is set, the file
// is read and its values are used as defaults for every other
// option of the application
type ConfigFile struct {
	Path string
}

// Bind implementation of Binder for ConfigFile
func (f *ConfigFile) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String(configFileKey, "",
		"path to a configuration file in any format supported by viper")
	return nil
}

// Configure implementation of Binder for ConfigFile
func (f *ConfigFile) Configure(v *viper.Viper) error {
	f.Path = v.GetString(configFileKey)
	if len(f.Path) == 0 {
		return nil
	}

	v.SetConfigFile(f.Path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read configuration file %s", f.Path)
	}

	return nil
}
