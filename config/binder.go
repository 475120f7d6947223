package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Binder is implemented by each group of options of an
// application. Bind declares the flags of the group and
// Configure reads their values once the flags are parsed
type Binder interface {
	Bind(v *viper.Viper, cmd *cobra.Command) error
	Configure(v *viper.Viper) error
}
