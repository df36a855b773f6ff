package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

//initSettings layers the configuration sources for a command: an explicit flag
//wins over a GOLFT_* environment variable, which wins over a golft.yaml file
//in the working directory or in ~/.config/golft, which wins over the flag
//defaults. Values are then read back through the returned viper.
func initSettings(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName("golft")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/golft")
	v.SetEnvPrefix("golft")
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	return v, nil
}
