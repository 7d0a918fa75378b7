package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "STINTSIM"

var cfgFile string // Optional config file with flag values

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".stintsim")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err == nil {
		logrus.Infof("Using config file: %s", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		logrus.Fatalf("Failed to read config file %s: %v", cfgFile, err)
	}

	bindFlags(rootCmd, viper.GetViper())
	for _, c := range rootCmd.Commands() {
		bindFlags(c, viper.GetViper())
	}
}

// bindFlags binds each cobra flag to its associated viper configuration
// (config file and environment variable). Flags set on the command line win.
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so bind them to their
		// equivalent keys with underscores, e.g. --fuel-rate to STINTSIM_FUEL_RATE
		envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		if err := v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
			logrus.Warnf("Could not bind env var %s: %v", f.Name, err)
		}
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, flagValue(val)); err != nil {
				logrus.Warnf("Could not set flag value for %s: %v", f.Name, err)
			}
		}
	})
}

// flagValue renders a viper value in the syntax pflag expects; YAML lists become "a,b,c".
func flagValue(val any) string {
	if list, ok := val.([]any); ok {
		parts := make([]string, len(list))
		for i, item := range list {
			parts[i] = fmt.Sprintf("%v", item)
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprintf("%v", val)
}
