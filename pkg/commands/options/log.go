package options

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// GlobalOptions are the persistent flags every command shares. They are
// bound to viper so config files and TRAVLOG_* variables fill the same keys.
type GlobalOptions struct {
	LogLevel string
	Path     string
	Key      string
}

func AddGlobalArgs(cmd *cobra.Command, o *GlobalOptions) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&o.LogLevel, "log-level", "warn",
		"Log level: debug, info, warn or error.")
	flags.StringVar(&o.Path, "path", "",
		"Directory holding the journal, overrides the config file.")
	flags.StringVar(&o.Key, "key", "",
		"Name of the record holding the journal.")

	_ = viper.BindPFlag("log-level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("path", flags.Lookup("path"))
	_ = viper.BindPFlag("key", flags.Lookup("key"))
}
