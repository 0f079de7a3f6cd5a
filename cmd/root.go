package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/config"
	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/param"
	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string

	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
)

var rootCmd = &cobra.Command{
	Use:   "srsran-profile",
	Short: "Generate the testbed request for a single-node srsRAN 5G experiment",
	Long: `srsran-profile builds the request RSpec for a single-node srsRAN 5G
experiment with Open5GS and simulated RF over ZMQ. The node is bound to an
Ansible role and bootstraps the automation environment at startup.

The request document is written to stdout:

  srsran-profile generate --nodetype d740 > request.xml`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger = newLogger(cfg.Log.Level, cfg.Log.Format, os.Stderr)
		slog.SetDefault(logger)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: profile.yml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text, json")

	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

func initConfig() {
	config.SetDefaults(viper.GetViper())
	bindParamEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("profile")
		viper.SetConfigType("yml")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
		}
	}
}

// bindParamEnv lets SRSRAN_PROFILE_PARAMS_<NAME> set a declared parameter.
func bindParamEnv() {
	ctx := param.NewContext()
	if err := profile.DeclareParameters(ctx); err != nil {
		return
	}
	for _, p := range ctx.Parameters() {
		_ = viper.BindEnv("params." + p.Name)
	}
}
