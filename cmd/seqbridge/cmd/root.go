package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cosmossdk.io/log"
)

const (
	appName = "seqbridge"
	// envPrefix is the prefix of the environment variables overriding flags,
	// e.g. SEQWASM_LOG_LEVEL.
	envPrefix = "SEQWASM"

	flagConfig    = "config"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
)

// NewRootCmd returns the root command of the seqbridge CLI.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           appName,
		Short:         "Offline verification of bridge commitments, attestations and proofs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, cmd)
		},
	}

	rootCmd.PersistentFlags().String(flagConfig, "", "config file (toml, yaml or json)")
	rootCmd.PersistentFlags().String(flagLogLevel, "info", "log level, e.g. debug or *:info")
	rootCmd.PersistentFlags().String(flagLogFormat, "plain", "log format (plain|json)")

	rootCmd.AddCommand(
		newMerkleCmd(v),
		newValsetCmd(v),
		newPrecompileCmd(v),
	)

	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)
	return rootCmd
}

// initConfig binds the flags of cmd to v and layers the config file and the
// environment on top of the flag defaults.
func initConfig(v *viper.Viper, cmd *cobra.Command) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfg := v.GetString(flagConfig); cfg != "" {
		v.SetConfigFile(cfg)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", cfg, err)
		}
	}
	return nil
}

// newLogger builds the logger configured by the log flags.
func newLogger(v *viper.Viper) (log.Logger, error) {
	filter, err := log.ParseLogLevel(v.GetString(flagLogLevel))
	if err != nil {
		return nil, err
	}

	opts := []log.Option{log.FilterOption(filter)}
	switch format := v.GetString(flagLogFormat); format {
	case "plain":
	case "json":
		opts = append(opts, log.OutputJSONOption())
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	return log.NewLogger(os.Stderr, opts...).With("module", appName), nil
}
