// Command blocknet inspects and watches block layouts.
//
//	blocknet networks world.yaml
//	blocknet path world.yaml --from 0,0,0 --to 0,0,9 --side top
//	blocknet watch world.yaml --metrics-addr :9464
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Build-time variables set via ldflags.
var (
	version = "0.1.0"
	commit  = ""
)

const (
	defaultLogLevel    = "warn"
	defaultMetricsAddr = ""
)

var (
	flagLogLevel string
	flagFmt      string
	logger       = zap.NewNop()
)

func versionString() string {
	if commit != "" {
		return fmt.Sprintf("blocknet version %s (commit: %s)", version, commit)
	}
	return fmt.Sprintf("blocknet version %s-dev", version)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "blocknet",
		Short:        "Connected networks of blocks: inspect, route and watch layouts",
		Version:      versionString(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			resolveEnv(cmd)
			l, err := newLogger(flagLogLevel)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")

	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", defaultLogLevel, "Log level: debug|info|warn|error (env: BLOCKNET_LOG_LEVEL)")
	root.PersistentFlags().StringVar(&flagFmt, "format", "table", "Output format: table|yaml")

	root.AddCommand(newNetworksCmd())
	root.AddCommand(newPathCmd())
	root.AddCommand(newWatchCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveEnv fills flags left at their defaults from the environment.
func resolveEnv(cmd *cobra.Command) {
	if !cmd.Flags().Changed("log-level") {
		if v := os.Getenv("BLOCKNET_LOG_LEVEL"); v != "" {
			flagLogLevel = v
		}
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	return cfg.Build()
}
