package cmd

import (
	"fmt"
	"os"

	"token-bridge/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "token-bridge",
	Short: "Design Token Bridge",
	Long: `Token Bridge keeps design-tool variables and design tokens in step.
It generates color palettes, flattens token documents and reports which
variables and tokens are synced, drifted or missing on either side.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with ISO8601 timestamps reads better in a terminal
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

// cliLogger returns a console logger for one-shot commands. Only warnings
// and errors are shown so they do not drown the command output.
func cliLogger() *zap.Logger {
	l, err := logger.New(&logger.Config{Level: "warn", Format: "console"})
	if err != nil {
		return zap.NewNop()
	}
	return l
}
