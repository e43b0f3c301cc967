package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// newRootCmd assembles a fresh command tree; tests build their own.
func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "routenet",
		Short:         "Analyse airline route networks",
		Long:          "routenet measures a route network, recommends MST and shortest-path algorithms, runs all of them and explains the selection.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	newLogger := func(cmd *cobra.Command) (*slog.Logger, error) {
		level, err := parseLevel(logLevel)
		if err != nil {
			return nil, err
		}

		return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})), nil
	}

	root.AddCommand(newAnalyzeCmd(newLogger), newDatasetsCmd())

	return root
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("--log-level %q: %w", s, err)
	}

	return level, nil
}
