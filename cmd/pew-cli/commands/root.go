package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"pew/lib/configutil"
	"pew/lib/eveapi"
	"pew/lib/restyutil"
	"pew/lib/serviceutil"
	"pew/lib/telemetry"

	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	jsonOutput bool
	dumpDir    string
)

var client *eveapi.Client

var rootCmd = &cobra.Command{
	Use:           "pew-cli",
	Short:         "pew-cli is a CLI for the EVE Online XML API.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(verbose)

		config, err := configutil.ReadRecursively[eveapi.Config](configPath)
		if errors.Is(err, os.ErrNotExist) {
			slog.Debug("no config found, using defaults", "config", configPath)
		} else if err != nil {
			return fmt.Errorf("read config: %w", err)
		}

		opts := config.ClientOptions()
		if dumpDir != "" {
			out, err := restyutil.NewFilesystemOutput(dumpDir)
			if err != nil {
				return err
			}
			opts.InstrumentOutput = out
		}

		client, err = eveapi.NewClient(opts)
		return err
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "pew.json5", "Config file, searched for from the current directory upwards.")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging.")
	flags.BoolVar(&jsonOutput, "json", false, "Print results as JSON instead of tables.")
	flags.StringVar(&dumpDir, "dump", "", "Write every HTTP exchange to this directory (requires --verbose).")
}

func ExecuteContext(ctx context.Context) {
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return
	}

	var apiErr *eveapi.APIError
	var connErr *eveapi.ConnectionError
	if errors.As(err, &apiErr) || errors.As(err, &connErr) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	serviceutil.Fatal("command failed", err)
}
