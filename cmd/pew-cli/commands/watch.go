package commands

import (
	"context"
	"errors"
	"log/slog"
	"pew/lib/eveapi"
	"pew/lib/telemetry"
	"time"

	"github.com/spf13/cobra"
)

var watchInterval time.Duration

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", time.Minute, "Time between polls.")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch [--interval 60s]",
	Short: "Polls the server status until interrupted.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		telemetry.InstrumentPerfStats(ctx, time.Second*30)

		ticker := time.NewTicker(watchInterval)
		defer ticker.Stop()

		for {
			pollStatus(ctx)

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return nil
			}
		}
	},
}

// pollStatus logs failures instead of stopping, the next tick tries again.
func pollStatus(ctx context.Context) {
	result, err := client.ServerStatus(ctx)
	if err != nil {
		var apiErr *eveapi.APIError
		if errors.As(err, &apiErr) {
			slog.WarnContext(ctx, "server reported an error", "code", apiErr.Code, "message", apiErr.Message)
			return
		}
		slog.ErrorContext(ctx, "failed to poll server status", "err", err)
		return
	}

	open, _ := result.Get("serverOpen")
	players, _ := result.Get("onlinePlayers")
	slog.InfoContext(ctx, "server status", "open", open.String(), "players", players.String())
}
