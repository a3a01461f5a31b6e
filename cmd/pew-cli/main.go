package main

import (
	"context"
	"pew/cmd/pew-cli/commands"
	"pew/lib/serviceutil"
	"pew/lib/telemetry"
)

func main() {
	ctx, cancel := serviceutil.SignalContext(context.Background())
	defer cancel()

	tel, err := telemetry.SetupFromEnv(ctx, "pew-cli")
	if err == nil {
		defer tel.Shutdown(context.Background())
	}

	commands.ExecuteContext(ctx)
}
