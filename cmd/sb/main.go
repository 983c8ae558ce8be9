package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"skyblock-backend/cmd/sb/cmd"
	"skyblock-backend/lib/configutil"
	"skyblock-backend/lib/restyutil"
	"skyblock-backend/lib/scrapers/hypixel"
	"skyblock-backend/lib/telemetry"
)

func main() {
	ctx := context.Background()
	telemetry.InitSlog(os.Getenv("SB_VERBOSE") != "")

	tel, err := telemetry.SetupFromEnv(ctx, "sb")
	if err == nil {
		defer tel.Shutdown(ctx)
		telemetry.InstrumentPerfStats(ctx)
	} else if !os.IsNotExist(err) {
		slog.Warn("failed to set up telemetry", "err", err)
	}

	if dumpDir := os.Getenv("SB_HTTP_DUMP"); dumpDir != "" {
		hypixel.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(dumpDir))
	}

	config, err := configutil.ReadRecursively[cmd.Config]("skyblock.json5")
	if os.IsNotExist(err) {
		config.ApiKey = os.Getenv("HYPIXEL_API_KEY")
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if config.ApiKey == "" {
		fmt.Println("No api key found. Provide one in skyblock.json5 or the environment variable HYPIXEL_API_KEY.")
		os.Exit(1)
	}

	cmd.Execute(config)
}
