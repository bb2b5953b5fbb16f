package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	lib "github.com/theoremus-urban-solutions/easyrider"
	"github.com/theoremus-urban-solutions/easyrider/config"
	"github.com/theoremus-urban-solutions/easyrider/internal"
)

func main() {
	cfg, err := config.LoadAppConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger, err := internal.NewLogger(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	runner, err := lib.NewRunner(cfg, logger)
	if err != nil {
		logger.Fatal("runner setup failed", zap.Error(err))
	}
	// Payload is read from stdin; there are no flags.
	if err := runner.Run(os.Stdin, os.Stdout); err != nil {
		logger.Sync()
		os.Exit(1)
	}
}
