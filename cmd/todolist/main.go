package main

import (
	"context"
	"os"

	"github.com/mixassio/todolist/internal/buildinfo"
	"github.com/mixassio/todolist/internal/cli"
	"github.com/mixassio/todolist/internal/config"
	"github.com/mixassio/todolist/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewDefault(os.Stderr, logging.ParseLevel(cfg.LogLevel))
	app := cli.NewApp(cfg, logger)

	app.Run(ctx)

}
