package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"github.com/vulpemventures/dexd/internal/config"
)

func main() {
	app := cli.NewApp()

	app.Version = "0.1.0"
	app.Name = "dexd CLI"
	app.Usage = "Command line interface for the dexd liquidity pools"
	app.Commands = append(
		app.Commands,
		&createpool,
		&listpools,
		&provide,
		&remove,
		&swap,
		&price,
		&balance,
	)

	if err := config.InitConfig(); err != nil {
		fatal(err)
	}
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	log.WithError(err).Fatal("fatal error")
}
