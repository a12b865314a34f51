package main

import (
	"github.com/verdantlab/schemaloom/internal/server"
	"github.com/verdantlab/schemaloom/internal/util"
	"github.com/verdantlab/schemaloom/pkg/logger"
	"github.com/verdantlab/schemaloom/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
