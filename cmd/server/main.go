package main

import (
	"github.com/everkept/memoria/backend/internal/server"
	"github.com/everkept/memoria/backend/internal/util"
	"github.com/everkept/memoria/backend/pkg/logger"
	"github.com/everkept/memoria/backend/pkg/logger/console"

	_ "github.com/lib/pq"
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
