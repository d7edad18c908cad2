package main

import (
	stdLog "log"

	"github.com/Astemirdum/shareit/stats/app"
	"github.com/Astemirdum/shareit/stats/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env file, reading environment only: ", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
	)

	if err := app.Run(cfg); err != nil {
		stdLog.Fatal("stats: ", err)
	}
}
