package main

import (
	"career-bridge/cmd/config"
	migration "career-bridge/cmd/database/migrate"
	"career-bridge/internal/utils"
	"career-bridge/internal/utils/logger"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

func main() {
	utils.LoadConfig()
	log := logger.InitLog()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	app, err := config.NewApp(db, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create app")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := ":" + utils.GetConfig("APP_PORT")
		log.Info().Str("addr", addr).Msg("server started")
		if err := app.Listen(addr); err != nil {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		log.Error().Err(err).Msg("failed to shut down server")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
