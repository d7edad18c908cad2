package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/shareit/pkg/kafka"
	"github.com/Astemirdum/shareit/pkg/logger"
	"github.com/Astemirdum/shareit/pkg/postgres"
	"github.com/Astemirdum/shareit/pkg/tracing"
	"github.com/Astemirdum/shareit/stats/config"
	"github.com/Astemirdum/shareit/stats/internal/handler"
	"github.com/Astemirdum/shareit/stats/internal/repository"
	"github.com/Astemirdum/shareit/stats/internal/server"
	"github.com/Astemirdum/shareit/stats/internal/service"
	"github.com/Astemirdum/shareit/stats/migrations"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "stats")
	shutdownTracing := tracing.Init("stats")
	defer shutdownTracing()

	if !cfg.Kafka.Enabled() {
		return errors.New("KAFKA_ADDRS is required")
	}
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return errors.Wrap(err, "db init")
	}
	defer db.Close()
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return errors.Wrap(err, "repo")
	}
	svc := service.NewService(repo, log)

	if err = kafka.CreateTopics(cfg.Kafka, kafka.BookingTopic); err != nil {
		log.Error("kafka.CreateTopics", zap.Error(err))
	}
	consumer, err := kafka.NewConsumerGroup(cfg.Kafka, kafka.StatsConsumerGroup)
	if err != nil {
		return errors.Wrap(err, "kafka.NewConsumerGroup")
	}
	consumeCtx, stopConsume := context.WithCancel(context.Background())
	defer stopConsume()
	go kafka.Consume(consumeCtx, consumer, handler.NewConsumer(svc.Stats, log), log, kafka.BookingTopic)

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	stopConsume()
	if err = consumer.Close(); err != nil {
		log.Error("consumer.Close", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
	return nil
}
