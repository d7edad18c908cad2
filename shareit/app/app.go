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
	"github.com/Astemirdum/shareit/shareit/config"
	"github.com/Astemirdum/shareit/shareit/internal/handler"
	"github.com/Astemirdum/shareit/shareit/internal/repository"
	"github.com/Astemirdum/shareit/shareit/internal/server"
	"github.com/Astemirdum/shareit/shareit/internal/service"
	"github.com/Astemirdum/shareit/shareit/migrations"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "shareit")
	shutdownTracing := tracing.Init("shareit")
	defer shutdownTracing()

	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	opts := []service.Option{
		service.WithCommentRequireApproved(cfg.CommentRequireApproved),
	}
	var publisher *kafka.Publisher
	if cfg.Kafka.Enabled() {
		if err = kafka.CreateTopics(cfg.Kafka, kafka.BookingTopic); err != nil {
			log.Error("kafka.CreateTopics", zap.Error(err))
		}
		producer, err := kafka.NewAsyncProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewAsyncProducer", zap.Error(err))
		}
		publisher = kafka.NewPublisher(producer, kafka.BookingTopic, log)
		opts = append(opts, service.WithEventPublisher(publisher))
	}
	svc := service.NewService(repo, log, opts...)

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
	if publisher != nil {
		_ = publisher.Close()
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
