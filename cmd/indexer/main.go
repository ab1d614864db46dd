package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/rwalabs/rwa-indexer/internal/adapter"
	"github.com/rwalabs/rwa-indexer/internal/chain"
	"github.com/rwalabs/rwa-indexer/internal/config"
	"github.com/rwalabs/rwa-indexer/internal/listener"
	"github.com/rwalabs/rwa-indexer/internal/logger"
	"github.com/rwalabs/rwa-indexer/internal/messaging"
	"github.com/rwalabs/rwa-indexer/internal/parser"
	"github.com/rwalabs/rwa-indexer/internal/processor"
	"github.com/rwalabs/rwa-indexer/internal/providers/jetstream"
	"github.com/rwalabs/rwa-indexer/internal/registry"
	"github.com/rwalabs/rwa-indexer/internal/store"
)

func main() {
	configFile := flag.String("config", "", "path to config file")
	envFile := flag.String("env", "", "path to env file")
	flag.Parse()

	config.ChdirRepoRoot()

	cfg, err := config.LoadIndexerConfig(*configFile, *envFile)
	if err != nil {
		panic(err)
	}

	if err := logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Service:   "indexer",
	}); err != nil {
		panic(err)
	}
	defer logger.Flush(2 * time.Second)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(
		db,
		cfg.Database.MaxOpenConns,
		cfg.Database.MaxIdleConns,
		cfg.Database.ConnMaxLifetime,
		cfg.Database.ConnMaxIdleTime,
	); err != nil {
		logger.Fatal("failed to configure database connection pool", zap.Error(err))
	}
	st := store.NewPGStore(db)

	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	fs := adapter.NewFileSystem()
	httpClient := adapter.NewHTTPClient(cfg.Node.RequestTimeout)

	var publisher messaging.Publisher
	if cfg.NATS.Enabled {
		publisher, err = jetstream.NewPublisher(jetstream.Config{
			URL:            cfg.NATS.URL,
			SubjectPrefix:  cfg.NATS.SubjectPrefix,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.Fatal("failed to connect to NATS", zap.Error(err))
		}
		defer publisher.Close()
	}

	deployment, err := registry.NewDeploymentRegistryLoader(fs, jsonAdapter).Load(cfg.DeploymentPath)
	if err != nil {
		logger.Fatal("failed to load deployment registry", zap.Error(err), zap.String("path", cfg.DeploymentPath))
	}
	processorRegistry := registry.NewProcessorRegistry(deployment.Bindings(), processor.Processors())

	client := chain.NewNodeClient(chain.Config{
		BaseURL:      cfg.Node.BaseURL,
		PollInterval: cfg.Node.PollInterval,
	}, httpClient, clock)

	blockListener := listener.NewListener(
		client,
		parser.NewBlockParser(),
		processor.NewBlockProcessor(st, processorRegistry, deployment),
		st,
		publisher,
		clock,
		listener.Config{
			StartHeight:     cfg.Listener.StartHeight,
			ChunkSize:       cfg.Listener.ChunkSize,
			ChunkTimeout:    cfg.Listener.ChunkTimeout,
			MetricsInterval: cfg.Listener.MetricsInterval,
			PrefetchWorkers: cfg.Listener.PrefetchWorkers,
		},
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- blockListener.Run(ctx)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil {
			logger.Error(err)
		}
	}

	// give sentry and in-flight log writes a moment to drain
	time.Sleep(time.Second)
	logger.Info("indexer stopped")
}
