package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/pprof"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/fundraiser-daemon/internal/config"
	"github.com/tdex-network/fundraiser-daemon/internal/core/application"
	webhookpubsub "github.com/tdex-network/fundraiser-daemon/internal/infrastructure/pubsub/webhook"
	postgresdb "github.com/tdex-network/fundraiser-daemon/internal/infrastructure/storage/db/pg"
	grpcinterface "github.com/tdex-network/fundraiser-daemon/internal/interfaces/grpc"
	"github.com/tdex-network/fundraiser-daemon/pkg/stats"
)

func main() {
	if err := config.InitConfig(); err != nil {
		log.WithError(err).Fatal("failed to initialize config")
	}

	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	datadir := config.GetDatadir()
	dbDir := filepath.Join(datadir, config.DbLocation)
	webhooksDir := filepath.Join(datadir, config.WebhooksLocation)
	profilerDir := filepath.Join(datadir, config.ProfilerLocation)

	pubsub, err := webhookpubsub.NewWebhookPubSubService(
		webhooksDir, config.GetDuration(config.WebhookTimeoutKey), log.New(),
	)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize webhook pubsub")
	}

	appConfig := &application.Config{
		DBType:       config.GetString(config.DBTypeKey),
		DBConfig:     dbConfig(dbDir),
		SecurePubSub: pubsub,
	}
	if err := appConfig.Validate(); err != nil {
		log.WithError(err).Fatal("invalid application config")
	}
	defer appConfig.Close()

	fundraiserSvc := appConfig.FundraiserService()

	if config.GetBool(config.InitOnStartKey) {
		if err := initFundraiser(fundraiserSvc); err != nil {
			log.WithError(err).Fatal("failed to initialize fundraiser")
		}
	}

	registry := prometheus.NewRegistry()

	if config.GetBool(config.EnableProfilerKey) {
		stopProfiler, err := startProfiler(profilerDir, registry)
		if err != nil {
			log.WithError(err).Fatal("failed to start profiler")
		}
		defer stopProfiler()
	}

	svc, err := grpcinterface.NewService(grpcinterface.ServiceOpts{
		Address:         fmt.Sprintf(":%d", config.GetInt(config.ListeningPortKey)),
		TLSKey:          config.GetString(config.TLSKeyKey),
		TLSCert:         config.GetString(config.TLSCertKey),
		FundraiserSvc:   fundraiserSvc,
		PubSubSvc:       appConfig.PubSubService(),
		MetricsRegistry: registry,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to initialize grpc interface")
	}

	log.RegisterExitHandler(svc.Stop)

	log.Info("starting daemon")
	defer log.Info("shutdown")

	if err := svc.Start(); err != nil {
		log.WithError(err).Fatal("failed to start daemon")
	}
	defer svc.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	<-sigChan

	log.Info("shutting down daemon")
}

func dbConfig(dbDir string) interface{} {
	switch config.GetString(config.DBTypeKey) {
	case application.DBPostgres:
		return postgresdb.DbConfig{
			DataSourceURL:      config.GetString(config.PgConnectAddr),
			MigrationSourceURL: config.GetString(config.PgMigrationSource),
		}
	case application.DBBadger:
		return dbDir
	default:
		return nil
	}
}

func initFundraiser(svc application.FundraiserService) error {
	ctx := context.Background()

	initialized, err := svc.IsInitialized(ctx)
	if err != nil {
		return err
	}
	if initialized {
		log.Debug("fundraiser already initialized")
		return nil
	}

	if err := svc.Init(ctx); err != nil {
		return err
	}
	log.Info("fundraiser initialized")
	return nil
}

func startProfiler(
	profilerDir string, registry prometheus.Gatherer,
) (func(), error) {
	cpuProfile, err := os.Create(filepath.Join(profilerDir, "cpu.pprof"))
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(cpuProfile); err != nil {
		cpuProfile.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	interval := time.Duration(config.GetInt(config.StatsIntervalKey)) * time.Second
	stats.EnableMemoryStatistics(ctx, interval, registry, profilerDir)

	return func() {
		pprof.StopCPUProfile()
		cpuProfile.Close()
		cancel()
		// let the stats routine dump the collected metrics.
		time.Sleep(100 * time.Millisecond)
	}, nil
}
