package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/operation-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/operation-metrics-api/infrastructure/integrator/adnetwork"
	"github.com/vfg2006/operation-metrics-api/infrastructure/integrator/exchange"
	"github.com/vfg2006/operation-metrics-api/infrastructure/repository"
	"github.com/vfg2006/operation-metrics-api/internal/api"
	"github.com/vfg2006/operation-metrics-api/internal/config"
	"github.com/vfg2006/operation-metrics-api/internal/scheduler"
	"github.com/vfg2006/operation-metrics-api/internal/usecases/costing"
	"github.com/vfg2006/operation-metrics-api/internal/usecases/currency"
	"github.com/vfg2006/operation-metrics-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	operationRepo := repository.NewOperationRepository(pgConn)
	orderRepo := repository.NewOrderRepository(pgConn)
	productCostRepo := repository.NewProductCostRepository(pgConn)
	adSpendRepo := repository.NewAdSpendRepository(pgConn)
	exchangeRateRepo := repository.NewExchangeRateRepository(pgConn)
	snapshotRepo := repository.NewMetricsSnapshotRepository(pgConn)

	adNetworkClient := adnetwork.NewClient(cfg)
	adNetworkIntegrator := adnetwork.New(cfg, adNetworkClient)

	rateProvider := exchange.NewClient(cfg)
	currencyService := currency.NewService(cfg, rateProvider, exchangeRateRepo)

	costingService := costing.NewService(
		cfg,
		costing.NewFastAggregation(productCostRepo),
		costing.NewRowByRowAggregation(orderRepo, productCostRepo),
		adSpendRepo,
		adNetworkIntegrator,
		currencyService,
	)

	reportingService := reporting.NewService(
		cfg,
		operationRepo,
		orderRepo,
		snapshotRepo,
		costingService,
	)

	// Inicializa os agendadores de manutenção
	snapshotCleanupService := scheduler.NewSnapshotCleanupService(snapshotRepo, cfg)
	ratesRefreshService := scheduler.NewRatesRefreshService(currencyService, cfg)

	// Inicia os agendadores em background
	if err := snapshotCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de snapshots")
	} else {
		logrus.Info("Agendador de limpeza de snapshots iniciado com sucesso")
	}

	if err := ratesRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização de taxas")
	} else {
		logrus.Info("Agendador de atualização de taxas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportingService,
		snapshotCleanupService,
		ratesRefreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
