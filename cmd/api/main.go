package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-pulse-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-pulse-api/infrastructure/integrator/grain"
	"github.com/vfg2006/sales-pulse-api/infrastructure/integrator/grain/grainclient"
	"github.com/vfg2006/sales-pulse-api/infrastructure/integrator/hubspot"
	"github.com/vfg2006/sales-pulse-api/infrastructure/integrator/hubspot/hubspotclient"
	"github.com/vfg2006/sales-pulse-api/infrastructure/repository"
	"github.com/vfg2006/sales-pulse-api/internal/api"
	"github.com/vfg2006/sales-pulse-api/internal/config"
	"github.com/vfg2006/sales-pulse-api/internal/scheduler"
	"github.com/vfg2006/sales-pulse-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-pulse-api/internal/usecases/meetings"
	"github.com/vfg2006/sales-pulse-api/internal/usecases/reconciling"
	"github.com/vfg2006/sales-pulse-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-pulse-api/internal/usecases/seating"
	"github.com/vfg2006/sales-pulse-api/internal/usecases/targeting"
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

	targetRepo := repository.NewTargetRepository(pgConn)
	mappingRepo := repository.NewMeetingMappingRepository(pgConn)
	seatRepo := repository.NewSeatRepository(pgConn)
	reportRepo := repository.NewGeneratedReportRepository(pgConn)

	hubspotClient := hubspotclient.NewClient(cfg)
	hubspotIntegrator := hubspot.New(cfg, hubspotClient)

	grainClient := grainclient.NewClient(cfg)
	grainIntegrator := grain.New(cfg, grainClient)

	targetResolver := targeting.NewService(targetRepo)
	aggregator := aggregating.NewService(hubspotIntegrator, targetResolver)
	meetingLister := meetings.NewService(hubspotIntegrator, grainIntegrator, mappingRepo)
	reconciler := reconciling.NewService(hubspotIntegrator, grainIntegrator, mappingRepo)
	seatManager := seating.NewService(seatRepo, hubspotIntegrator)
	reportGenerator := reporting.NewService(aggregator, meetingLister, reportRepo)

	// Inicializa os agendadores de sincronização
	mappingSyncService := scheduler.NewMappingSyncService(reconciler, cfg)
	reportSyncService := scheduler.NewReportSyncService(reportGenerator, cfg)

	// Inicia os agendadores em background
	if err := mappingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de mapeamento de gravações")
	} else {
		logrus.Info("Agendador de mapeamento de gravações iniciado com sucesso")
	}

	if err := reportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de relatórios diários")
	} else {
		logrus.Info("Agendador de relatórios diários iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		aggregator,
		targetResolver,
		meetingLister,
		reconciler,
		reportGenerator,
		seatManager,
		hubspotIntegrator,
		grainIntegrator,
		mappingSyncService,
		reportSyncService,
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
