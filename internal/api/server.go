package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-pulse-api/infrastructure/integrator/grain"
	"github.com/vfg2006/sales-pulse-api/infrastructure/integrator/hubspot"
	"github.com/vfg2006/sales-pulse-api/internal/api/handler"
	"github.com/vfg2006/sales-pulse-api/internal/api/handler/router"
	"github.com/vfg2006/sales-pulse-api/internal/config"
	"github.com/vfg2006/sales-pulse-api/internal/scheduler"
	"github.com/vfg2006/sales-pulse-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-pulse-api/internal/usecases/meetings"
	"github.com/vfg2006/sales-pulse-api/internal/usecases/reconciling"
	"github.com/vfg2006/sales-pulse-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-pulse-api/internal/usecases/seating"
	"github.com/vfg2006/sales-pulse-api/internal/usecases/targeting"
	"github.com/vfg2006/sales-pulse-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	aggregator aggregating.Aggregator,
	resolver targeting.Resolver,
	meetingLister meetings.Lister,
	reconciler reconciling.Reconciler,
	reportGenerator reporting.Generator,
	seatManager seating.Manager,
	crmService hubspot.HubSpotIntegrator,
	recordingService grain.GrainIntegrator,
	mappingSyncService *scheduler.MappingSyncService,
	reportSyncService *scheduler.ReportSyncService,
) (*Server, error) {
	// Inicializar o struct com os serviços de cron jobs
	cronServices := handler.CronJobServices{
		MappingSyncService: mappingSyncService,
		ReportSyncService:  reportSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.MagicFormula(aggregator, resolver)...),
		router.WithRoutes(handler.Meetings(meetingLister)...),
		router.WithRoutes(handler.Mappings(reconciler)...),
		router.WithRoutes(handler.CRMCatalog(crmService)...),
		router.WithRoutes(handler.Deals(crmService)...),
		router.WithRoutes(handler.Recordings(recordingService)...),
		router.WithRoutes(handler.Reports(reportGenerator)...),
		router.WithRoutes(handler.Seats(seatManager)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
