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
	"github.com/vfg2006/recho-console/infrastructure/repository"
	"github.com/vfg2006/recho-console/internal/api/handler"
	"github.com/vfg2006/recho-console/internal/api/handler/router"
	"github.com/vfg2006/recho-console/internal/config"
	"github.com/vfg2006/recho-console/internal/scheduler"
	"github.com/vfg2006/recho-console/internal/telemetry"
	"github.com/vfg2006/recho-console/internal/usecases/aggregating"
	"github.com/vfg2006/recho-console/internal/usecases/ranking"
	"github.com/vfg2006/recho-console/pkg/middleware"
)

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

func New(
	config *config.Config,
	documentRepo repository.DocumentRepository,
	dashboardService aggregating.DashboardInsighter,
	rankingService ranking.RankingService,
	metrics *telemetry.Metrics,
	documentReloadService *scheduler.DocumentReloadService,
	documentWatcher *scheduler.DocumentWatcher,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		DocumentReloadService: documentReloadService,
		DocumentWatcher:       documentWatcher,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Dashboard(dashboardService, metrics)...),
		router.WithRoutes(handler.Rankings(rankingService, config.Dashboard.DefaultTopN, metrics)...),
		router.WithRoutes(handler.Document(documentRepo, metrics)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
		router.WithRoutes(handler.Metrics(metrics)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.CORSAllowedOrigins),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
		shutdownTimeout: config.Server.ShutdownTimeout,
	}

	return srv, nil
}

// Handler expõe a cadeia de middlewares e rotas (usado nos testes)
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
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

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	timeout := s.shutdownTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	logrus.WithField("timeout", timeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
