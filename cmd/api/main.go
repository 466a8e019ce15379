package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/recho-console/infrastructure/metricsfile"
	"github.com/vfg2006/recho-console/infrastructure/repository"
	"github.com/vfg2006/recho-console/internal/api"
	"github.com/vfg2006/recho-console/internal/config"
	"github.com/vfg2006/recho-console/internal/scheduler"
	"github.com/vfg2006/recho-console/internal/telemetry"
	"github.com/vfg2006/recho-console/internal/usecases/aggregating"
	"github.com/vfg2006/recho-console/internal/usecases/ranking"
	"github.com/vfg2006/recho-console/pkg/log"
)

func main() {
	// Formato padrão até a configuração ser lida
	log.Configure("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metrics := telemetry.NewMetrics()
	documentRepo := repository.NewDocumentRepository(cfg.Document.Path, metricsfile.NewFileLoader(), metrics)

	// Carga inicial; se falhar o servidor sobe mesmo assim e responde 503 até o documento ficar válido
	if snapshot, err := documentRepo.Current(ctx); err != nil {
		logrus.WithError(err).WithField("path", cfg.Document.Path).Error("Documento de métricas indisponível na inicialização")
	} else {
		logrus.WithField("snapshot_id", snapshot.ID).Info("Documento de métricas pronto")
	}

	dashboardService := aggregating.NewService(documentRepo)
	rankingService := ranking.NewDocumentRankingService(documentRepo)

	documentReloadService := scheduler.NewDocumentReloadService(documentRepo, cfg)
	if err := documentReloadService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do documento")
	} else {
		logrus.Info("Agendador de recarga do documento iniciado com sucesso")
	}

	documentWatcher := scheduler.NewDocumentWatcher(documentRepo, cfg)
	if err := documentWatcher.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a observação do documento")
	}

	server, err := api.New(
		cfg,
		documentRepo,
		dashboardService,
		rankingService,
		metrics,
		documentReloadService,
		documentWatcher,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
