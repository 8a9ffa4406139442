package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mosaicgrowth/competitor-intel-api/infrastructure/integrator/adlibrary"
	"github.com/mosaicgrowth/competitor-intel-api/infrastructure/integrator/adlibrary/adlibraryclient"
	"github.com/mosaicgrowth/competitor-intel-api/infrastructure/integrator/rainforest"
	"github.com/mosaicgrowth/competitor-intel-api/infrastructure/integrator/rainforest/rainforestclient"
	"github.com/mosaicgrowth/competitor-intel-api/internal/api"
	"github.com/mosaicgrowth/competitor-intel-api/internal/config"
	"github.com/mosaicgrowth/competitor-intel-api/internal/usecases/cataloging"
	"github.com/mosaicgrowth/competitor-intel-api/internal/usecases/tracking"
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

	if !cfg.HasMetaToken() {
		logrus.Warn("META_ACCESS_TOKEN não configurado; as rotas de anúncios retornarão erro")
	}
	if !cfg.HasRainforestKey() {
		logrus.Warn("RAINFOREST_API_KEY não configurado; a rota de produtos retornará erro")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	adLibraryClient := adlibraryclient.NewClient(cfg)
	adLibraryIntegrator := adlibrary.New(cfg, adLibraryClient)

	rainforestClient := rainforestclient.NewClient(cfg)
	rainforestIntegrator := rainforest.New(cfg, rainforestClient)

	trackingService := tracking.NewService(cfg, adLibraryIntegrator)
	catalogService := cataloging.NewService(rainforestIntegrator)

	server, err := api.New(cfg, trackingService, catalogService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
