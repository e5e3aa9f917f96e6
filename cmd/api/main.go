package main

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/dataset"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	// Valores monetários saem como números no JSON, não como strings
	decimal.MarshalJSONWithoutQuotes = true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	datasetProvider := dataset.NewProvider(dataset.ParamsFromConfig(cfg.Dataset))
	salesRecordRepo := repository.NewSalesRecordRepository(datasetProvider)

	// A criação do serviço dispara a geração única do dataset
	dashboardService := dashboarding.NewService(salesRecordRepo)

	server, err := api.New(cfg, dashboardService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
