package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-payroll-api/infrastructure/integrator/moysklad"
	"github.com/vfg2006/sales-payroll-api/infrastructure/integrator/moysklad/moyskladclient"
	"github.com/vfg2006/sales-payroll-api/internal/api"
	"github.com/vfg2006/sales-payroll-api/internal/api/handler"
	"github.com/vfg2006/sales-payroll-api/internal/config"
	"github.com/vfg2006/sales-payroll-api/internal/scheduler"
	"github.com/vfg2006/sales-payroll-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-payroll-api/internal/usecases/payroll"
	"github.com/vfg2006/sales-payroll-api/pkg/log"
)

func main() {
	// Executa a partir do diretório do binário para achar o .env
	_, file, _, _ := runtime.Caller(0)
	os.Chdir(path.Dir(file))

	log.Configure("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	moyskladClient := moyskladclient.NewClient(cfg)
	moyskladIntegrator := moysklad.New(moyskladClient)

	aggregator := aggregating.NewService(cfg, moyskladIntegrator)
	calculator := payroll.NewService(cfg)
	settings := config.NewSettingsProvider(cfg)

	dailySalesReport := scheduler.NewDailySalesReportService(aggregator, settings, cfg)
	if err := dailySalesReport.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do relatório diário de vendas")
	} else {
		logrus.Info("Agendador do relatório diário de vendas iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Aggregator: aggregator,
		Integrator: moyskladIntegrator,
		Calculator: calculator,
		Settings:   settings,
		CronJobs: handler.CronJobServices{
			DailySalesReport: dailySalesReport,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
