package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/adsync/spend-collector-api/infrastructure/database/postgres"
	"github.com/adsync/spend-collector-api/infrastructure/integrator/dolphin"
	"github.com/adsync/spend-collector-api/infrastructure/integrator/dolphin/dolphinclient"
	"github.com/adsync/spend-collector-api/infrastructure/integrator/meta"
	"github.com/adsync/spend-collector-api/infrastructure/integrator/meta/metaclient"
	"github.com/adsync/spend-collector-api/infrastructure/repository"
	"github.com/adsync/spend-collector-api/internal/api"
	"github.com/adsync/spend-collector-api/internal/config"
	"github.com/adsync/spend-collector-api/internal/scheduler"
	"github.com/adsync/spend-collector-api/internal/usecases/authenticating"
	"github.com/adsync/spend-collector-api/internal/usecases/collecting"
	"github.com/sirupsen/logrus"
)

func main() {
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

	profileRepo := repository.NewProfileRepository(pgConn)
	adSpendRepo := repository.NewAdSpendRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	dolphinClient := dolphinclient.NewClient(cfg)
	browserIntegrator := dolphin.New(cfg, dolphinClient)

	collector := collecting.NewService(cfg, browserIntegrator, metaIntegrator, adSpendRepo)

	collectionSyncService := scheduler.NewCollectionSyncService(profileRepo, collector, cfg)

	if err := collectionSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de coletas de gastos")
	} else {
		logrus.Info("Agendador de coletas de gastos iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		profileRepo,
		adSpendRepo,
		authenticator,
		metaIntegrator,
		browserIntegrator,
		collectionSyncService,
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
