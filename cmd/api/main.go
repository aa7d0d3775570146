package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/app"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/ports"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/infrastructure/config"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/infrastructure/logging"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/infrastructure/persistence/gormrepo"
)

// @title						VidaPlus API
// @version					1.0
// @description				Backend de prontuário da VidaPlus: pacientes, profissionais e consultas.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Informe "Bearer {token}"
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "vidaplus",
		Short:        "VidaPlus clinical record API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server (migrates the schema first)",
			RunE: func(cmd *cobra.Command, args []string) error {
				return serve()
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create the database tables and exit",
			RunE: func(cmd *cobra.Command, args []string) error {
				return migrate()
			},
		},
	)

	return root
}

// bootstrap carrega configuração, logger e banco já migrado
func bootstrap() (*config.Config, ports.Logger, *gorm.DB, error) {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting vidaplus backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := gormrepo.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return nil, nil, nil, err
	}

	if err := gormrepo.AutoMigrate(db); err != nil {
		logger.Error("failed to migrate database", "error", err)
		return nil, nil, nil, err
	}
	logger.Info("database schema up to date")

	return cfg, logger, db, nil
}

// migrate cria as tabelas e fecha a conexão
func migrate() error {
	_, logger, db, err := bootstrap()
	if err != nil {
		return err
	}
	closeDatabase(db, logger)
	return nil
}

// closeDatabase fecha o pool subjacente do gorm
func closeDatabase(db *gorm.DB, logger ports.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("failed to get sql.DB", "error", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("failed to close database", "error", err)
	}
}

func serve() error {
	cfg, logger, db, err := bootstrap()
	if err != nil {
		return err
	}

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	application, err := app.New(cfg, db, logger)
	if err != nil {
		logger.Error("failed to build application", "error", err)
		return err
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           application.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	closeDatabase(db, logger)

	logger.Info("server exited")
	return nil
}
