package main

import (
	"fmt"
	"log/slog"

	"github.com/corebanq/dbank/infra/database"
	infrarepo "github.com/corebanq/dbank/infra/repository"
	"github.com/corebanq/dbank/pkg/config"
	"github.com/corebanq/dbank/webapi"
	log "github.com/charmbracelet/log"
)

// @title dbank API
// @version 1.0.0
// @description Banking backend: accounts, cards and operations with role-based access.
// @contact.name API Support
// @host localhost:3000
// @BasePath /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description "Enter your Bearer token in the format: `Bearer {token}`"
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	logger := slog.Default()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	db, err := database.Connect(cfg.DB.URL)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	uow := infrarepo.NewUnitOfWork(db)
	app := webapi.SetupApp(uow, cfg, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "env", cfg.Env, "address", addr)
	return app.Listen(addr)
}
