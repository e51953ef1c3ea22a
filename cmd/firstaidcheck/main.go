package main

import (
	"log"

	"github.com/joho/godotenv"

	"firstaidcheck/internal/advisor"
	"firstaidcheck/internal/advisor/claude"
	"firstaidcheck/internal/config"
	"firstaidcheck/internal/db"
	"firstaidcheck/internal/logging"
	"firstaidcheck/internal/service"
	"firstaidcheck/internal/store"
	"firstaidcheck/internal/web"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	var restockAdvisor advisor.RestockAdvisor
	if cfg.AdvisorEnabled() {
		logger.Info("restock advisor enabled", "model", cfg.AnthropicModel)
		restockAdvisor = claude.NewClaudeAdvisor(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	}

	checkService := service.NewCheckService(store.NewCheckStore(database), restockAdvisor, logger)
	server := web.NewServer(checkService, logger)

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}
