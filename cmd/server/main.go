package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/finverde/Family-Finance-Backend/internal/api"
	"github.com/finverde/Family-Finance-Backend/internal/config"
	"github.com/finverde/Family-Finance-Backend/internal/database"
	"github.com/finverde/Family-Finance-Backend/internal/repository"
	"github.com/finverde/Family-Finance-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	incomeRepo := repository.NewIncomeRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	liabilityRepo := repository.NewLiabilityRepository(db)
	planningRepo := repository.NewPlanningRepository(db)
	insightRepo := repository.NewInsightRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	dashboardService := service.NewDashboardService(
		incomeRepo,
		expenseRepo,
		assetRepo,
		liabilityRepo,
		planningRepo,
	)
	wealthService := service.NewWealthService(assetRepo)
	insightService := service.NewInsightService(
		incomeRepo,
		expenseRepo,
		assetRepo,
		liabilityRepo,
		planningRepo,
		insightRepo,
	)

	// Scheduled insight refresh
	scheduler := cron.New()
	if cfg.Insights.CronSchedule != "" {
		_, err := scheduler.AddFunc(cfg.Insights.CronSchedule, func() {
			refreshed, err := insightService.RefreshAll(time.Now().UTC())
			if err != nil {
				log.Printf("Scheduled insight refresh failed: %v", err)
				return
			}
			log.Printf("Scheduled insight refresh completed for %d owner(s)", refreshed)
		})
		if err != nil {
			log.Fatalf("Failed to schedule insight refresh: %v", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	// Create router
	router := api.NewRouter(systemService, dashboardService, wealthService, insightService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
