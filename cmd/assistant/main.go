package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/shoppilot/shoppilot-assistant/config"
	"github.com/shoppilot/shoppilot-assistant/internal/analytics"
	"github.com/shoppilot/shoppilot-assistant/internal/content"
	"github.com/shoppilot/shoppilot-assistant/internal/inventory"
	invRepoPkg "github.com/shoppilot/shoppilot-assistant/internal/inventory/repository"
	invUCPkg "github.com/shoppilot/shoppilot-assistant/internal/inventory/usecase"
	"github.com/shoppilot/shoppilot-assistant/internal/logger"
	prodRepoPkg "github.com/shoppilot/shoppilot-assistant/internal/product/repository"
	prodUCPkg "github.com/shoppilot/shoppilot-assistant/internal/product/usecase"
	salesRepoPkg "github.com/shoppilot/shoppilot-assistant/internal/sales/repository"
	salesUCPkg "github.com/shoppilot/shoppilot-assistant/internal/sales/usecase"
	"github.com/shoppilot/shoppilot-assistant/internal/seed"
	"github.com/shoppilot/shoppilot-assistant/internal/store"
	"github.com/shoppilot/shoppilot-assistant/internal/tool"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer appLogger.Sync()

	// 3. Initialize the in-memory store and repositories
	st := store.NewStore()
	prodRepo := prodRepoPkg.NewMemoryRepository(st)
	invRepo := invRepoPkg.NewMemoryRepository(st)
	salesRepo := salesRepoPkg.NewMemoryRepository(st)

	// 4. Initialize UseCases
	sink := inventory.NewLogSink(appLogger)
	aggregator := analytics.NewAggregator(cfg.Inventory.LowStockThreshold)
	generator := content.NewTemplateGenerator(cfg.Content.RateLimitRPS, cfg.Content.RateLimitBurst)

	prodUC := prodUCPkg.NewProductUseCase(prodRepo, appLogger)
	invUC := invUCPkg.NewInventoryUseCase(invRepo, prodRepo, sink, appLogger, cfg.Inventory.LowStockThreshold)
	salesUC := salesUCPkg.NewSalesUseCase(salesRepo, prodRepo, aggregator, sink, appLogger)

	// 5. Register tools
	registry := tool.NewRegistry(appLogger)
	if err := tool.RegisterAll(registry, tool.Deps{
		Products:  prodUC,
		Inventory: invUC,
		Sales:     salesUC,
		Content:   generator,
	}); err != nil {
		appLogger.Fatal("failed to register tools", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 6. Seed demo data
	if cfg.Seed.Enabled {
		seeder := seed.NewSeeder(prodUC, salesUC, appLogger)
		if err := seeder.Run(ctx, cfg.Seed.ProductCount, cfg.Seed.SaleCount); err != nil {
			appLogger.Fatal("failed to seed demo data", zap.Error(err))
		}
	}

	// 7. Serve the tool REPL until EOF or a shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-quit
		appLogger.Info("shutting down", zap.String("signal", sig.String()))
		cancel()
		os.Stdin.Close()
	}()

	appLogger.Info("assistant ready",
		zap.String("env", cfg.App.Env),
		zap.Int("tools", len(registry.List())))
	runREPL(ctx, registry, appLogger)
	appLogger.Info("assistant stopped")
}

// runREPL reads one tool invocation per line: `<tool-name> [json-args]`.
// `tools` lists the registered tools; `exit` quits.
func runREPL(ctx context.Context, registry *tool.Registry, appLogger *zap.Logger) {
	scanner := bufio.NewScanner(os.Stdin)
	out := json.NewEncoder(os.Stdout)
	out.SetIndent("", "  ")

	fmt.Println("type a tool name followed by JSON arguments; `tools` to list, `exit` to quit")
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		name, rawArgs, _ := strings.Cut(line, " ")
		switch name {
		case "exit", "quit":
			return
		case "tools":
			for _, t := range registry.List() {
				fmt.Printf("  %-22s %s\n", t.Name, t.Description)
			}
			continue
		}

		args := json.RawMessage(strings.TrimSpace(rawArgs))
		result, err := registry.Execute(ctx, name, args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		if err := out.Encode(result); err != nil {
			appLogger.Warn("failed to encode result", zap.Error(err))
		}
	}
}
