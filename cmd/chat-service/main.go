package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stock-intel/internal/chat/config"
	delivery "stock-intel/internal/chat/delivery/http"
	"stock-intel/internal/chat/repository"
	"stock-intel/internal/chat/service"
	"stock-intel/pkg/logger"
	"stock-intel/pkg/postgres"

	"github.com/spf13/cobra"
	"google.golang.org/genai"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the chat service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Chat Service", logger.Field("name", cfg.App.Name))

	// Initialize database pool, shared by every request
	postgresCfg := postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		TimeZone:        cfg.Database.TimeZone,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Database.LogLevel,
	}
	db, err := postgres.NewDB(postgresCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	sqlDB, err := db.DB.DB()
	if err != nil {
		appLogger.Fatal("Failed to get database pool", logger.ErrorField(err))
	}
	defer sqlDB.Close()

	// Initialize LLM provider
	var llmRepo repository.LLMRepository
	switch cfg.LLM.Provider {
	case "deepseek", "openai":
		llmRepo = repository.NewOpenAILLMRepository(cfg, appLogger)
	case "anthropic":
		llmRepo = repository.NewAnthropicLLMRepository(cfg, appLogger)
	case "gemini":
		genAiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.LLM.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			appLogger.Fatal("Failed to initialize Gemini AI client", logger.ErrorField(err))
		}
		llmRepo = repository.NewGeminiLLMRepository(cfg, appLogger, genAiClient)
	default:
		appLogger.Fatal("Invalid LLM provider specified in config", logger.StringField("provider", cfg.LLM.Provider))
	}

	// Initialize repositories
	stockRepo := repository.NewStockRepository(db.DB)
	postRepo := repository.NewPostRepository(db.DB, stockRepo)

	// Initialize services
	intentSvc := service.NewIntentService(service.NewLLMIntentClassifier(llmRepo, cfg.LLM.IntentModel), appLogger)
	assistant := service.NewLLMAssistant(llmRepo, cfg.LLM.AssistantModel)
	chatSvc := service.NewChatService(intentSvc, postRepo, assistant, appLogger)
	postSvc := service.NewPostService(stockRepo, postRepo, appLogger)

	// Initialize Echo server
	e := delivery.NewRouter(
		cfg.CORS.AllowOrigins,
		appLogger,
		delivery.NewChatHandler(chatSvc, appLogger),
		delivery.NewPostHandler(postSvc, appLogger),
		delivery.NewHealthHandler(sqlDB, appLogger),
	)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop()
		}
	}()

	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title Stock Intel Chat API
// @version 1.0
// @description Chat answers backed by stored stock and market analysis.
// @BasePath /
func main() {
	rootCmd := &cobra.Command{Use: "chat-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-chat.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing chat-service CLI: %s\n", err)
		os.Exit(1)
	}
}
