package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"stock-intel/internal/podcast/config"
	"stock-intel/internal/podcast/dto"
	"stock-intel/internal/podcast/service"
	"stock-intel/pkg/logger"
	"stock-intel/pkg/telegram"

	"github.com/spf13/cobra"
)

var (
	configPath string
	directory  string
	secretKey  string
	serverURL  string
)

type app struct {
	cfg      *config.Config
	logger   *logger.Logger
	uploader service.UploaderService
}

func setup() *app {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	notifier, err := telegram.NewOptionalClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if err != nil {
		appLogger.Warn("Telegram notifications disabled", logger.ErrorField(err))
	}

	client := service.NewRestyClient(cfg.Podcast.Timeout)
	uploader := service.NewUploaderService(cfg.Podcast, client, notifier, appLogger)

	return &app{cfg: cfg, logger: appLogger, uploader: uploader}
}

func (a *app) request() dto.DirectoryUploadRequest {
	req := dto.DirectoryUploadRequest{
		Directory: a.cfg.Podcast.Directory,
		SecretKey: secretKey,
		ServerURL: serverURL,
	}
	if directory != "" {
		req.Directory = directory
	}
	return req
}

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Uploads the audio file found in the podcast directory",
	Run: func(cmd *cobra.Command, args []string) {
		a := setup()
		defer func() { _ = a.logger.Sync() }()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		result, err := a.uploader.UploadDirectory(ctx, a.request())
		if err != nil {
			a.logger.Error("Podcast upload failed", logger.ErrorField(err))
			if errors.Is(err, service.ErrDirectoryNotFound) || errors.Is(err, service.ErrNotDirectory) {
				os.Exit(2)
			}
			os.Exit(1)
		}

		out, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(out))
		if !result.Success {
			os.Exit(1)
		}
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Uploads the podcast directory on the configured cron schedule",
	Run: func(cmd *cobra.Command, args []string) {
		a := setup()
		defer func() { _ = a.logger.Sync() }()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		scheduler, err := service.NewScheduleService(a.uploader, a.cfg.Podcast.Cron, a.request(), a.logger)
		if err != nil {
			a.logger.Fatal("Failed to create scheduler", logger.ErrorField(err))
		}

		if err := scheduler.Start(ctx); err != nil {
			a.logger.Fatal("Scheduler stopped with error", logger.ErrorField(err))
		}
		a.logger.Info("Podcast uploader exiting")
	},
}

func main() {
	rootCmd := &cobra.Command{Use: "podcast-uploader"}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-podcast.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().StringVarP(&directory, "dir", "d", "", "Directory containing the audio file (defaults to podcast.directory)")
	rootCmd.PersistentFlags().StringVar(&secretKey, "secret-key", "", "Upload secret key (defaults to podcast.secret_key)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server-url", "", "Podcast server base URL (defaults to podcast.server_url)")

	rootCmd.AddCommand(uploadCmd, scheduleCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing podcast-uploader CLI: %s\n", err)
		os.Exit(1)
	}
}
