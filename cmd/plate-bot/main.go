package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"plate-bot/internal/auth"
	"plate-bot/internal/config"
	httphandler "plate-bot/internal/http"
	"plate-bot/internal/http/middleware"
	"plate-bot/internal/logger"
	"plate-bot/internal/repository"
	"plate-bot/internal/service"
	"plate-bot/internal/source"
	"plate-bot/internal/storage"
	"plate-bot/internal/telegram"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	rowSource, err := buildSource(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to configure data source")
	}

	registryRepo := repository.NewRegistryRepository()
	authState := repository.NewAuthState()
	registryService := service.NewRegistryService(registryRepo, rowSource, appLogger)
	botService := service.NewBotService(registryService, authState, appLogger)

	// Initial load. A failure here is not fatal: the bot still serves the
	// phone prompt and an operator can trigger /reload once the source is
	// reachable again.
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	if _, err := registryService.Reload(loadCtx); err != nil {
		appLogger.Error().Err(err).Msg("initial dataset load failed, serving without index")
	}
	loadCancel()

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)

	handler := httphandler.NewHandler(registryService, appLogger)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, registryService, appLogger)

	tgClient := telegram.NewClient(cfg.Telegram.BotToken, appLogger)
	poller := telegram.NewPoller(tgClient, botService, registryService, cfg.Telegram.AdminIDs, cfg.Telegram.PollTimeout, appLogger)

	pollCtx, pollCancel := context.WithCancel(context.Background())
	defer pollCancel()
	go func() {
		if err := poller.Run(pollCtx); err != nil && !errors.Is(err, context.Canceled) {
			appLogger.Error().Err(err).Msg("telegram poller exited")
		}
	}()

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Msg("starting plate bot")

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error().Err(err).Msg("failed to start server")
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down")
	pollCancel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server exited")
}

// buildSource picks the dataset source: published sheet CSV first, then a
// local workbook, then object storage.
func buildSource(cfg *config.Config, log zerolog.Logger) (source.RowSource, error) {
	switch {
	case cfg.Source.SheetCSVURL != "":
		return source.NewSheetCSVSource(cfg.Source.SheetCSVURL, log), nil
	case cfg.Source.XLSXPath != "":
		return source.NewExcelFileSource(cfg.Source.XLSXPath, cfg.Source.SheetName), nil
	default:
		r2Client, err := storage.NewR2ClientFromEnv()
		if err != nil {
			if errors.Is(err, storage.ErrNotConfigured) {
				return nil, errors.New("no data source configured: set SHEET_CSV_URL, XLSX_PATH or the R2_* variables")
			}
			return nil, err
		}
		if cfg.Source.ObjectKey == "" {
			return nil, errors.New("R2_OBJECT_KEY is required for the object storage source")
		}
		return source.NewObjectWorkbookSource(r2Client, cfg.Source.ObjectKey, cfg.Source.SheetName), nil
	}
}
