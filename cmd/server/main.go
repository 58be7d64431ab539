package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"

	"chatscope/internal/adapters/cache"
	"chatscope/internal/adapters/storage"
	"chatscope/internal/adapters/web"
	"chatscope/internal/analysis"
	"chatscope/internal/config"
	"chatscope/internal/usecases"
	"chatscope/pkg/log"
	"chatscope/pkg/log/transporters"
)

func main() {
	// Optional .env for local development; ignored when absent.
	_ = godotenv.Load()

	logger := log.New(log.Info, transporters.NewStdout())
	log.SetDefault(logger)
	defer logger.Close()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.GlobalFatal("failed to load config", "path", configPath, "error", err.Error())
		os.Exit(1)
	}

	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	}

	lexicon, err := analysis.LoadLexicon(cfg.Analysis.LexiconPath)
	if err != nil {
		log.GlobalFatal("failed to load lexicon", "path", cfg.Analysis.LexiconPath, "error", err.Error())
		os.Exit(1)
	}

	store, cleanup, err := newFileStore(cfg)
	if err != nil {
		log.GlobalFatal("failed to initialize storage", "error", err.Error())
		os.Exit(1)
	}
	defer cleanup()

	resultCache := cache.NewMemoryCache(cfg.Cache.TTL)

	analyzer := usecases.NewAnalyzeTranscriptUseCase(analysis.NewEngine(lexicon))
	handlers := web.NewHandlers(
		usecases.NewUploadFileUseCase(store, cfg.Upload.MaxSizeBytes),
		usecases.NewListFilesUseCase(store),
		usecases.NewGetFileUseCase(store),
		usecases.NewDeleteFileUseCase(store, resultCache),
		usecases.NewGetAnalysisUseCase(resultCache, store, analyzer),
		analyzer,
		web.NewRateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window),
	)

	app := fiber.New(fiber.Config{
		AppName:   "Chatscope",
		BodyLimit: int(cfg.Upload.MaxSizeBytes) + 1024*1024,
	})

	app.Use(recover.New())
	app.Use(requestid.New(web.RequestIDConfig()))
	app.Use(web.RequestIDToContextMiddleware())
	app.Use(web.RequestLoggerMiddleware())

	web.SetupRoutes(app, handlers)

	go func() {
		log.GlobalInfo("starting server", "port", cfg.Server.Port)
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			log.GlobalFatal("server stopped", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.GlobalInfo("shutting down")
	if err := app.Shutdown(); err != nil {
		log.GlobalError("shutdown failed", "error", err.Error())
	}
}

// newFileStore selects Postgres when a DSN is configured and the in-memory
// store otherwise. The cleanup func closes whatever was opened.
func newFileStore(cfg *config.Config) (usecases.FileStore, func(), error) {
	if cfg.Storage.DSN == "" {
		log.GlobalInfo("using in-memory file store")
		return storage.NewMemory(), func() {}, nil
	}

	pg, err := storage.NewPostgres(cfg.Storage.DSN)
	if err != nil {
		return nil, nil, err
	}
	log.GlobalInfo("using postgres file store")
	return pg, func() {
		if err := pg.Close(); err != nil {
			log.GlobalError("closing postgres", "error", err.Error())
		}
	}, nil
}
