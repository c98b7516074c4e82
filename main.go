package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const maxRequestBody = 1 << 20 // 1 MiB

func setupRouter(db *sql.DB, cfg config.Config, logger *zap.Logger) *gin.Engine {
	userService := &usecase.UserService{
		UsersRepo: repository.GetUsersRepo(db),
	}
	noteService := &usecase.NoteService{
		NotesRepo: repository.GetNotesRepo(db),
		Retention: cfg.Trash.Retention,
		BaseURL:   cfg.Server.BaseURL,
		Logger:    logger,
	}
	labelService := &usecase.LabelService{
		LabelsRepo: repository.GetLabelsRepo(db),
	}

	authHandler := handler.NewAuthHandler(userService, logger)
	notesHandler := handler.NewNotesHandler(noteService, logger)
	labelsHandler := handler.NewLabelsHandler(labelService, logger)
	sharedHandler := handler.NewSharedHandler(noteService, logger)
	healthHandler := handler.NewHealthHandler(db)

	router := gin.New()
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.RequestLoggerMiddleware(logger))
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestSizeLimiter(maxRequestBody))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		notes := api.Group("/notes")
		{
			notes.GET("", notesHandler.ListNotes)
			notes.POST("", notesHandler.CreateNote)
			notes.GET("/trash", notesHandler.ListTrash)
			notes.POST("/cleanup", notesHandler.Cleanup)
			notes.GET("/:id", notesHandler.GetNote)
			notes.PUT("/:id", notesHandler.UpdateNote)
			notes.PATCH("/:id", notesHandler.RestoreNote)
			notes.DELETE("/:id", notesHandler.DeleteNote)
		}

		labels := api.Group("/labels")
		{
			labels.GET("", labelsHandler.ListLabels)
			labels.POST("", labelsHandler.CreateLabel)
		}

		api.GET("/shared/:token", sharedHandler.GetSharedNote)
		api.GET("/health", healthHandler.Status)
	}

	return router
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	utils.InitValidator()

	ctx := context.Background()
	db, err := repository.Open(ctx, cfg.Database.Path)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err), zap.String("path", cfg.Database.Path))
	}
	defer db.Close()

	router := setupRouter(db, cfg, logger)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("Server starting",
			zap.String("port", cfg.Server.Port),
			zap.Duration("trash_retention", cfg.Trash.Retention))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	sig := <-signalChan
	logger.Info("Shutting down", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", zap.Error(err))
	}
}
