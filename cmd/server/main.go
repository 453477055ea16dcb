package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"eventgram/config"
	"eventgram/internal/adapters/auth"
	delivery "eventgram/internal/delivery/http"
	"eventgram/internal/delivery/http/controllers"
	"eventgram/internal/delivery/http/middleware"
	"eventgram/internal/repository/docstore"
	"eventgram/internal/services"
	"eventgram/internal/store"
	"eventgram/internal/store/memory"
	"eventgram/internal/store/postgres"
)

// @title Eventgram API
// @version 1.0
// @description Shared event calendar with per-event comment threads.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := config.NewLogger(cfg.Environment)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var docs store.Store
	if cfg.DBUrl != "" {
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("db ping: %v", err)
		}
		pg := postgres.New(db, docstore.TimestampFields...)
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Fatalf("db schema: %v", err)
		}
		docs = pg
		logger.Info("document store ready", "backend", "postgres")
	} else {
		docs = memory.New()
		logger.Warn("DATABASE_URL not set, using in-memory document store")
	}

	eventRepo := docstore.NewEventRepository(docs)
	commentRepo := docstore.NewCommentRepository(docs)

	eventService := services.NewEventService(eventRepo, commentRepo, cfg.ContextTimeout)
	commentService := services.NewCommentService(eventRepo, commentRepo, cfg.ContextTimeout)

	issuer := auth.NewJWTIssuer(cfg.JWTSecret)
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)

	eventController := controllers.NewEventController(logger, eventService)
	commentController := controllers.NewCommentController(logger, commentService)
	calendarController := controllers.NewCalendarController(logger, eventService)
	authController := controllers.NewAuthController(logger, issuer)

	mux := delivery.NewRouter(
		eventController,
		commentController,
		calendarController,
		authController,
		middleware.WithIdentity(verifier, logger),
	)
	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	_ = srv.Shutdown(shutdownCtx)
}
