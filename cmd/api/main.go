package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Kalashsatyapal/ChatNova/internal/infrastructure/auth"
	cacheadapter "github.com/Kalashsatyapal/ChatNova/internal/infrastructure/cache/adapter"
	cacheport "github.com/Kalashsatyapal/ChatNova/internal/infrastructure/cache/port"
	"github.com/Kalashsatyapal/ChatNova/internal/infrastructure/database"
	"github.com/Kalashsatyapal/ChatNova/internal/infrastructure/llm"
	queueadapter "github.com/Kalashsatyapal/ChatNova/internal/infrastructure/queue/adapter"
	queueport "github.com/Kalashsatyapal/ChatNova/internal/infrastructure/queue/port"
	"github.com/Kalashsatyapal/ChatNova/internal/infrastructure/realtime"
	"github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/application/task"
	repoadapter "github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/persistence/repository/adapter"
	chathttp "github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/presentation/http"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to the database on startup
	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	pool, err := database.NewPoolFromEnv(connectCtx)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	verifier, err := auth.NewVerifierFromEnv()
	if err != nil {
		log.Fatalf("failed to configure auth: %v", err)
	}

	completer, err := llm.NewOpenRouterClientFromEnv()
	if err != nil {
		log.Fatalf("failed to configure completion client: %v", err)
	}

	// Redis-backed extras are optional: without REDIS_URL the service runs
	// with history caching and retention pruning disabled.
	var cache cacheport.Cache
	if c, err := cacheadapter.NewRedisAdapter(); err != nil {
		slog.Warn("history cache disabled", "err", err)
	} else {
		cache = c
		defer c.Close()
	}

	var queueClient queueport.Client
	if qc, err := queueadapter.NewAsynqClientFromEnv(); err != nil {
		slog.Warn("background queue disabled", "err", err)
	} else {
		queueClient = qc
		defer qc.Close()

		srv, err := queueadapter.NewAsynqServer()
		if err != nil {
			log.Fatalf("failed to configure queue worker: %v", err)
		}
		task.RegisterPruneChatsTask(srv, pool)
		go func() {
			if err := srv.Run(ctx); err != nil {
				slog.Error("queue worker stopped", "err", err)
			}
		}()
	}

	hub := realtime.NewHub()
	defer hub.Close()

	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "OK",
		})
	})

	chathttp.RegisterRoutes(r, chathttp.Deps{
		Repo:      repoadapter.NewPgChatRepository(pool),
		Completer: completer,
		Verifier:  verifier,
		Hub:       hub,
		Cache:     cache,
		Queue:     queueClient,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{Addr: ":" + port, Handler: r}

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "err", err)
	}
}
