package main

import (
	"context"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/Skotchmaster/dummyjson/internal/httpserver"
	"github.com/Skotchmaster/dummyjson/internal/models"
	"github.com/Skotchmaster/dummyjson/internal/mykafka"
	"github.com/Skotchmaster/dummyjson/internal/repo"
	"github.com/Skotchmaster/dummyjson/internal/search"
	"github.com/Skotchmaster/dummyjson/internal/service"
	"github.com/Skotchmaster/dummyjson/pkg/config"
	pkgdb "github.com/Skotchmaster/dummyjson/pkg/db"
	"github.com/Skotchmaster/dummyjson/pkg/logging"
	loggingmw "github.com/Skotchmaster/dummyjson/pkg/middleware/logging"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	var source fs.FS = repo.Embedded()
	if cfg.DataDir != "" {
		source = os.DirFS(cfg.DataDir)
	}
	catalog, err := repo.LoadCatalog(source)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	logger.Info("catalog_loaded",
		"products", len(catalog.Products()),
		"carts", len(catalog.Carts()),
		"users", len(catalog.Users()),
		"posts", len(catalog.Posts()),
		"todos", len(catalog.Todos()),
	)

	var (
		db        *gorm.DB
		logWriter *repo.LogWriter
		sink      loggingmw.Sink
	)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err = pkgdb.Open(ctx, cfg.DatabaseURL, &models.RequestLog{})
	cancel()
	if err != nil {
		logger.Error("db_open_failed", "reason", "request logs will not be persisted", "error", err)
	} else {
		logWriter = repo.NewLogWriter(&repo.GormRepo{DB: db}, logger)
		sink = logWriter
	}

	var events service.EventPublisher = service.NoopPublisher{}
	var producer *mykafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer, err = mykafka.NewProducer(cfg.KafkaBrokers, logger)
		if err != nil {
			log.Fatalf("kafka: %v", err)
		}
		events = producer
	}

	var index service.ProductIndex
	if cfg.ESURL != "" {
		if esClient, err := search.NewClient(cfg, logger); err != nil {
			logger.Error("es_unavailable", "reason", "falling back to in-memory search", "error", err)
		} else {
			ix := search.NewProductIndex(esClient, cfg.ESIndex)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			err := ix.Rebuild(ctx, catalog.Products())
			cancel()
			if err != nil {
				logger.Error("es_rebuild_failed", "reason", "falling back to in-memory search", "error", err)
			} else {
				index = ix
			}
		}
	}

	products := &service.ProductService{Catalog: catalog, Index: index, Events: events}
	carts := &service.CartService{Catalog: catalog, Events: events}
	users := &service.UserService{Catalog: catalog, Events: events}
	posts := &service.PostService{Catalog: catalog, Events: events}
	todos := &service.TodoService{Catalog: catalog, Events: events}
	auth := &service.AuthService{Catalog: catalog, Secret: cfg.JWTSecret, TTL: cfg.TokenTTL}

	var ready atomic.Bool

	e := echo.New()
	e.HideBanner = true
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(loggingmw.RequestLogger(logger, sink))
	e.Use(echomw.CORS())
	if cfg.RateLimitRPS > 0 {
		e.Use(echomw.RateLimiter(echomw.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimitRPS))))
	}

	httpserver.Register(e, &httpserver.Deps{
		ProductHandler: &httpserver.ProductHTTP{Svc: products},
		CartHandler:    &httpserver.CartHTTP{Svc: carts},
		UserHandler:    &httpserver.UserHTTP{Svc: users, Carts: carts, Posts: posts, Todos: todos},
		PostHandler:    &httpserver.PostHTTP{Svc: posts},
		TodoHandler:    &httpserver.TodoHTTP{Svc: todos},
		AuthHandler:    &httpserver.AuthHTTP{Svc: auth},
		JWTSecret:      cfg.JWTSecret,
		Ready:          ready.Load,
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("http_listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()
	ready.Store(true)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ready.Store(false)
	logger.Info("shutting_down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server_shutdown_failed", "error", err)
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			logger.Error("kafka_close_failed", "error", err)
		}
	}

	if logWriter != nil {
		logWriter.Close()
	}

	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	logger.Info("stopped")
}
