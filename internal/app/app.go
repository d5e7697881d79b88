package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	hubHTTP "github.com/ujhhhhhhh/skibidi-hub-REAL/internal/controller/http"
	"github.com/ujhhhhhhh/skibidi-hub-REAL/internal/repo"
	"github.com/ujhhhhhhh/skibidi-hub-REAL/internal/storage"
	"github.com/ujhhhhhhh/skibidi-hub-REAL/internal/usecase"
	"github.com/ujhhhhhhh/skibidi-hub-REAL/pkg/cache"
	"github.com/ujhhhhhhh/skibidi-hub-REAL/pkg/config"
	"github.com/ujhhhhhhh/skibidi-hub-REAL/pkg/database"
	"github.com/ujhhhhhhh/skibidi-hub-REAL/pkg/logger"
	"github.com/ujhhhhhhh/skibidi-hub-REAL/pkg/middleware"
	"github.com/ujhhhhhhh/skibidi-hub-REAL/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func Run(cfg *config.Config, log *logger.Logger) error {
	backend, err := NewBackend(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize %s storage backend: %w", cfg.StorageBackend, err)
	}
	log.Info("Using %s storage backend", backend.Name())

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient, err = cache.NewRedisClient(cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
	}

	repository := repo.New(backend, log)
	hubUseCase := usecase.NewHubUseCase(repository, log)
	videoUseCase := usecase.NewVideoUseCase(repository, hubUseCase, log)

	hubHandler := hubHTTP.NewHubHandler(hubUseCase, cfg.MaxUploadSize, log)
	videoHandler := hubHTTP.NewVideoHandler(videoUseCase, hubHandler, log)

	r := NewRouter(cfg, hubHandler, videoHandler, redisClient)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info("Skibidi Hub starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down Skibidi Hub...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Stops the backup sidecar and releases database handles.
	if err := backend.Close(); err != nil {
		log.Error("Error closing storage backend: %v", err)
	}

	log.Info("Skibidi Hub exited")
	return nil
}

func NewRouter(cfg *config.Config, hubHandler *hubHTTP.HubHandler, videoHandler *hubHTTP.VideoHandler, redisClient *redis.Client) *gin.Engine {
	r := gin.Default()
	r.MaxMultipartMemory = cfg.MaxUploadSize

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/", hubHandler.Feed)
	r.GET("/hall-of-fame", hubHandler.HallOfFame)
	r.GET("/hall-of-shame", hubHandler.HallOfShame)
	r.GET("/comments/:id", hubHandler.GetComments)
	r.GET("/api/comments/:id", hubHandler.GetComments)
	r.GET("/uploads/:filename", hubHandler.ServeUpload)
	r.GET("/api/posts", hubHandler.APIPosts)
	r.GET("/api/videos", videoHandler.ListVideos)

	mutating := r.Group("/")
	if redisClient != nil {
		mutating.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))
	}
	{
		mutating.POST("/create", hubHandler.CreatePost)
		mutating.POST("/like/:id", hubHandler.LikePost)
		mutating.POST("/comment/:id", hubHandler.AddComment)
		mutating.POST("/videos", videoHandler.CreateVideo)
		mutating.POST("/like-video/:id", videoHandler.LikeVideo)
		mutating.POST("/track-view/:id", videoHandler.TrackView)
	}

	return r
}

func NewBackend(cfg *config.Config, log *logger.Logger) (storage.Backend, error) {
	switch cfg.StorageBackend {
	case "memory":
		return storage.NewMemoryBackend(storage.MemoryOptions{
			BackupURL:      cfg.BackupURL,
			BackupInterval: time.Duration(cfg.BackupInterval) * time.Second,
		}, log), nil

	case "file":
		return storage.NewFileBackend(cfg.DataDir, cfg.UploadDir)

	case "database":
		db, err := database.NewPostgresDB(cfg)
		if err != nil {
			return nil, err
		}
		return storage.NewDatabaseBackend(db)

	case "blob":
		client, err := s3.NewClient(cfg)
		if err != nil {
			return nil, err
		}
		return storage.NewBlobBackend(client), nil
	}

	return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}
