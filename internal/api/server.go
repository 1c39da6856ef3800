package api

import (
	"context"
	"fmt"

	"etatcivil/internal/app/config"
	"etatcivil/internal/app/dsn"
	"etatcivil/internal/app/handler"
	"etatcivil/internal/app/middleware"
	"etatcivil/internal/app/redis"
	"etatcivil/internal/app/reference"
	"etatcivil/internal/app/repository"
	"etatcivil/internal/app/service"
	"etatcivil/internal/app/storage"
	"etatcivil/internal/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// StartServer assemble les dépendances et lance le serveur HTTP
func StartServer() {
	logrus.Info("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("cannot read config: %v", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Fatalf("cannot initialize repository: %v", err)
	}

	objects, err := newObjectStorage(cfg)
	if err != nil {
		logrus.Fatalf("cannot initialize object storage: %v", err)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logrus.Fatalf("cannot initialize redis client: %v", err)
	}

	allocator := reference.NewAllocator(repo)
	svc := service.NewRequestService(repo, allocator, objects)

	apiHandler := handler.NewAPIHandler(repo, svc, redisClient, cfg)
	authMiddleware := middleware.NewAuthMiddleware(redisClient, cfg)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Payment-Key"},
		AllowCredentials: true,
	}))

	app := pkg.NewApp(cfg, r, apiHandler, authMiddleware)
	app.RunApp()
}

// newObjectStorage choisit le puits d'écriture des actes selon la configuration
func newObjectStorage(cfg *config.Config) (storage.ObjectStorage, error) {
	switch cfg.Storage.Mode {
	case "local":
		baseURL := cfg.Storage.BaseURL
		if baseURL == "" {
			baseURL = fmt.Sprintf("http://%s:%d/%s", cfg.ServiceHost, cfg.ServicePort, cfg.Storage.LocalDir)
		}
		return storage.NewLocalStorage(cfg.Storage.LocalDir, baseURL)
	default:
		return storage.NewMinIOClient(
			cfg.Minio.Endpoint,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.Bucket,
			cfg.Minio.UseSSL,
		)
	}
}
