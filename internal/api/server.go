package api

import (
	"context"
	"time"

	"backend/internal/app/cache"
	"backend/internal/app/config"
	"backend/internal/app/dsn"
	"backend/internal/app/handler"
	"backend/internal/app/middleware"
	"backend/internal/app/notify"
	"backend/internal/app/pdf"
	"backend/internal/app/redis"
	"backend/internal/app/repository"
	"backend/internal/app/service"
	"backend/internal/app/storage"
	"backend/internal/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	_ "backend/docs"
)

// StartServer собирает все зависимости и запускает HTTP сервер
// @title Print Order Admin API
// @version 1.0
// @description Бэкенд администрирования заказов печатной продукции для клиник: прайс-лист, расчет смет, жизненный цикл заказов
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func StartServer() {
	logrus.Info("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Fatalf("error initializing repository: %v", err)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logrus.Fatalf("error initializing redis: %v", err)
	}

	// MinIO опционален: без него сервис работает, просто не архивирует сметы
	var minioClient *storage.MinIOClient
	if cfg.Minio.Endpoint != "" {
		minioClient, err = storage.NewMinIOClient(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.Bucket, cfg.Minio.UseSSL)
		if err != nil {
			logrus.Warnf("minio unavailable, estimate archive disabled: %v", err)
			minioClient = nil
		}
	} else {
		logrus.Warn("MINIO_ENDPOINT not set, estimate archive disabled")
	}

	catalogCache := cache.New(time.Duration(cfg.Cache.TTLMinutes)*time.Minute, cfg.Cache.MaxEntries)
	svc := service.NewPrintOrderService(repo, catalogCache, notify.NewLogNotifier())

	authHandler := handler.NewAuthHandler(repo, redisClient, cfg)
	apiHandler := handler.NewAPIHandler(svc, pdf.NewMarotoRenderer(), minioClient, authHandler)
	authMiddleware := middleware.NewAuthMiddleware(redisClient, cfg)

	r := gin.Default()

	// CORS для фронтенда клиник
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	app := pkg.NewApp(cfg, r, apiHandler, authMiddleware)
	app.RunApp()
}
