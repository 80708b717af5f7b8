package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yourusername/discovery-api/internal/config"
	"github.com/yourusername/discovery-api/internal/handler"
	"github.com/yourusername/discovery-api/internal/middleware"
	pgRepo "github.com/yourusername/discovery-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/discovery-api/internal/repository/redis"
	"github.com/yourusername/discovery-api/internal/service"
	"github.com/yourusername/discovery-api/internal/service/adaptive"
	"github.com/yourusername/discovery-api/pkg/database"
	"github.com/yourusername/discovery-api/pkg/recommender"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к Redis с использованием унифицированной конфигурации
	redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	log.Println("Successfully connected to Redis")

	// Инициализируем репозитории
	learnerRepo := pgRepo.NewLearnerRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)
	feedbackRepo := pgRepo.NewFeedbackRepo(db)
	interactionRepo := pgRepo.NewInteractionRepo(db)

	stateRepo, err := redisRepo.NewStateRepo(redisClient)
	if err != nil {
		log.Printf("Failed to initialize StateRepo: %v", err)
		os.Exit(1)
	}

	// --- Инициализация конфигурации адаптивного движка ---
	engineConfig := adaptive.DefaultConfig()
	engineConfig.UseHistory = cfg.Engine.UseHistory
	engineConfig.Scoring = cfg.Engine.Scoring

	selector := adaptive.NewSelector(rand.New(rand.NewSource(time.Now().UnixNano())))

	// --- Инициализация клиента внешнего ранжировщика ---
	// Клиент опционален: без него ранжированная выдача и переобучение
	// отвечают 503, базовая адаптивная выдача работает полностью.
	var ranker *recommender.Client
	if cfg.Recommender.Enabled {
		ranker = recommender.NewClient(recommender.Config{
			Endpoint:   cfg.Recommender.Endpoint,
			CampaignID: cfg.Recommender.CampaignID,
			APIKey:     cfg.Recommender.APIKey,
			Timeout:    time.Duration(cfg.Recommender.TimeoutMs) * time.Millisecond,
		})
		log.Printf("Клиент ранжировщика инициализирован: %s", cfg.Recommender.Endpoint)
	} else {
		log.Println("Внешний ранжировщик отключён, ранжированная выдача будет недоступна")
	}

	// Инициализируем сервисы
	recommendationService := service.NewRecommendationService(
		learnerRepo, questionRepo, interactionRepo, stateRepo, selector, engineConfig)
	feedbackService := service.NewFeedbackService(
		stateRepo, feedbackRepo, questionRepo, interactionRepo, engineConfig)
	datasetService := service.NewDatasetService(learnerRepo, questionRepo, interactionRepo)

	// Инициализируем обработчики
	requestTimeout := cfg.Engine.RequestTimeout()
	recommendationHandler := handler.NewRecommendationHandler(recommendationService, ranker, requestTimeout)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService, requestTimeout)
	datasetHandler := handler.NewDatasetHandler(datasetService, ranker, requestTimeout)

	// Инициализируем middleware
	adminAuth := middleware.NewAdminAuthMiddleware(cfg.Admin.JWTSecret)
	rateLimiter := middleware.NewRateLimiter(redisClient)

	// Инициализируем роутер Gin
	router := gin.Default()

	// Настройка доверенных прокси для корректной работы c.ClientIP()
	isProduction := gin.Mode() == gin.ReleaseMode
	if isProduction {
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Настраиваем маршруты API
	api := router.Group("/api")
	if cfg.RateLimit.Enabled {
		limitCfg := middleware.DefaultAPIRateLimitConfig()
		if cfg.RateLimit.RequestsPerMinute > 0 {
			limitCfg.MaxRequests = cfg.RateLimit.RequestsPerMinute
		}
		api.Use(rateLimiter.Limit(limitCfg))
	}
	{
		// Выдача вопросов и приём фидбека (публичные маршруты)
		api.GET("/recommendation", recommendationHandler.GetRecommendation)
		api.GET("/recommendation/ranked", recommendationHandler.GetRankedRecommendations)
		api.POST("/feedback", feedbackHandler.SubmitFeedback)

		// Администрирование датасетов и модели ранжирования
		admin := api.Group("/admin")
		admin.Use(adminAuth.RequireAdmin())
		{
			admin.POST("/datasets/learners/import", datasetHandler.ImportLearners)
			admin.POST("/datasets/questions/import", datasetHandler.ImportQuestions)
			admin.GET("/datasets/interactions/export", datasetHandler.ExportInteractions)
			admin.POST("/recommender/retrain", datasetHandler.TriggerRetrain)
		}
	}

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Server started on port %s", cfg.Server.Port)

	// После получения сигнала SIGINT или SIGTERM корректно завершаем работу
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Создаем контекст с таймаутом для graceful shutdown сервера
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Server exited properly")
}
