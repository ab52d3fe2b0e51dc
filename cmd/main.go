package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Leganyst/sitter-search/internal/availability"
	"github.com/Leganyst/sitter-search/internal/config"
	"github.com/Leganyst/sitter-search/internal/db"
	"github.com/Leganyst/sitter-search/internal/model"
	"github.com/Leganyst/sitter-search/internal/obs"
	"github.com/Leganyst/sitter-search/internal/rating"
	"github.com/Leganyst/sitter-search/internal/repository"
	"github.com/Leganyst/sitter-search/internal/search"
	"github.com/Leganyst/sitter-search/internal/server"
)

func main() {
	// 0. .env, если есть (локальная разработка).
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Загружаем конфиг из env.
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("load db config: %v", err)
	}
	appCfg := config.LoadAppConfig()

	// 2. Подключаемся к БД через GORM.
	gormDB, err := db.NewGormDB(dbCfg)
	if err != nil {
		log.Fatalf("init db: %v", err)
	}

	// 3. Миграции моделей.
	if err := model.AutoMigrate(gormDB); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("sql DB: %v", err)
	}
	defer sqlDB.Close()

	// 4. Репозитории (реализации на GORM).
	sitterRepo := repository.NewGormSitterRepository(gormDB)
	serviceRepo := repository.NewGormServiceRepository(gormDB)
	availRepo := repository.NewGormAvailabilityRepository(gormDB)
	reviewRepo := repository.NewGormReviewRepository(gormDB)

	// 5. Метрики.
	metrics := obs.NewMetrics(prometheus.NewRegistry())

	// 6. Агрегатор рейтингов с фоновым пересчётом снапшота.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ratings := rating.NewAggregator(
		reviewRepo,
		time.Duration(appCfg.RatingRefreshMin)*time.Minute,
		logger,
	)
	ratings.OnRefresh = metrics.IncRatingRefresh
	go ratings.Run(ctx)

	// 7. Поисковое ядро и HTTP-слой.
	matcher := availability.NewMatcher(availRepo)
	svc := search.NewService(matcher, sitterRepo, serviceRepo, availRepo, reviewRepo, ratings, logger)
	handler := server.NewHandler(svc, metrics, logger)
	router := server.NewRouter(handler, metrics, logger)

	httpServer := &http.Server{
		Addr:    appCfg.HTTPAddr,
		Handler: router,
	}

	log.Printf("sitter search HTTP server listening on %s", appCfg.HTTPAddr)

	// 8. Запускаем сервер в горутине.
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http serve: %v", err)
		}
	}()

	// 9. Грейсфул-шатдаун по сигналу.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("shutting down HTTP server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
