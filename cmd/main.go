package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/agendaliz/booking-core/internal/config"
	"github.com/agendaliz/booking-core/internal/db"
	"github.com/agendaliz/booking-core/internal/handler"
	"github.com/agendaliz/booking-core/internal/model"
	"github.com/agendaliz/booking-core/internal/repository"
	"github.com/agendaliz/booking-core/internal/service"
)

func main() {
	// 1. Подхватываем .env, если он есть.
	_ = godotenv.Load()

	// 2. Логгер.
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	// 3. Загружаем конфиг из env.
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	// 4. Подключаемся к БД через GORM.
	gormDB, err := db.NewGormDB(&cfg.DB)
	if err != nil {
		logger.Fatal("init db", zap.Error(err))
	}

	// 5. Миграции моделей.
	if err := model.AutoMigrate(gormDB); err != nil {
		logger.Fatal("auto migrate", zap.Error(err))
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("sql DB", zap.Error(err))
	}
	defer sqlDB.Close()

	// 6. Репозитории (реализации на GORM).
	apptRepo := repository.NewGormAppointmentRepository(gormDB)
	eventRepo := repository.NewGormEventRepository(gormDB)

	// 7. Фасад движка записей.
	schedulingSvc := service.NewSchedulingService(apptRepo, eventRepo, logger)

	// 8. HTTP-интерфейс для слоя представления.
	app := fiber.New(fiber.Config{
		AppName:      "booking-core",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})
	handler.RegisterRoutes(app, handler.NewAppointmentHandler(schedulingSvc, logger))

	logger.Info("booking core listening", zap.String("addr", cfg.HTTPAddr))

	// 9. Запускаем сервер в горутине.
	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			logger.Fatal("http serve", zap.Error(err))
		}
	}()

	// 10. Грейсфул-шатдаун по сигналу.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down http server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
