package config

import (
	"FreshTrack-API/internal/api/handlers"
	"FreshTrack-API/internal/api/routes"
	"FreshTrack-API/internal/metrics"
	"FreshTrack-API/internal/middleware"
	"FreshTrack-API/internal/utils"
	"FreshTrack-API/internal/utils/mailing"
	"FreshTrack-API/internal/utils/storage"
	"FreshTrack-API/pkg/grocery"
	"FreshTrack-API/pkg/notification"
	"FreshTrack-API/pkg/prediction"
	"FreshTrack-API/pkg/user"
	"context"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	appLogger := newLogger()

	// resolved once at startup, requests never wait on the artifact
	model := loadModelAdapter(appLogger)

	// Repository
	userRepository := user.NewUserRepository(db)
	groceryRepository := grocery.NewGroceryRepository(db)

	// Service
	predictionService := prediction.NewPredictionService(model, appLogger)
	userService := user.NewUserService(userRepository)
	groceryService := grocery.NewGroceryService(groceryRepository, predictionService, appLogger)
	notificationService := notification.NewNotificationService(
		userRepository,
		groceryService,
		mailing.NewSender(),
		appLogger,
	)

	// Handler
	groceryHandler := handlers.NewGroceryHandler(groceryService, validator)
	predictionHandler := handlers.NewPredictionHandler(predictionService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	notificationService.StartDigestScheduler(context.Background(), digestInterval(), notifyWindowDays())

	// routes
	routesConfig := routes.Config{
		App:                 app,
		GroceryHandler:      groceryHandler,
		PredictionHandler:   predictionHandler,
		NotificationHandler: notificationHandler,
		Middleware:          middlewares,
		UserService:         userService,
	}
	routesConfig.Setup()
	return app, nil
}

func newLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(utils.GetConfig("LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

// loadModelAdapter resolves the shelf life model. A local path wins over S3;
// with neither configured the prediction service serves rule-based estimates.
func loadModelAdapter(logger zerolog.Logger) prediction.ModelAdapter {
	if path := utils.GetConfig("MODEL_PATH"); path != "" {
		model, err := prediction.LoadModelFromFile(path)
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("model artifact load failed, using rule-based estimates")
			metrics.SetModelLoaded(false)
			return prediction.UnavailableModel()
		}
		logger.Info().Str("version", model.Version()).Str("path", path).Msg("shelf life model loaded")
		metrics.SetModelLoaded(true)
		return model
	}

	bucket := utils.GetConfig("MODEL_S3_BUCKET")
	key := utils.GetConfig("MODEL_S3_KEY")
	if bucket != "" && key != "" {
		s3 := storage.NewAwsS3()
		payload, err := s3.DownloadFile(context.Background(), bucket, key)
		if err != nil {
			logger.Warn().Err(err).Str("bucket", bucket).Str("key", key).Msg("model artifact download failed, using rule-based estimates")
			metrics.SetModelLoaded(false)
			return prediction.UnavailableModel()
		}
		model, err := prediction.LoadModel(payload)
		if err != nil {
			logger.Warn().Err(err).Str("bucket", bucket).Str("key", key).Msg("model artifact invalid, using rule-based estimates")
			metrics.SetModelLoaded(false)
			return prediction.UnavailableModel()
		}
		logger.Info().Str("version", model.Version()).Str("bucket", bucket).Msg("shelf life model loaded")
		metrics.SetModelLoaded(true)
		return model
	}

	logger.Info().Msg("no model artifact configured, using rule-based estimates")
	metrics.SetModelLoaded(false)
	return prediction.UnavailableModel()
}

func notifyWindowDays() int {
	days, err := strconv.Atoi(utils.GetConfig("NOTIFY_WINDOW_DAYS"))
	if err != nil || days < 1 {
		return 3
	}
	return days
}

func digestInterval() time.Duration {
	hours, err := strconv.Atoi(utils.GetConfig("NOTIFY_DIGEST_HOURS"))
	if err != nil || hours < 1 {
		return 24 * time.Hour
	}
	return time.Duration(hours) * time.Hour
}
