package main

import (
	"context"
	"doccare-service/internal/app/config"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/delivery/http/controllers"
	"doccare-service/internal/app/delivery/http/middlewares"
	"doccare-service/internal/app/delivery/http/routers"
	"doccare-service/internal/app/drivers/database"
	"doccare-service/internal/app/drivers/logger"
	"doccare-service/internal/app/drivers/messaging"
	"doccare-service/internal/app/drivers/storage"
	"doccare-service/internal/app/services/core/appointments"
	"doccare-service/internal/app/services/core/doctors"
	"doccare-service/internal/app/services/core/feedback"
	"doccare-service/internal/app/services/core/notifications"
	"doccare-service/internal/app/services/core/settings"
	"doccare-service/internal/app/services/core/slot"
	"doccare-service/internal/app/services/shared/eventqueue"
	"doccare-service/internal/app/services/shared/health"
	"doccare-service/internal/app/services/shared/identity"
	"doccare-service/internal/app/services/shared/locker"
	"doccare-service/internal/app/services/shared/ratelimiter"
	"doccare-service/internal/app/services/shared/redis"
	minioStorage "doccare-service/internal/app/services/shared/storage"
	"doccare-service/internal/pkg/utils"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location := utils.LoadLocationOrLocal(internalConfig.App.Timezone)
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig, internalConfig.Minio.BucketName)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	bootstrapingTheApp(appCtx, bootstrap, location)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("Server is listening", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	stopApp()
	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error while releasing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(ctx context.Context, bootstrap *config.Bootstrap, location *time.Location) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, log)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, log)
	identityProvider := identity.NewJWTIdentityProvider(internalConfig.JWT.Secret, internalConfig.JWT.Issuer, log)
	storageService := minioStorage.NewMinioStorage(bootstrap.Minio, log)

	var eventPublisher contracts.BookingEventPublisher
	publisher, err := eventqueue.NewBookingEventPublisher(bootstrap.RabbitMQ, internalConfig.RabbitMQ.BookingEventQueue, log)
	if err != nil {
		log.Warn("Booking events are disabled, failed to open rabbitMQ channel", zap.Error(err))
	} else {
		eventPublisher = publisher
	}

	// Repositories
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	doctorRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	notificationRepository := notifications.NewNotificationMongoRepository(bootstrap.MongoDB, dbName)
	settingsRepository := settings.NewSettingsMongoRepository(bootstrap.MongoDB, dbName)
	feedbackRepository := feedback.NewFeedbackMongoRepository(bootstrap.MongoDB, dbName)

	// Usecases
	settingsUsecase := settings.NewSettingsUsecase(settingsRepository, redisRepository, internalConfig, log)
	bookingService := appointments.NewAppointmentBookingService(
		appointmentRepository,
		notificationRepository,
		settingsUsecase,
		redisRepository,
		eventPublisher,
		internalConfig,
		log,
	)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentRepository,
		doctorRepository,
		bookingService,
		slot.NewWeekendSlotResolver(location, log),
		lockService,
		redisRepository,
		resourceLimiter,
		internalConfig,
		log,
	)
	doctorUsecase := doctors.NewDoctorUsecase(doctorRepository, storageService, internalConfig, log)
	notificationUsecase := notifications.NewNotificationUsecase(notificationRepository, log)
	feedbackUsecase := feedback.NewFeedbackUsecase(feedbackRepository, log)

	// Background jobs
	reconciler := appointments.NewNotificationReconciler(log, internalConfig, lockService, redisRepository, notificationRepository)
	reconciler.Start(ctx)
	bootstrap.ReconcilerStop = reconciler.Stop

	// Delivery
	middlewareInstance := middlewares.NewMiddlewares(log, identityProvider, internalConfig)
	submitLimiter := middlewares.NewRateLimiter(
		internalConfig.Booking.SubmitRatePerMinute,
		internalConfig.Booking.SubmitBurst,
		time.Minute,
		log,
	)

	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewareInstance, submitLimiter, routers.Controllers{
		Appointment:  controllers.NewAppointmentController(log, appointmentUsecase, internalConfig),
		Doctor:       controllers.NewDoctorController(log, doctorUsecase, internalConfig),
		Notification: controllers.NewNotificationController(log, notificationUsecase, internalConfig),
		Feedback:     controllers.NewFeedbackController(log, feedbackUsecase, internalConfig),
		Health: controllers.NewHealthController(log,
			health.NewMongoChecker(bootstrap.MongoDB),
			health.NewRedisChecker(redisRepository),
			health.NewRabbitMQChecker(bootstrap.RabbitMQ),
			health.NewMinioChecker(bootstrap.Minio, internalConfig.Minio.BucketName),
		),
	})
}
