package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medicore-service/internal/app/config"
	"medicore-service/internal/app/delivery/http/controllers"
	"medicore-service/internal/app/delivery/http/middlewares"
	"medicore-service/internal/app/delivery/http/routers"
	"medicore-service/internal/app/delivery/ws"
	"medicore-service/internal/app/drivers/database"
	"medicore-service/internal/app/drivers/logger"
	"medicore-service/internal/app/drivers/messaging"
	"medicore-service/internal/app/services/core/emergency"
	"medicore-service/internal/app/services/core/patients"
	"medicore-service/internal/app/services/core/staff"
	"medicore-service/internal/app/services/shared/admissionqueue"
	"medicore-service/internal/app/services/shared/events"
	sharedredis "medicore-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootLog := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		bootLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	subscriberCtx, stopSubscriber := context.WithCancel(context.Background())

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
		SubscriberStop: stopSubscriber,
	}

	bootstrapingTheApp(bootstrap, subscriberCtx, bootLog)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootLog.Fatalf("Server failed to start: %v", err)
		}
	}()
	bootLog.Printf("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	bootLog.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		bootLog.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		bootLog.Fatalf("Error while closing application dependencies: %v", err)
	}

	bootLog.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap, subscriberCtx context.Context, bootLog *logrus.Logger) {
	// Shared services
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	eventPublisher := events.NewRedisEventPublisher(bootstrap.Redis, bootstrap.Logger)

	admissionQueue, err := admissionqueue.NewService(bootstrap.RabbitMQ, bootstrap.Logger)
	if err != nil {
		bootLog.Fatalf("Failed to initialize admission queue: %v", err)
	}

	// Middlewares
	mw := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Repositories
	caseRepository := emergency.NewEmergencyCaseMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	sequenceRepository := emergency.NewSequenceMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	patientRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	staffRepository := staff.NewStaffMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)

	// Emergency
	emergencyUsecase := emergency.NewEmergencyUsecase(
		caseRepository,
		sequenceRepository,
		patientRepository,
		staffRepository,
		admissionQueue,
		eventPublisher,
		redisRepository,
		bootstrap.Logger,
	)
	emergencyController := controllers.NewEmergencyController(bootstrap.Logger, emergencyUsecase)

	// Websocket hub fed by the shared Redis channel
	hub := ws.NewHub(bootstrap.Logger)
	go hub.RunSubscriber(subscriberCtx, bootstrap.Redis)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, mw, emergencyController, hub)
}
