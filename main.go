// File: scooply/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scooply/config"
	scoopcron "scooply/cron"
	"scooply/database"
	catalogRepo "scooply/database/repository/catalog"
	customerRepo "scooply/database/repository/customer"
	invoiceRepo "scooply/database/repository/invoice"
	reminderlogRepo "scooply/database/repository/reminderlog"
	ruleRepo "scooply/database/repository/rule"
	visitRepo "scooply/database/repository/visit"
	"scooply/handlers"
	"scooply/routes"
	"scooply/services/billing"
	"scooply/services/notification"
	"scooply/services/payment"
	"scooply/services/reminder"
	"scooply/services/schedule"
	"scooply/services/tasks"
	"scooply/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	stripe.Key = config.AppConfig.StripeKey

	loc, err := time.LoadLocation(config.AppConfig.DefaultTimezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid DEFAULT_TIMEZONE %q: %v", config.AppConfig.DefaultTimezone, err)
	}

	// repositories.
	customers := customerRepo.NewMongoCustomerRepo()
	rules := ruleRepo.NewMongoRuleRepo()
	visits := visitRepo.NewMongoVisitRepo()
	invoices := invoiceRepo.NewMongoInvoiceRepo()
	catalog := catalogRepo.NewMongoCatalogRepo()
	reminderLog := reminderlogRepo.NewMongoReminderLogRepo()

	if err := visits.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: visit indexes: %v", err)
	}
	if err := invoices.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: invoice indexes: %v", err)
	}
	if err := reminderLog.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: reminder log indexes: %v", err)
	}

	// reminder delivery queue.
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
	queueClient := asynq.NewClient(redisOpts)
	defer queueClient.Close()

	// services.
	generator := &schedule.RouteGenerator{
		Rules:  rules,
		Visits: visits,
		Logger: logger,
	}
	aggregator := &billing.Aggregator{
		Customers: customers,
		Catalog:   catalog,
		Visits:    visits,
		Invoices:  invoices,
		Payments:  payment.NewStripeProcessor(logger),
		Logger:    logger,
	}
	notifier := notification.NewRateLimitedNotifier(&notification.LogNotifier{Logger: logger}, 10, 5)
	dispatcher := &reminder.Dispatcher{
		Visits:     visits,
		Customers:  customers,
		Log:        reminderLog,
		Queue:      &tasks.QueueEnqueuer{Client: queueClient},
		Logger:     logger,
		SendHour:   config.AppConfig.ReminderSendHour,
		Location:   loc,
		SMSFrom:    config.AppConfig.SMSFrom,
		ReviewLink: config.AppConfig.ReviewLink,
	}

	// background workers.
	scoopcron.InitReminderWorker(notifier)
	scheduler := scoopcron.StartScheduler(scoopcron.Jobs{
		Generator:   generator,
		Billing:     aggregator,
		Reminders:   dispatcher,
		HorizonDays: config.AppConfig.RouteHorizonDays,
		Location:    loc,
		Logger:      logger,
	})

	healthRedis := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	utils.StartHealthMonitor(healthRedis, database.MongoClient)

	// operator HTTP surface.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	opsHandler := handlers.NewOpsHandler(generator, aggregator, dispatcher, config.AppConfig.RouteHorizonDays, loc)
	routes.RegisterOpsRoutes(router, opsHandler)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
