package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"fastbite/cmd"
	httpadapter "fastbite/internal/adapters/in/http"
	"fastbite/internal/adapters/out/kafka"
	"fastbite/internal/adapters/out/postgres"
	"fastbite/internal/jobs"
	"fastbite/internal/pkg/auth"
	"fastbite/internal/pkg/logger"
	"fastbite/internal/pkg/metrics"

	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	appLogger, err := logger.New(configs.LogLevel, configs.LogFormat)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	slog.SetDefault(appLogger)

	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	tokens, err := auth.NewTokenService(configs.JWTSecret, configs.JWTTTL)
	if err != nil {
		log.Fatalf("Error creating token service: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cmd.NewCompositionRoot(configs, gormDB, appLogger)
	if err = seed(ctx, app, configs, tokens, appLogger); err != nil {
		log.Fatalf("Error seeding data: %v", err)
	}

	m := metrics.New()
	jobManager := jobs.NewJobManager(
		jobs.NewHubReportJob(app.Broadcaster(), m, configs.JobsReportSchedule, appLogger),
		jobs.NewOrderBacklogJob(app.CreateGetOrderBacklogQueryHandler(), m, app.Clock(),
			configs.JobsReportSchedule, appLogger),
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	var background sync.WaitGroup
	if configs.KafkaEnabled() {
		writer := kafka.NewWriter(configs.KafkaHost, configs.KafkaOrderChangedTopic)
		relay := kafka.NewOrderEventRelay(app.Broadcaster(), writer, appLogger)
		background.Add(1)
		go func() {
			defer background.Done()
			defer writer.Close()
			if err := relay.Run(ctx); err != nil {
				appLogger.Error("Kafka relay stopped", "error", err)
			}
		}()
	}

	e := httpadapter.NewRouter(newServer(app, configs, appLogger), tokens, m, appLogger)

	go func() {
		appLogger.Info("HTTP server starting", "port", configs.HTTPPort)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down")

	// Ending the hubs lets open streams finish so the server can drain.
	app.Broadcaster().Close()
	jobManager.StopAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.ShutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("HTTP server shutdown failed", "error", err)
	}
	background.Wait()

	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	appLogger.Info("Stopped")
}

func seed(ctx context.Context, app cmd.CompositionRoot, configs cmd.Config, tokens *auth.TokenService, logger *slog.Logger) error {
	if _, err := cmd.SeedCatalog(ctx, app.UnitOfWork(), logger); err != nil {
		return err
	}
	if !configs.SeedDemoData {
		return nil
	}
	return cmd.SeedDemoUsers(ctx, app.UnitOfWork().UserRepository(), tokens, logger)
}

func newServer(app cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:       app.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus: app.CreateUpdateOrderStatusCommandHandler(),
		AddComment:        app.CreateAddCommentCommandHandler(),

		GetOrder:              app.CreateGetOrderQueryHandler(),
		GetCustomerOrders:     app.CreateGetCustomerOrdersQueryHandler(),
		GetKitchenOrders:      app.CreateGetKitchenOrdersQueryHandler(),
		GetDeliveryOrders:     app.CreateGetDeliveryOrdersQueryHandler(),
		GetAllOrders:          app.CreateGetAllOrdersQueryHandler(),
		GetOrderComments:      app.CreateGetOrderCommentsQueryHandler(),
		HasAccess:             app.CreateHasAccessQueryHandler(),
		ListAvailableProducts: app.CreateListAvailableProductsQueryHandler(),
	}, app.Broadcaster(), configs.StreamKeepAlive, logger)
}
