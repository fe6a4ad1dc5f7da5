package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"climate-api/internal/application/controller"
	"climate-api/internal/application/middleware"
	"climate-api/internal/application/schedule"
	"climate-api/internal/application/validator"
	"climate-api/internal/domain/gateway/db"
	"climate-api/internal/domain/gateway/queue"
	"climate-api/internal/domain/gateway/ratelimit"
	"climate-api/internal/domain/usecase/climate"
	"climate-api/internal/domain/usecase/health"
	"climate-api/internal/domain/usecase/report"
	"climate-api/internal/infra/aws"
	"climate-api/internal/infra/database"
	gormdb "climate-api/internal/infra/database/gorm"
	"climate-api/internal/infra/database/sqlc"
	"climate-api/pkg/log"
	"climate-api/pkg/msg"
	"climate-api/pkg/redis"
	"climate-api/pkg/resource"
	"climate-api/pkg/sqs"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	defer log.Sync()
	log.Info(msg.GetMessage("app.start"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Init infra
	dbConfig := database.LoadConfig()
	log.Info(msg.GetMessage("db.open", dbConfig.Driver, dbConfig.Gateway))
	sqlDB, err := sqlc.Open(ctx, dbConfig)
	if err != nil {
		log.Fatal(msg.GetMessage("db.open-failed", err))
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Error(msg.GetMessage("db.close-failed", err))
		}
	}()

	// Init Gateways
	observationGateway, dbHealthGateway, err := newDBGateways(sqlDB, dbConfig)
	if err != nil {
		log.Fatal(msg.GetMessage("db.open-failed", err))
	}

	rateLimiter, redisClient, err := newRateLimiter()
	if err != nil {
		log.Fatalf("Failed to create rate limiter: %v", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}
	rateLimitGateway := ratelimit.NewRedisRateLimitGateway(rateLimiter)

	queueName := resource.GetString("app.report.queue-name")
	sender, err := newSender(ctx)
	if err != nil {
		log.Fatalf("Failed to create report sender: %v", err)
	}
	queueHealthGateway := queue.NewSQSHealthGateway(sender, queueName)

	// Init UseCase
	climateUseCase := climate.NewClimateUseCase(observationGateway)
	healthUseCase := health.NewHealthUseCase(dbHealthGateway, rateLimitGateway, queueHealthGateway)

	// Init Schedule
	var reportScheduler *schedule.ReportScheduler
	if sender != nil {
		reportUseCase := report.NewReportUseCase(climateUseCase, sender, queueName)
		reportScheduler, err = schedule.NewReportScheduler(reportUseCase, resource.GetString("app.report.cron"), queueName)
		if err != nil {
			log.Fatal(err.Error())
		}
		if err := reportScheduler.InitReportScheduleTasks(); err != nil {
			log.Fatal(err.Error())
		}
	}

	// Init Routes
	contextPath := resource.GetString("app.server.context-path")
	e := newServer(contextPath, rateLimiter != nil, rateLimitGateway)
	api := e.Group(contextPath)
	controller.NewClimateController(api, contextPath, climateUseCase).InitClimateRoutes()
	controller.NewHealthController(api, healthUseCase).InitHealthRoutes()
	controller.InitSwaggerRoutes(api)

	// Start Routes
	port := resource.GetString("app.server.port")
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info(msg.GetMessage("app.started", port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		log.Info(msg.GetMessage("app.stopping"))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if reportScheduler != nil {
			reportScheduler.Stop(shutdownCtx)
		}
		return e.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Error(err.Error())
	}
	log.Info(msg.GetMessage("app.stopped"))
}

func newServer(contextPath string, rateLimited bool, rateLimitGateway ratelimit.RateLimitGateway) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.NewEchoValidator()

	middleware.SetupRequestID(e)
	middleware.SetupRecover(e)
	middleware.SetupRequestLogger(e)
	if rateLimited {
		middleware.SetupRateLimit(e, rateLimitGateway)
	}
	return e
}

// newDBGateways picks the observation and health gateways for app.db.gateway over one shared pool
func newDBGateways(sqlDB *sql.DB, config database.Config) (db.ObservationGateway, db.HealthDBGateway, error) {
	if config.Gateway == database.GatewayGorm {
		gormDB, err := gormdb.Open(sqlDB, config.Driver)
		if err != nil {
			return nil, nil, err
		}
		return db.NewGormObservationGateway(gormDB), db.NewGormHealthDBGateway(gormDB), nil
	}
	return db.NewSQLCObservationGateway(sqlDB), db.NewSQLCHealthDBGateway(sqlDB, config.Driver), nil
}

// newRateLimiter returns nil values when app.redis.enabled is false
func newRateLimiter() (*redis.RateLimiter, *redis.Client, error) {
	if !resource.GetBool("app.redis.enabled") {
		return nil, nil, nil
	}

	client, err := redis.NewClient(redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")))
	if err != nil {
		return nil, nil, err
	}

	limiter, err := redis.NewRateLimiter(client, redis.NewRateLimiterOptions(resource.GetInt("app.rate-limit.requests-per-minute")))
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return limiter, client, nil
}

// newSender returns nil when app.report.enabled is false
func newSender(ctx context.Context) (*sqs.Sender, error) {
	if !resource.GetBool("app.report.enabled") {
		return nil, nil
	}

	cloudConfig := aws.LoadConfig()
	awsConfig, err := aws.LoadAWSConfig(ctx, cloudConfig)
	if err != nil {
		return nil, err
	}
	return sqs.NewSender(aws.NewSqsClient(awsConfig, cloudConfig), nil), nil
}
