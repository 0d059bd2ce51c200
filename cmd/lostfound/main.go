package main

import (
	"context"
	"log/slog"
	"os"

	"lostfound/config"
	"lostfound/internal/delivery"
	"lostfound/internal/delivery/http"
	"lostfound/internal/delivery/http/middleware"
	"lostfound/internal/delivery/http/router/handler"
	"lostfound/internal/domain/repository"
	"lostfound/internal/infra/auth"
	rediscache "lostfound/internal/infra/cache/redis"
	logs "lostfound/internal/infra/log"
	"lostfound/internal/infra/mail"
	"lostfound/internal/infra/metrics"
	"lostfound/internal/infra/persistence/mongo"
	"lostfound/internal/infra/persistence/postgres"
	"lostfound/internal/infra/storage/minio"
	"lostfound/internal/usecase/impl"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		mongo.New,
		postgres.New,
		rediscache.New,
		metrics.NewRegistry,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongo.NewZoneRepository,
			mongo.NewListingRepository,
			mongo.NewListingLocationRepository,
			mongo.NewUserRepository,
			postgres.NewDeliveryLogRepository,
		),
		fx.Decorate(cacheListingLocations),
	)
}

// cacheListingLocations puts the Redis read-through cache in front of the location store when Redis is configured.
func cacheListingLocations(
	inner repository.ListingLocationRepository,
	client *redis.Client,
	cfg *config.Config,
	logger *slog.Logger,
) repository.ListingLocationRepository {
	if client == nil {
		return inner
	}

	return rediscache.NewListingLocationCache(inner, client, cfg.Redis.RecentWindowTTL, logger)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			mail.NewMailSender,
			minio.NewPhotoStorage,
			metrics.NewAlertMetrics,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProximityService,
			impl.NewNotificationService,
			impl.NewListingService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDashboardHandler,
			handler.NewListingHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
