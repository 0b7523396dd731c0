package main

import (
	"context"
	"log/slog"
	"os"

	"nutritrack/config"
	"nutritrack/internal/delivery"
	"nutritrack/internal/delivery/http"
	"nutritrack/internal/delivery/http/middleware"
	"nutritrack/internal/delivery/http/router/handler"
	"nutritrack/internal/delivery/scheduler"
	"nutritrack/internal/infra/auth"
	"nutritrack/internal/infra/genai"
	"nutritrack/internal/infra/lock"
	logs "nutritrack/internal/infra/log"
	"nutritrack/internal/infra/notification"
	"nutritrack/internal/infra/persistence/postgres"
	"nutritrack/internal/infra/pubsub"
	"nutritrack/internal/usecase"
	"nutritrack/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
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
		postgres.New,
		newHealthPinger,
	)
}

// newHealthPinger exposes the database ping to the readiness check
func newHealthPinger(db *gorm.DB) handler.Pinger {
	return handler.Pinger(postgres.NewPinger(db))
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewMealRepository,
			postgres.NewReminderRepository,
			postgres.NewChatRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			notification.NewNotificationService,
			pubsub.NewEventPublisher,
			genai.NewTextGenerator,
			lock.NewDispatchClaimer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNutritionService,
			newNutrientAggregator,
			impl.NewMealService,
			impl.NewReminderService,
			impl.NewProfileService,
			impl.NewChatService,
			impl.NewNotificationDeduplicator,
			impl.NewRecommendationRequester,
			impl.NewPushDispatcher,
			impl.NewReminderEngine,
		),
	)
}

// newNutrientAggregator narrows the nutrition usecase to the aggregation the scheduler needs
func newNutrientAggregator(nutritionUC usecase.NutritionUsecase) usecase.NutrientAggregator {
	return nutritionUC
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewMealHandler,
			handler.NewReminderHandler,
			handler.NewGoalHandler,
			handler.NewProfileHandler,
			handler.NewChatHandler,
			handler.NewHealthHandler,
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
			fx.Annotate(
				scheduler.NewServer,
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
