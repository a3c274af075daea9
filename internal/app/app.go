package app

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"org-roles-service/internal/config"
	"org-roles-service/internal/messaging/notifier"
	"org-roles-service/internal/policy"
	"org-roles-service/internal/repository"
	"org-roles-service/internal/roles"
	"org-roles-service/internal/service"
)

func Run(cfg config.Config, logger *zap.SugaredLogger) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	wg := &sync.WaitGroup{}

	// Repo and notifier outlive the HTTP server so in-flight work can still
	// reach them during shutdown.
	delayedCtx, delayedCancel := context.WithCancel(context.Background())
	delayedWg := &sync.WaitGroup{}

	repo, err := repository.NewMongoRepository(delayedCtx, logger, delayedWg, cfg.MongoDB)
	if err != nil {
		logger.Fatalw("failed to create repository", "error", err)
	}

	notif := notifier.NewKafkaNotifier(delayedCtx, delayedWg, logger, cfg.Kafka)

	engine := policy.NewEngine(logger, roles.DefaultCatalog(), repo, notif)

	service.RunServices(ctx, logger, wg, cfg, engine, repo)

	<-ctx.Done()
	wg.Wait()
	logger.Info("shutting down")

	logger.Info("shutting down delayed services")
	delayedCancel()
	delayedWg.Wait()
}
