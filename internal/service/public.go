package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"org-roles-service/internal/config"
	"org-roles-service/internal/policy"
	"org-roles-service/internal/repository"
	"org-roles-service/internal/roles"
)

// NewRouter builds the HTTP API. The org-scoped member routes all run
// behind actor extraction; list and delete are permission-gated in
// middleware, while role changes are authorized by the handlers themselves
// through CanChangeRole.
func NewRouter(logger *zap.SugaredLogger, engine *policy.Engine, repo repository.Repository) http.Handler {
	h := &memberHandler{
		logger: logger,
		engine: engine,
		repo:   repo,
	}

	r := chi.NewRouter()
	r.Use(requestLogger(logger))

	r.Route("/orgs/{org}/members", func(r chi.Router) {
		r.Use(extractActor)

		r.With(RequirePermission(engine, roles.PermManageUsers, PermissionOptions{})).
			Get("/", h.listMembers)

		r.Route("/{member}", func(r chi.Router) {
			r.With(RequirePermission(engine, roles.PermManageUsers, PermissionOptions{AllowSelf: true})).
				Get("/role", h.getRoleInfo)

			r.Post("/role", h.changeRole)
			r.Post("/role/preview", h.previewRoleChange)

			r.With(RequirePermission(engine, roles.PermManageUsers, PermissionOptions{})).
				Delete("/", h.removeMember)
		})
	})

	return r
}

func RunServices(ctx context.Context, logger *zap.SugaredLogger, wg *sync.WaitGroup, cfg config.Config,
	engine *policy.Engine, repo repository.Repository) {

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.HTTPPort))
	if err != nil {
		logger.Fatalw("failed to listen", "error", err)
	}

	srv := &http.Server{Handler: NewRouter(logger, engine, repo)}

	logger.Infow("listening for HTTP requests", "port", cfg.HTTPPort)

	go func() {
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalw("failed to serve", "error", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Errorw("failed to shut down http server", "error", err)
		}
	}()
}
