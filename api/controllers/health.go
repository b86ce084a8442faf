package controllers

import (
	"context"
	"net/http"

	"github.com/sportshoplabs/sportshop-backend/api/responses"
	"github.com/sportshoplabs/sportshop-backend/pkg/config"
	pkgerrors "github.com/sportshoplabs/sportshop-backend/pkg/errors"
	"github.com/sportshoplabs/sportshop-backend/pkg/logger"
)

// Pinger is any backing dependency that can report liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-SportShop-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when every configured dependency answers.
func HealthReady(cfg *config.Config, logg *logger.Logger, deps map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-SportShop-Env", cfg.App.Env)
		for name, dep := range deps {
			if dep == nil {
				continue
			}
			if err := dep.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, name+" unavailable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}

// Status is the public API liveness probe used by the storefront.
func Status() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteMessage(w, http.StatusOK, "API is operational", map[string]string{"status": "ok"})
	}
}
