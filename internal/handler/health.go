package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

type pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db pinger
}

func NewHealthHandler(db pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health answers {"ok": true} whenever the process is reachable. A failing
// store ping is logged but does not change the answer.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		err := h.db.PingContext(ctx)
		if err != nil {
			slog.Warn("health check: database ping failed", "error", err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
