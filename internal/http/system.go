package http

import (
	"net/http"
	"time"

	"github.com/agrisense/agrisense/internal/store"
	"github.com/agrisense/agrisense/pkg/httpx"
)

// LivezHandler reports process liveness and uptime.
type LivezHandler struct {
	StartTime time.Time
}

type livezResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

// ServeHTTP godoc
//
//	@Summary	Liveness probe
//	@Tags		System
//	@Produce	json
//	@Success	200	{object}	livezResponse
//	@Router		/livez [get]
func (h *LivezHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, r, http.StatusOK, livezResponse{
		Status: "ok",
		Uptime: time.Since(h.StartTime).Round(time.Second).String(),
	})
}

// ReadyzHandler reports readiness by pinging the store.
type ReadyzHandler struct {
	Store store.Store
}

type readyzResponse struct {
	Status string `json:"status"`
}

// ServeHTTP godoc
//
//	@Summary	Readiness probe
//	@Tags		System
//	@Produce	json
//	@Success	200	{object}	readyzResponse
//	@Failure	503	{object}	httpx.ErrorResponse
//	@Router		/readyz [get]
func (h *ReadyzHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Ping(r.Context()); err != nil {
		httpx.WriteError(w, r, http.StatusServiceUnavailable, "Store unavailable")
		return
	}
	httpx.WriteJSON(w, r, http.StatusOK, readyzResponse{Status: "ok"})
}
