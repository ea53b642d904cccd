package handlers

import (
	"encoding/json"
	"log/slog"
	nethttp "net/http"

	"family-brief-service/internal/app/brief"
	"family-brief-service/internal/domain"
	"family-brief-service/internal/lists"
	"family-brief-service/internal/logging"
)

// Handler wires HTTP routes to the brief service and the list store.
type Handler struct {
	brief          *brief.Service
	lists          *lists.Store
	logger         *slog.Logger
	newsConfigured bool
}

// NewHandler constructs a Handler. newsConfigured reflects whether a news
// API key is present; without one the news endpoint short-circuits.
func NewHandler(svc *brief.Service, store *lists.Store, logger *slog.Logger, newsConfigured bool) *Handler {
	return &Handler{
		brief:          svc,
		lists:          store,
		logger:         logger,
		newsConfigured: newsConfigured,
	}
}

type weatherResponse struct {
	Available bool                  `json:"available"`
	Current   domain.CurrentSummary `json:"current"`
	Forecast  []domain.ForecastRow  `json:"forecast"`
}

type airResponse struct {
	Available bool             `json:"available"`
	Current   domain.AirReport `json:"current"`
}

type newsResponse struct {
	Configured bool             `json:"configured"`
	Available  bool             `json:"available"`
	Articles   []domain.Article `json:"articles"`
}

type sportsResponse struct {
	Teams []domain.Snapshot `json:"teams"`
}

// NotFound renders the JSON 404 the router falls back to.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed renders the JSON 405 the router falls back to.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic. The service is ready when the list
// store's data directory is reachable and seeded.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.lists != nil {
		if err := h.lists.Ensure(); err != nil {
			writeError(w, r, nethttp.StatusServiceUnavailable, "list storage unavailable", h.logger)
			return
		}
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// Weather returns the current conditions and forecast table. Upstream
// failures surface as available=false, never as a 5xx.
func (h *Handler) Weather(w nethttp.ResponseWriter, r *nethttp.Request) {
	section, ok := h.brief.Weather(r.Context())
	forecast := section.Forecast
	if forecast == nil {
		forecast = []domain.ForecastRow{}
	}
	writeJSON(w, nethttp.StatusOK, weatherResponse{
		Available: ok,
		Current:   section.Current,
		Forecast:  forecast,
	}, h.logger)
}

// AirQuality returns the current air readings.
func (h *Handler) AirQuality(w nethttp.ResponseWriter, r *nethttp.Request) {
	report, ok := h.brief.AirQuality(r.Context())
	writeJSON(w, nethttp.StatusOK, airResponse{
		Available: ok,
		Current:   report,
	}, h.logger)
}

// Headlines returns the top headlines. Without an API key the endpoint
// reports configured=false and never calls upstream.
func (h *Handler) Headlines(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.newsConfigured {
		writeJSON(w, nethttp.StatusOK, newsResponse{Articles: []domain.Article{}}, h.logger)
		return
	}
	articles, ok := h.brief.Headlines(r.Context())
	if articles == nil {
		articles = []domain.Article{}
	}
	writeJSON(w, nethttp.StatusOK, newsResponse{
		Configured: true,
		Available:  ok,
		Articles:   articles,
	}, h.logger)
}

// Sports returns one snapshot per followed team.
func (h *Handler) Sports(w nethttp.ResponseWriter, r *nethttp.Request) {
	snaps := h.brief.Sports(r.Context())
	if snaps == nil {
		snaps = []domain.Snapshot{}
	}
	writeJSON(w, nethttp.StatusOK, sportsResponse{Teams: snaps}, h.logger)
}

// GroceryList returns the stored grocery rows.
func (h *Handler) GroceryList(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.lists.LoadGrocery(), h.logger)
}

// SaveGroceryList replaces the grocery list with the submitted rows and
// responds with the cleaned rows actually persisted.
func (h *Handler) SaveGroceryList(w nethttp.ResponseWriter, r *nethttp.Request) {
	var rows []lists.GroceryItem
	if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	cleaned := lists.CleanGrocery(rows)
	if err := h.lists.SaveGrocery(cleaned); err != nil {
		logging.Error(h.logger, "failed to save grocery list", err)
		writeError(w, r, nethttp.StatusInternalServerError, "failed to save list", h.logger)
		return
	}
	if logger := loggerFromContext(r, h.logger); logger != nil {
		logger.Info("saved list", logging.FieldList, "grocery", logging.FieldCount, len(cleaned))
	}
	writeJSON(w, nethttp.StatusOK, cleaned, h.logger)
}

// TodoList returns the stored open todo rows.
func (h *Handler) TodoList(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.lists.LoadTodo(), h.logger)
}

// SaveTodoList replaces the todo list with the submitted rows. Completed
// rows are dropped before persisting.
func (h *Handler) SaveTodoList(w nethttp.ResponseWriter, r *nethttp.Request) {
	var rows []lists.TodoItem
	if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	cleaned := lists.CleanTodo(rows)
	if err := h.lists.SaveTodo(cleaned); err != nil {
		logging.Error(h.logger, "failed to save todo list", err)
		writeError(w, r, nethttp.StatusInternalServerError, "failed to save list", h.logger)
		return
	}
	if logger := loggerFromContext(r, h.logger); logger != nil {
		logger.Info("saved list", logging.FieldList, "todo", logging.FieldCount, len(cleaned))
	}
	writeJSON(w, nethttp.StatusOK, cleaned, h.logger)
}
