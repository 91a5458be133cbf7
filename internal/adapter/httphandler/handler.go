package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/voicecart/voicecart/internal/core/domain"
	"github.com/voicecart/voicecart/internal/core/port"
)

// GET /products (200)
// POST /voice-command JSON {"command": string} (200, 400 bad model JSON, 500)
// POST /chatbot JSON {"message": string} (200, 400, 500)
// POST /search-products JSON {"query": string} (200, 400, 500)
// GET /rag-analytics (200)
// POST /cart-monitor JSON {"cart": []} (200, 400)

type CatalogHandler struct {
	catalog port.CatalogReader
}

func RegisterCatalog(mux *http.ServeMux, catalog port.CatalogReader) {
	h := CatalogHandler{catalog}
	mux.HandleFunc("GET /products", h.GetProducts)
}

func (h CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toCatalogResponse(h.catalog.Catalog()))
}

type VoiceCommandHandler struct {
	processor port.CommandProcessor
}

func RegisterVoiceCommand(mux *http.ServeMux, processor port.CommandProcessor) {
	h := VoiceCommandHandler{processor}
	mux.HandleFunc("POST /voice-command", h.PostVoiceCommand)
}

func (h VoiceCommandHandler) PostVoiceCommand(w http.ResponseWriter, r *http.Request) {
	const op = "VoiceCommandHandler.PostVoiceCommand"
	log := slog.With("op", op)

	var req VoiceCommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON data"})
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	batch, err := h.processor.ProcessCommand(r.Context(), req.Command)
	if err != nil {
		writeModelError(w, log, err)
		return
	}

	summary := batch.Summary()
	resp := VoiceCommandResponse{
		Actions:            make([]CommandAction, 0, summary.Total),
		TotalActions:       summary.Total,
		AvailableActions:   summary.Available,
		UnavailableActions: summary.Unavailable,
	}
	for _, c := range batch.Commands {
		resp.Actions = append(resp.Actions, toCommandAction(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

type ChatbotHandler struct {
	chatter port.Chatter
}

func RegisterChatbot(mux *http.ServeMux, chatter port.Chatter) {
	h := ChatbotHandler{chatter}
	mux.HandleFunc("POST /chatbot", h.PostChatbot)
}

func (h ChatbotHandler) PostChatbot(w http.ResponseWriter, r *http.Request) {
	const op = "ChatbotHandler.PostChatbot"
	log := slog.With("op", op)

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON data"})
		log.Warn("failed to parse JSON", "err", err)
		return
	}
	if req.Message == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "no message provided"})
		return
	}

	reply, err := h.chatter.Chat(r.Context(), req.Message)
	if err != nil {
		writeModelError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, ChatResponse{Reply: reply})
}

type SearchHandler struct {
	searcher port.Searcher
}

func RegisterSearch(mux *http.ServeMux, searcher port.Searcher) {
	h := SearchHandler{searcher}
	mux.HandleFunc("POST /search-products", h.PostSearch)
}

func (h SearchHandler) PostSearch(w http.ResponseWriter, r *http.Request) {
	const op = "SearchHandler.PostSearch"
	log := slog.With("op", op)

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON data"})
		log.Warn("failed to parse JSON", "err", err)
		return
	}
	if req.Query == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "search query is required"})
		return
	}

	results, err := h.searcher.Search(r.Context(), req.Query)
	if err != nil {
		writeModelError(w, log, err)
		return
	}

	resp := SearchResponse{
		Success:      true,
		Query:        req.Query,
		Results:      make([]SearchResult, 0, len(results)),
		TotalResults: len(results),
	}
	for _, res := range results {
		resp.Results = append(resp.Results, SearchResult(res))
	}
	writeJSON(w, http.StatusOK, resp)
}

type AnalyticsHandler struct {
	analytics port.AnalyticsProvider
}

func RegisterAnalytics(mux *http.ServeMux, analytics port.AnalyticsProvider) {
	h := AnalyticsHandler{analytics}
	mux.HandleFunc("GET /rag-analytics", h.GetAnalytics)
}

func (h AnalyticsHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	stats := h.analytics.Analytics()

	resp := AnalyticsResponse{
		TotalProducts:   stats.TotalProducts,
		TotalCategories: stats.TotalCategories,
		PriceRange: AnalyticsPriceRange{
			Min:     stats.PriceRange.Min,
			Max:     stats.PriceRange.Max,
			Average: stats.PriceRange.Average,
		},
		RAGStatus: AnalyticsStatus{
			CatalogLoaded:     stats.TotalProducts > 0,
			GeminiIntegration: h.analytics.ModelReady(),
			TelemetryEnabled:  h.analytics.TelemetryEnabled(),
			Endpoints: []string{
				"/products - Get full product catalog",
				"/voice-command - Voice command extraction",
				"/chatbot - Catalog-grounded chatbot",
				"/search-products - Intelligent product search",
				"/rag-analytics - This endpoint",
				"/cart-monitor - Cart telemetry",
			},
		},
	}
	for _, cat := range stats.Categories {
		resp.Categories = append(resp.Categories, AnalyticsCategory(cat))
	}
	writeJSON(w, http.StatusOK, resp)
}

type CartMonitorHandler struct {
	monitor port.CartMonitor
}

func RegisterCartMonitor(mux *http.ServeMux, monitor port.CartMonitor) {
	h := CartMonitorHandler{monitor}
	mux.HandleFunc("POST /cart-monitor", h.PostCartMonitor)
}

func (h CartMonitorHandler) PostCartMonitor(w http.ResponseWriter, r *http.Request) {
	const op = "CartMonitorHandler.PostCartMonitor"
	log := slog.With("op", op)

	var req CartMonitorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON data"})
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	h.monitor.MonitorCart(r.Context(), toDomainSnapshot(req))

	received := req.Cart
	if received == nil {
		received = []CartLine{}
	}
	writeJSON(w, http.StatusOK, CartMonitorResponse{Success: true, Received: received})
}

// writeModelError maps pipeline failures to the HTTP contract: bad
// model JSON is a client-visible 400 carrying the raw text, everything
// else (missing key, transport, deadline) is a 500.
func writeModelError(w http.ResponseWriter, log *slog.Logger, err error) {
	var extractionErr *domain.ExtractionError
	if errors.As(err, &extractionErr) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: "could not parse model output to JSON",
			Raw:   extractionErr.Raw,
		})
		log.Warn("model output rejected", "err", err)
		return
	}

	switch {
	case errors.Is(err, domain.ErrNoAPIKey):
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "completion provider is not configured",
		})
	case errors.Is(err, domain.ErrDeadline):
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "completion provider did not respond in time",
		})
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "failed to process command",
		})
	}
	log.Error("failed to process request", "err", err)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response body", "err", err)
	}
}
