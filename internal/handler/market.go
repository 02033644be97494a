package handler

import (
	"net/http"
	"strconv"

	"github.com/efreitasn/minibroker/internal/service"
	"github.com/go-chi/chi/v5"
)

// MarketHandler handles HTTP requests for catalog endpoints.
type MarketHandler struct {
	marketSvc *service.MarketService
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(marketSvc *service.MarketService) *MarketHandler {
	return &MarketHandler{marketSvc: marketSvc}
}

// ListAll handles GET /stocks.
func (h *MarketHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.marketSvc.AllStocks())
}

// ListByMarket handles GET /stocks/{market}.
func (h *MarketHandler) ListByMarket(w http.ResponseWriter, r *http.Request) {
	stocks, err := h.marketSvc.StocksByMarket(chi.URLParam(r, "market"))
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, stocks)
}

// Movers handles GET /stocks/movers. The limit query parameter defaults
// to 5.
func (h *MarketHandler) Movers(w http.ResponseWriter, r *http.Request) {
	limit := 5
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "invalid_request", "limit must be an integer")
			return
		}
		limit = n
	}

	movers, err := h.marketSvc.TopMovers(limit)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, movers)
}
