package handler

import (
	"net/http"

	"github.com/efreitasn/minibroker/internal/service"
)

// PortfolioHandler handles HTTP requests for portfolio and balance
// endpoints.
type PortfolioHandler struct {
	tradingSvc *service.TradingService
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(tradingSvc *service.TradingService) *PortfolioHandler {
	return &PortfolioHandler{tradingSvc: tradingSvc}
}

// Portfolio handles GET /portfolio. Aggregates are recomputed from the
// holding set and live prices on every request.
func (h *PortfolioHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.tradingSvc.Portfolio())
}

// Balance handles GET /portfolio/balance.
func (h *PortfolioHandler) Balance(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.tradingSvc.Balance())
}
