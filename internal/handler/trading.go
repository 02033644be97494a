package handler

import (
	"net/http"
	"strconv"

	"github.com/efreitasn/minibroker/internal/domain"
	"github.com/efreitasn/minibroker/internal/service"
)

// TradingHandler handles HTTP requests for trade execution, limits, and
// history endpoints.
type TradingHandler struct {
	tradingSvc *service.TradingService
}

// NewTradingHandler creates a new TradingHandler.
func NewTradingHandler(tradingSvc *service.TradingService) *TradingHandler {
	return &TradingHandler{tradingSvc: tradingSvc}
}

// tradeRequest is the JSON request body for POST /trading/buy and
// POST /trading/sell.
type tradeRequest struct {
	StockID  string `json:"stockId"`
	Quantity int64  `json:"quantity"`
}

// tradeResponse is the JSON response for a successful execution.
type tradeResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Trade   *domain.TradeRecord `json:"trade"`
}

// Buy handles POST /trading/buy.
func (h *TradingHandler) Buy(w http.ResponseWriter, r *http.Request) {
	var req tradeRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	result, err := h.tradingSvc.Buy(r.Context(), req.StockID, req.Quantity)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, tradeResponse{
		Success: true,
		Message: result.Message,
		Trade:   result.Trade,
	})
}

// Sell handles POST /trading/sell.
func (h *TradingHandler) Sell(w http.ResponseWriter, r *http.Request) {
	var req tradeRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	result, err := h.tradingSvc.Sell(r.Context(), req.StockID, req.Quantity)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, tradeResponse{
		Success: true,
		Message: result.Message,
		Trade:   result.Trade,
	})
}

// Limits handles GET /trading/limits.
func (h *TradingHandler) Limits(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.tradingSvc.Limits())
}

// History handles GET /trading/history with page and pageSize query
// parameters.
func (h *TradingHandler) History(w http.ResponseWriter, r *http.Request) {
	page, ok := queryInt(w, r, "page")
	if !ok {
		return
	}
	pageSize, ok := queryInt(w, r, "pageSize")
	if !ok {
		return
	}

	resp, err := h.tradingSvc.History(page, pageSize)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, resp)
}

// queryInt parses an optional integer query parameter, writing a 400
// response and returning ok=false when it is malformed. Absent parameters
// yield 0.
func queryInt(w http.ResponseWriter, r *http.Request, key string) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", key+" must be an integer")
		return 0, false
	}
	return n, true
}
