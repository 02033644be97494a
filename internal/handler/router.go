package handler

import (
	"bufio"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/efreitasn/minibroker/internal/broadcast"
	"github.com/efreitasn/minibroker/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// NewRouter creates a chi router with all routes registered, request
// logging, CORS, and Content-Type validation middleware. Everything
// except auth and the health check requires a bearer token.
func NewRouter(
	authSvc *service.AuthService,
	marketSvc *service.MarketService,
	tradingSvc *service.TradingService,
	hub *broadcast.Hub,
	allowedOrigins []string,
	logger *slog.Logger,
) chi.Router {
	r := chi.NewRouter()

	// Global middleware.
	r.Use(requestLogging(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(contentTypeJSON)

	// Create handlers.
	authH := NewAuthHandler(authSvc)
	marketH := NewMarketHandler(marketSvc)
	tradingH := NewTradingHandler(tradingSvc)
	portfolioH := NewPortfolioHandler(tradingSvc)
	streamH := NewStreamHandler(hub, allowedOrigins, logger)

	// Health check.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Auth routes.
	r.Post("/auth/login", authH.Login)
	r.Post("/auth/register", authH.Register)
	r.Post("/auth/logout", authH.Logout)

	// Authenticated routes.
	r.Group(func(r chi.Router) {
		r.Use(RequireAuth(authSvc))

		r.Get("/stocks", marketH.ListAll)
		r.Get("/stocks/movers", marketH.Movers)
		r.Get("/stocks/{market}", marketH.ListByMarket)

		r.Post("/trading/buy", tradingH.Buy)
		r.Post("/trading/sell", tradingH.Sell)
		r.Get("/trading/limits", tradingH.Limits)
		r.Get("/trading/history", tradingH.History)

		r.Get("/portfolio", portfolioH.Portfolio)
		r.Get("/portfolio/balance", portfolioH.Balance)

		r.Get("/user/profile", authH.Profile)

		r.Get("/ws", streamH.Serve)
	})

	return r
}

// requestLogging returns middleware that logs each request's method, path,
// status code, and duration using slog.
func requestLogging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)
			logger.Info("request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

// Hijack passes hijacking through to the underlying writer; the websocket
// upgrade on /ws needs it.
func (w *statusWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	return hj.Hijack()
}

// contentTypeJSON is middleware that validates Content-Type for POST, PUT,
// and PATCH requests. If the Content-Type header doesn't start with
// "application/json", it returns 400 Bad Request before the handler runs.
func contentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			ct := r.Header.Get("Content-Type")
			if ct == "" || !strings.HasPrefix(ct, "application/json") {
				WriteError(w, http.StatusBadRequest, "invalid_request",
					"Content-Type must be application/json")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
