// Package server exposes the transfer graph over HTTP.
//
// The server serves the same data the native viewer shows: GET / renders
// the self-contained interactive page, /api/graph returns the laid-out
// graph document as JSON, and /api/score returns the credit estimate with
// its breakdown. All endpoints take a ?wallet= query parameter.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/walletscope/walletscope/pkg/errors"
	"github.com/walletscope/walletscope/pkg/export"
	"github.com/walletscope/walletscope/pkg/layout"
	"github.com/walletscope/walletscope/pkg/model"
	"github.com/walletscope/walletscope/pkg/score"
	"github.com/walletscope/walletscope/pkg/solana"
)

// Fetcher supplies transfer records for a wallet. *solana.Client satisfies
// it; tests substitute canned data.
type Fetcher interface {
	FetchTransfers(ctx context.Context, wallet string, limit int) ([]model.TransferRecord, error)
}

// Options configures a Server.
type Options struct {
	Fetcher Fetcher
	Limit   int            // signatures fetched per wallet
	Layout  layout.Options // layout parameters shared by all endpoints
	Logger  *log.Logger
}

// Server handles the HTTP API.
type Server struct {
	fetcher Fetcher
	limit   int
	layout  layout.Options
	logger  *log.Logger
}

// New creates a Server. A nil logger falls back to log.Default().
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = solana.DefaultLimit
	}
	return &Server{
		fetcher: opts.Fetcher,
		limit:   limit,
		layout:  opts.Layout,
		logger:  logger,
	}
}

// Router builds the chi router with all routes attached.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", s.handleIndex)
	r.Get("/api/graph", s.handleGraph)
	r.Get("/api/score", s.handleScore)
	r.Get("/healthz", s.handleHealth)
	return r
}

// ListenAndServe runs the server until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	s.logger.Info("listening", "addr", addr)
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	doc, err := s.document(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	page, err := export.HTML(doc, "")
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	doc, err := s.document(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	wallet := r.URL.Query().Get("wallet")
	if err := solana.ValidateAddress(wallet); err != nil {
		s.writeError(w, err)
		return
	}

	records, err := s.fetcher.FetchTransfers(r.Context(), wallet, s.limit)
	if err != nil {
		s.writeError(w, err)
		return
	}

	breakdown := score.Explain(records, time.Now())
	s.writeJSON(w, http.StatusOK, map[string]any{
		"wallet": wallet,
		"score":  breakdown,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) document(r *http.Request) (*export.Document, error) {
	wallet := r.URL.Query().Get("wallet")
	if err := solana.ValidateAddress(wallet); err != nil {
		return nil, err
	}

	records, err := s.fetcher.FetchTransfers(r.Context(), wallet, s.limit)
	if err != nil {
		return nil, err
	}

	m := model.Build(records)
	positions := layout.Compute(m, s.layout)
	total := score.Estimate(records)
	return export.NewDocument(wallet, m, positions, total), nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidAddress, errors.ErrCodeInvalidInput:
		status = http.StatusBadRequest
	case errors.ErrCodeWalletNotFound, errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeNetwork, errors.ErrCodeTimeout:
		status = http.StatusBadGateway
	case errors.ErrCodeRateLimited:
		status = http.StatusTooManyRequests
	}

	s.logger.Error("request failed", "status", status, "err", err)
	s.writeJSON(w, status, map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(errors.GetCode(err)),
	})
}
