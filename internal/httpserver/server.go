// internal/httpserver/server.go
//
// HTTP server wiring for the Boggle backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/dictionary".
//   - Board endpoints: mounted under /boards (generate, daily, solve, check, hint).
//
// Notes:
//   - The server keeps no per-player state. Boards travel as signed tickets
//     (see ticket.go) and the client sends its found words with each request.
//   - Solved word lists are cached by board key in a store.Cache.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/boggle/internal/dict"
	"github.com/robalobadob/boggle/internal/generator"
	"github.com/robalobadob/boggle/internal/hint"
	"github.com/robalobadob/boggle/internal/store"
)

const (
	defaultOrigin    = "http://localhost:5173"
	defaultTicketTTL = 24 * time.Hour
	maxBodyBytes     = 64 << 10
)

// Options carries the server's collaborators and settings.
type Options struct {
	Index     *dict.Index
	Generator *generator.Generator
	Hints     *hint.Engine
	Cache     store.Cache // nil uses an in-memory cache

	ClientOrigin  string        // CORS origin; defaults to http://localhost:5173
	TicketSecret  []byte        // HS256 key for board tickets
	TicketTTL     time.Duration // defaults to 24h
	DailySalt     string
	HintThreshold *float64         // starting hint threshold; nil uses hint.DefaultThreshold
	Now           func() time.Time // clock for tickets and the daily board
}

// Server bundles the router and the board services behind it.
type Server struct {
	r             *chi.Mux
	opts          Options
	hintThreshold float64
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	if opts.Cache == nil {
		opts.Cache = store.NewMemoryCache(0)
	}
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = defaultOrigin
	}
	if opts.TicketTTL <= 0 {
		opts.TicketTTL = defaultTicketTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if len(opts.TicketSecret) == 0 {
		log.Warn().Msg("ticket secret not set, using development secret")
		opts.TicketSecret = []byte("dev_secret_change_me")
	}
	s := &Server{r: chi.NewRouter(), opts: opts, hintThreshold: hint.DefaultThreshold}
	if opts.HintThreshold != nil {
		s.hintThreshold = *opts.HintThreshold
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"boggle-go","endpoints":["/health","POST /boards","GET /boards/daily","POST /boards/solve","POST /boards/check","POST /boards/hint"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/dictionary", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"words":    s.opts.Index.Len(),
			"source":   s.opts.Index.Source(),
			"degraded": s.opts.Index.Degraded(),
		})
	})

	s.r.Route("/boards", func(r chi.Router) {
		r.Post("/", s.handleNewBoard)
		r.Post("/solve", s.handleSolve)
		r.Post("/check", s.handleCheck)
		r.Post("/hint", s.handleHint)
		s.mountDaily(r)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	hs := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info().Msg("shutting down http server")
		if err := hs.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors allows a single origin, with credentials.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	body := map[string]string{"error": code}
	if detail != "" {
		body["detail"] = detail
	}
	writeJSON(w, status, body)
}

// decode reads a bounded JSON body into v. An empty body leaves v untouched.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
