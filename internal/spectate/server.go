package spectate

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MJE43/the-floor-go/internal/session"
	"github.com/MJE43/the-floor-go/internal/store"
)

// SnapshotFunc returns the current session state. The server never
// touches the game core directly; the bound app hands it a safe,
// mutex-guarded reader.
type SnapshotFunc func() session.Snapshot

// Server runs a read-only local HTTP API so a second display (or a
// stream overlay) can mirror the game without touching the window.
type Server struct {
	snapshot   SnapshotFunc
	db         store.DB
	token      string
	addr       string // e.g. "127.0.0.1:17889"
	httpServer *http.Server
}

// New creates a spectate server bound to loopback at the given port.
// token may be empty to disable token checks. db may be nil to
// disable the matches endpoint.
func New(snapshot SnapshotFunc, db store.DB, port int, token string) *Server {
	if port <= 0 {
		port = 17889
	}
	return &Server{
		snapshot: snapshot,
		db:       db,
		token:    token,
		addr:     fmt.Sprintf("127.0.0.1:%d", port),
	}
}

// Routes sets up the HTTP routes.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))
	r.Use(s.tokenCheck)

	r.Get("/spectate/snapshot", s.handleSnapshot)
	r.Get("/spectate/matches", s.handleMatches)
	r.Get("/health", s.handleHealth)

	return r
}

// Start begins listening in a goroutine. It returns when the socket is
// bound, so a port conflict surfaces at startup rather than on the
// first request.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         s.addr,
		Handler:      s.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	go func() {
		_ = s.httpServer.Serve(ln)
	}()
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Addr returns the address the server binds to.
func (s *Server) Addr() string { return s.addr }

func (s *Server) tokenCheck(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.token != "" && r.Header.Get("X-Spectate-Token") != s.token {
			writeJSON(w, http.StatusUnauthorized, errObj("UNAUTHORIZED", "missing or invalid X-Spectate-Token"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GET /spectate/snapshot
func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshot())
}

// GET /spectate/matches?category=&page=&per_page=
func (s *Server) handleMatches(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		writeJSON(w, http.StatusServiceUnavailable, errObj("NO_HISTORY", "match history is disabled"))
		return
	}

	list, err := s.db.ListMatches(store.MatchesQuery{
		Category: r.URL.Query().Get("category"),
		Page:     qInt(r, "page", 1),
		PerPage:  clampInt(qInt(r, "per_page", 50), 1, 500),
	})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errObj("SERVER_ERROR", "failed to list matches"))
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func errObj(code, msg string) map[string]any {
	return map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": msg,
		},
	}
}

func qInt(r *http.Request, key string, def int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
