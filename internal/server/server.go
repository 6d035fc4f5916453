/*
Package server exposes the game-hub HTTP API: catalog browsing and
search, the mock auth workflow, and the leaderboard views. Handlers
mirror the original site's /api routes and response shapes.
*/
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/dapsigames/game-hub/internal/account"
	"github.com/dapsigames/game-hub/internal/catalog"
	"github.com/dapsigames/game-hub/internal/prefs"
	"github.com/dapsigames/game-hub/internal/search"
)

// Server routes API requests to the catalog, search, account, and
// leaderboard layers.
type Server struct {
	catalog  *catalog.Catalog
	engine   *search.Engine
	indexer  *search.Indexer
	prefs    *prefs.Manager
	accounts account.Service
	board    *account.Leaderboard
	secret   []byte
	limiter  *RateLimiter
	log      *zap.Logger
	mux      *http.ServeMux
}

// New wires the server. secret verifies session tokens on score updates.
func New(c *catalog.Catalog, engine *search.Engine, indexer *search.Indexer,
	manager *prefs.Manager, accounts account.Service, board *account.Leaderboard,
	secret []byte, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		catalog:  c,
		engine:   engine,
		indexer:  indexer,
		prefs:    manager,
		accounts: accounts,
		board:    board,
		secret:   secret,
		limiter:  NewRateLimiter(5, 15*time.Minute),
		log:      log,
		mux:      http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /healthz", s.handleHealth)

	s.mux.HandleFunc("GET /api/games", s.handleListGames)
	s.mux.HandleFunc("GET /api/games/{id}", s.handleGetGame)
	s.mux.HandleFunc("GET /api/search", s.handleSearch)
	s.mux.HandleFunc("GET /api/suggest", s.handleSuggest)

	s.mux.Handle("POST /api/auth/login", s.rateLimited(s.handleLogin))
	s.mux.Handle("POST /api/auth/register", s.rateLimited(s.handleRegister))
	s.mux.HandleFunc("POST /api/auth/logout", s.handleLogout)
	s.mux.HandleFunc("POST /api/auth/update-score", s.handleUpdateScore)

	s.mux.HandleFunc("GET /api/favorites", s.handleListFavorites)
	s.mux.HandleFunc("POST /api/favorites/{id}", s.handleAddFavorite)
	s.mux.HandleFunc("DELETE /api/favorites/{id}", s.handleRemoveFavorite)

	s.mux.HandleFunc("GET /api/recent", s.handleListRecent)
	s.mux.HandleFunc("POST /api/recent/{id}", s.handleAddRecent)
	s.mux.HandleFunc("DELETE /api/recent", s.handleClearRecent)

	s.mux.HandleFunc("GET /api/preferences", s.handleGetPreferences)
	s.mux.HandleFunc("PATCH /api/preferences", s.handleUpdatePreferences)

	s.mux.HandleFunc("GET /api/leaderboard/global", s.handleGlobalLeaderboard)
	s.mux.HandleFunc("GET /api/leaderboard/game/{id}", s.handleGameLeaderboard)
}

// Handler returns the full middleware-wrapped handler.
func (s *Server) Handler() http.Handler {
	return s.withLogging(s.mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError responds with the original site's {"message": ...} shape.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
