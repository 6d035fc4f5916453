package server

import (
	"net/http"
	"strconv"

	"github.com/dapsigames/game-hub/internal/catalog"
	"github.com/dapsigames/game-hub/internal/search"
)

// handleListGames serves GET /api/games?search=&category=&sort=.
// An unknown category is a normal "no results" state, never an error.
func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	cat, err := catalog.ParseCategory(q.Get("category"))
	if err != nil {
		writeJSON(w, http.StatusOK, []catalog.Tool{})
		return
	}

	tools := s.engine.SearchAndFilter(q.Get("search"), cat)
	if sortBy := q.Get("sort"); sortBy != "" {
		tools = search.Sort(tools, search.SortBy(sortBy))
	}
	if tools == nil {
		tools = []catalog.Tool{}
	}
	writeJSON(w, http.StatusOK, tools)
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	tool, ok := s.catalog.ByID(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Game not found")
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

// handleSuggest serves GET /api/suggest?q=&limit=: typo-tolerant fuzzy
// matches for type-ahead suggestion lists.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, _ := strconv.Atoi(q.Get("limit"))
	tools := s.engine.SearchRanked(q.Get("q"), limit)
	if tools == nil {
		tools = []catalog.Tool{}
	}
	writeJSON(w, http.StatusOK, tools)
}

// handleSearch serves GET /api/search?q=&category=&limit= from the
// ranked full-text index.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := q.Get("q")
	if query == "" {
		writeJSON(w, http.StatusOK, []search.Result{})
		return
	}

	cat, err := catalog.ParseCategory(q.Get("category"))
	if err != nil {
		writeJSON(w, http.StatusOK, []search.Result{})
		return
	}

	limit, _ := strconv.Atoi(q.Get("limit"))
	results, err := s.indexer.Search(query, cat, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Search failed")
		return
	}
	if results == nil {
		results = []search.Result{}
	}
	writeJSON(w, http.StatusOK, results)
}
