package server

import (
	"encoding/json"
	"net/http"

	"github.com/dapsigames/game-hub/internal/catalog"
	"github.com/dapsigames/game-hub/internal/prefs"
)

func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	favorites := s.prefs.Favorites()
	if favorites == nil {
		favorites = []catalog.Tool{}
	}
	writeJSON(w, http.StatusOK, favorites)
}

func (s *Server) handleAddFavorite(w http.ResponseWriter, r *http.Request) {
	tool, ok := s.catalog.ByID(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Game not found")
		return
	}
	s.prefs.AddFavorite(tool)
	writeJSON(w, http.StatusOK, s.prefs.Favorites())
}

func (s *Server) handleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	s.prefs.RemoveFavorite(r.PathValue("id"))
	favorites := s.prefs.Favorites()
	if favorites == nil {
		favorites = []catalog.Tool{}
	}
	writeJSON(w, http.StatusOK, favorites)
}

func (s *Server) handleListRecent(w http.ResponseWriter, r *http.Request) {
	recent := s.prefs.Recent()
	if recent == nil {
		recent = []prefs.RecentTool{}
	}
	writeJSON(w, http.StatusOK, recent)
}

// handleAddRecent records a game visit.
func (s *Server) handleAddRecent(w http.ResponseWriter, r *http.Request) {
	tool, ok := s.catalog.ByID(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Game not found")
		return
	}
	s.prefs.AddRecent(tool)
	writeJSON(w, http.StatusOK, s.prefs.Recent())
}

func (s *Server) handleClearRecent(w http.ResponseWriter, r *http.Request) {
	s.prefs.ClearRecent()
	writeJSON(w, http.StatusOK, []prefs.RecentTool{})
}

func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.prefs.Preferences())
}

// preferencesPatch mirrors prefs.PreferencesPatch with JSON tags so
// absent fields stay nil and leave the stored value untouched.
type preferencesPatch struct {
	PreferredTheme  *string `json:"preferredTheme"`
	ShowRecentTools *bool   `json:"showRecentTools"`
	MaxRecentTools  *int    `json:"maxRecentTools"`
}

func (s *Server) handleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var patch preferencesPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.prefs.UpdatePreferences(prefs.PreferencesPatch{
		PreferredTheme:  patch.PreferredTheme,
		ShowRecentTools: patch.ShowRecentTools,
		MaxRecentTools:  patch.MaxRecentTools,
	})
	writeJSON(w, http.StatusOK, s.prefs.Preferences())
}
