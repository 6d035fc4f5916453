package server

import (
	"net/http"
	"strconv"
)

const defaultLeaderboardLimit = 10

func (s *Server) handleGlobalLeaderboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.board.Global(leaderboardLimit(r)))
}

func (s *Server) handleGameLeaderboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.board.ForGame(r.PathValue("id"), leaderboardLimit(r)))
}

func leaderboardLimit(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		return defaultLeaderboardLimit
	}
	return limit
}
