package account

import (
	"hash/fnv"
	"sort"

	"go.uber.org/zap"

	"github.com/dapsigames/game-hub/internal/store"
)

// LeaderboardEntry is one ranked row.
type LeaderboardEntry struct {
	ID           string  `json:"id"`
	Username     string  `json:"username"`
	TotalScore   int     `json:"totalScore"`
	GamesPlayed  int     `json:"gamesPlayed"`
	AverageScore float64 `json:"averageScore"`
	Rank         int     `json:"rank"`
	Avatar       string  `json:"avatar,omitempty"`
}

// seedEntries keeps the leaderboard renderable before anyone registers.
// Fabricated demo data, like the rest of the mock.
var seedEntries = []LeaderboardEntry{
	{ID: "seed-1", Username: "MathWhiz2024", TotalScore: 15420, GamesPlayed: 203},
	{ID: "seed-2", Username: "BrainStorm", TotalScore: 12880, GamesPlayed: 175},
	{ID: "seed-3", Username: "PuzzleQueen", TotalScore: 11350, GamesPlayed: 142},
	{ID: "seed-4", Username: "LogicLord", TotalScore: 9870, GamesPlayed: 131},
	{ID: "seed-5", Username: "WordSmith", TotalScore: 8420, GamesPlayed: 118},
	{ID: "seed-6", Username: "MemoryMaster", TotalScore: 7150, GamesPlayed: 96},
	{ID: "seed-7", Username: "ScienceStar", TotalScore: 5930, GamesPlayed: 84},
	{ID: "seed-8", Username: "QuizKid", TotalScore: 4510, GamesPlayed: 67},
}

// Leaderboard produces ranked score views from the local user table
// plus the fixed seed entries.
type Leaderboard struct {
	store *store.Store
	log   *zap.Logger
}

// NewLeaderboard wires a leaderboard over the given store.
func NewLeaderboard(s *store.Store, log *zap.Logger) *Leaderboard {
	if log == nil {
		log = zap.NewNop()
	}
	return &Leaderboard{store: s, log: log}
}

// Global returns the top entries across all games, ranked by total
// score descending. Registered users are merged with the seeds.
func (l *Leaderboard) Global(limit int) []LeaderboardEntry {
	entries := append([]LeaderboardEntry(nil), seedEntries...)

	var users []storedUser
	l.store.ReadJSON(store.KeyUserTable, &users)
	for _, u := range users {
		entries = append(entries, LeaderboardEntry{
			ID:          u.ID,
			Username:    u.Username,
			TotalScore:  u.TotalScore,
			GamesPlayed: u.GamesPlayed,
			Avatar:      u.Avatar,
		})
	}

	return rank(entries, limit)
}

// ForGame returns a per-game view. Scores are derived deterministically
// from the global totals so the same game always shows the same board;
// there is no real per-game score storage behind the mock.
func (l *Leaderboard) ForGame(gameID string, limit int) []LeaderboardEntry {
	entries := l.Global(0)
	for i := range entries {
		entries[i].TotalScore = perGameScore(gameID, entries[i].ID, entries[i].TotalScore)
	}
	return rank(entries, limit)
}

// rank sorts by score descending, assigns dense ranks, derives average
// scores, and truncates. limit <= 0 means no truncation.
func rank(entries []LeaderboardEntry, limit int) []LeaderboardEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalScore > entries[j].TotalScore
	})
	for i := range entries {
		entries[i].Rank = i + 1
		if entries[i].GamesPlayed > 0 {
			entries[i].AverageScore = float64(entries[i].TotalScore) / float64(entries[i].GamesPlayed)
		}
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

func perGameScore(gameID, userID string, total int) int {
	h := fnv.New32a()
	h.Write([]byte(gameID))
	h.Write([]byte(userID))
	// Keep a stable fraction of the global total per game.
	return total * int(h.Sum32()%60+20) / 100
}
