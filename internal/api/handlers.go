package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vovakirdan/flappy-gargoyle/internal/games/gargoyle"
	"github.com/vovakirdan/flappy-gargoyle/internal/rewards"
	"github.com/vovakirdan/flappy-gargoyle/internal/share"
	"github.com/vovakirdan/flappy-gargoyle/internal/storage"
)

// HealthResponse reports liveness.
type HealthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

// ProgressResponse is a wallet's ledger for today.
type ProgressResponse struct {
	rewards.Progress
	DailyCap  int `json:"daily_cap"`
	Remaining int `json:"remaining"`
}

// ScoresResponse lists top scores with aggregate stats.
type ScoresResponse struct {
	Game   string               `json:"game"`
	Scores []storage.ScoreEntry `json:"scores"`
	Stats  *storage.GameStats   `json:"stats,omitempty"`
}

// ShareResponse carries a compose link.
type ShareResponse struct {
	Score int    `json:"score"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Uptime: time.Since(s.started).Round(time.Second).String(),
	})
}

func (s *Server) progressResponse(p rewards.Progress) ProgressResponse {
	return ProgressResponse{
		Progress:  p,
		DailyCap:  s.tracker.DailyCap(),
		Remaining: p.Remaining(s.tracker.DailyCap()),
	}
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	p, err := s.tracker.Today(r.Context(), chi.URLParam(r, "wallet"))
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, ErrTypeInternal, "", err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.progressResponse(p))
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	p, err := s.tracker.Reset(r.Context(), chi.URLParam(r, "wallet"))
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, ErrTypeInternal, "", err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.progressResponse(p))
}

func (s *Server) handleClaim(w http.ResponseWriter, r *http.Request) {
	c, err := s.tracker.Claim(r.Context(), chi.URLParam(r, "wallet"))
	if errors.Is(err, rewards.ErrNothingToClaim) {
		s.writeError(w, r, http.StatusConflict, ErrTypeConflict, "no unclaimed coins available", nil)
		return
	}
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, ErrTypeInternal, "", err)
		return
	}
	s.writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleListClaims(w http.ResponseWriter, r *http.Request) {
	limit, ok := s.intParam(w, r, "limit", 50)
	if !ok {
		return
	}
	claims, err := s.tracker.Claims(r.Context(), chi.URLParam(r, "wallet"), limit)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, ErrTypeInternal, "", err)
		return
	}
	if claims == nil {
		claims = []rewards.Claim{}
	}
	s.writeJSON(w, http.StatusOK, claims)
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	if s.scores == nil {
		s.writeError(w, r, http.StatusServiceUnavailable, ErrTypeUnavailable, "score storage is not configured", nil)
		return
	}
	game := r.URL.Query().Get("game")
	if game == "" {
		game = gargoyle.GameID
	}
	limit, ok := s.intParam(w, r, "limit", 10)
	if !ok {
		return
	}

	entries, err := s.scores.TopScores(game, limit)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, ErrTypeInternal, "", err)
		return
	}
	stats, err := s.scores.GetGameStats(game)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, ErrTypeInternal, "", err)
		return
	}
	if entries == nil {
		entries = []storage.ScoreEntry{}
	}
	s.writeJSON(w, http.StatusOK, ScoresResponse{Game: game, Scores: entries, Stats: stats})
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	score, ok := s.intParam(w, r, "score", -1)
	if !ok {
		return
	}
	if score < 0 {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeValidation, "score is required and must not be negative", nil)
		return
	}
	embed := r.URL.Query().Get("embed")
	if embed == "" {
		embed = s.embedURL
	}
	s.writeJSON(w, http.StatusOK, ShareResponse{
		Score: score,
		Text:  share.Text(score),
		URL:   share.ComposeURL(score, embed),
	})
}

// intParam reads an optional integer query parameter. On a malformed value
// it writes a validation error and reports false.
func (s *Server) intParam(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeValidation, name+" must be an integer", nil)
		return 0, false
	}
	return v, true
}
