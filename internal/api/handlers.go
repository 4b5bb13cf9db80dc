package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abstractlab/yayi/internal/commentary"
	"github.com/abstractlab/yayi/internal/flow"
	"github.com/abstractlab/yayi/internal/quiz"
	"github.com/abstractlab/yayi/internal/scoring"
)

const maxBodyBytes = 64 << 10

// CatalogResponse is the body of GET /api/v1/catalog/{mode}.
type CatalogResponse struct {
	Mode         quiz.Mode        `json:"mode"`
	Title        string           `json:"title"`
	Questions    []quiz.Question  `json:"questions"`
	Dimensions   []quiz.Dimension `json:"dimensions,omitempty"`
	LikertLabels []string         `json:"likertLabels,omitempty"`
}

// ScoreRequest is the body of POST /api/v1/score.
type ScoreRequest struct {
	Mode    quiz.Mode    `json:"mode"`
	Answers quiz.Answers `json:"answers"`
}

// ScoreResponse is the body returned by POST /api/v1/score.
type ScoreResponse struct {
	Mode             quiz.Mode            `json:"mode"`
	OverallScore     int                  `json:"overallScore"`
	FactorScores     map[string]float64   `json:"factorScores"`
	Radar            []scoring.RadarPoint `json:"radar"`
	Commentary       string               `json:"commentary"`
	CommentarySource commentary.Source    `json:"commentarySource"`
}

func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func CatalogHandler(c *quiz.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode, err := quiz.ParseMode(chi.URLParam(r, "mode"))
		if err != nil {
			respondError(w, http.StatusBadRequest, err)
			return
		}

		resp := CatalogResponse{
			Mode:      mode,
			Title:     mode.DisplayName(),
			Questions: c.Questions(mode),
		}
		if mode == quiz.ModeDetailed {
			resp.Dimensions = c.Dimensions
			resp.LikertLabels = quiz.LikertLabels[:]
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// ScoreHandler scores a complete answer set and attaches commentary.
// Answer values are not range-checked; the scoring engine tolerates them.
func ScoreHandler(ev *flow.Evaluator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ScoreRequest
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				respondError(w, http.StatusRequestEntityTooLarge, err)
				return
			}
			respondError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
			return
		}

		mode, err := quiz.ParseMode(string(req.Mode))
		if err != nil {
			respondError(w, http.StatusBadRequest, err)
			return
		}
		if req.Answers == nil {
			req.Answers = quiz.Answers{}
		}

		res := ev.Evaluate(r.Context(), mode, req.Answers)
		respondJSON(w, http.StatusOK, NewScoreResponse(res))
	}
}

// NewScoreResponse flattens an evaluation result into the wire shape.
func NewScoreResponse(res flow.Result) ScoreResponse {
	return ScoreResponse{
		Mode:             res.Mode,
		OverallScore:     res.Scores.Overall,
		FactorScores:     res.Scores.FactorMap(),
		Radar:            res.Radar(),
		Commentary:       res.Commentary.Text,
		CommentarySource: res.Commentary.Source,
	}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func respondError(w http.ResponseWriter, status int, err error) {
	respondJSON(w, status, map[string]string{"error": err.Error()})
}
