package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/mverdier/foyer/internal/gamify"
	"github.com/mverdier/foyer/internal/model"
)

type GamifyHandler struct {
	engine *gamify.Engine
	logger *slog.Logger
	now    func() time.Time
}

func NewGamifyHandler(engine *gamify.Engine, logger *slog.Logger) *GamifyHandler {
	return &GamifyHandler{engine: engine, logger: logger, now: time.Now}
}

type actorRequest struct {
	Actor model.Actor `json:"actor"`
}

type choreRequest struct {
	Title  string `json:"title"`
	Points int    `json:"points"`
}

type rewardRequest struct {
	Title     string `json:"title"`
	Threshold int    `json:"threshold"`
}

type resetRequest struct {
	Confirm bool `json:"confirm"`
}

// State answers the full gamification state: points, reset anchor,
// achievements, and chore history.
func (h *GamifyHandler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.engine.State())
}

func (h *GamifyHandler) ListChores(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.engine.Chores())
}

func (h *GamifyHandler) CreateChore(w http.ResponseWriter, r *http.Request) {
	var req choreRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON")
		return
	}
	chore, res := h.engine.AddChore(req.Title, req.Points)
	if res.Applied {
		writeJSON(w, http.StatusCreated, chore)
		return
	}
	writeResult(w, res)
}

func (h *GamifyHandler) DeleteChore(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.engine.RemoveChore(r.PathValue("id")))
}

// CompleteChore credits the chore's points to the acting partner. A chore
// can be completed once per partner per calendar day.
func (h *GamifyHandler) CompleteChore(w http.ResponseWriter, r *http.Request) {
	var req actorRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON")
		return
	}
	entry, res := h.engine.CompleteChore(r.PathValue("id"), req.Actor, h.now())
	writeResultWith(w, res, entry)
}

func (h *GamifyHandler) ListRewards(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.engine.Rewards())
}

func (h *GamifyHandler) CreateReward(w http.ResponseWriter, r *http.Request) {
	var req rewardRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON")
		return
	}
	reward, res := h.engine.AddReward(req.Title, req.Threshold)
	if res.Applied {
		writeJSON(w, http.StatusCreated, reward)
		return
	}
	writeResult(w, res)
}

func (h *GamifyHandler) DeleteReward(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.engine.RemoveReward(r.PathValue("id")))
}

// ClaimReward spends the acting partner's points against the reward's
// threshold and records the achievement.
func (h *GamifyHandler) ClaimReward(w http.ResponseWriter, r *http.Request) {
	var req actorRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON")
		return
	}
	achieved, res := h.engine.ClaimReward(r.PathValue("id"), req.Actor, h.now())
	writeResultWith(w, res, achieved)
}

func (h *GamifyHandler) DismissAchievement(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.engine.DismissAchievement(r.PathValue("id")))
}

// Reset starts a new points cycle. The request must carry confirm=true,
// there is no scheduled reset.
func (h *GamifyHandler) Reset(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON")
		return
	}
	writeResult(w, h.engine.ResetCycle(h.now(), req.Confirm))
}
