package handler

import (
	"log/slog"
	"net/http"

	"github.com/mverdier/foyer/internal/aggregate"
	"github.com/mverdier/foyer/internal/gamify"
	"github.com/mverdier/foyer/internal/ledger"
	"github.com/mverdier/foyer/internal/model"
	"github.com/mverdier/foyer/internal/prefs"
)

type SummaryHandler struct {
	ledger *ledger.Engine
	engine *gamify.Engine
	prefs  *prefs.Store
	logger *slog.Logger
}

func NewSummaryHandler(led *ledger.Engine, engine *gamify.Engine, pr *prefs.Store, logger *slog.Logger) *SummaryHandler {
	return &SummaryHandler{ledger: led, engine: engine, prefs: pr, logger: logger}
}

type savingProgress struct {
	model.SavingGoal
	Progress float64 `json:"progress"`
}

type summaryResponse struct {
	P1Name      string                    `json:"p1Name"`
	P2Name      string                    `json:"p2Name"`
	P1Total     float64                   `json:"p1Total"`
	P2Total     float64                   `json:"p2Total"`
	P1Points    int                       `json:"p1Points"`
	P2Points    int                       `json:"p2Points"`
	PointsRatio float64                   `json:"pointsRatio"`
	Categories  []aggregate.CategoryTotal `json:"categories"`
	Savings     []savingProgress          `json:"savings"`
}

// Get assembles the dashboard figures: per-partner expense contributions,
// the points balance ratio, the per-category breakdown, and each savings
// goal's completion.
func (h *SummaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	expenses := h.ledger.Expenses()
	p := h.prefs.Get()

	goals := h.ledger.Savings()
	savings := make([]savingProgress, 0, len(goals))
	for _, g := range goals {
		savings = append(savings, savingProgress{SavingGoal: g, Progress: aggregate.SavingProgress(g)})
	}

	p1 := h.engine.Points(model.ActorP1)
	p2 := h.engine.Points(model.ActorP2)

	writeJSON(w, http.StatusOK, summaryResponse{
		P1Name:      p.P1Name,
		P2Name:      p.P2Name,
		P1Total:     aggregate.TotalContribution(expenses, model.ActorP1),
		P2Total:     aggregate.TotalContribution(expenses, model.ActorP2),
		P1Points:    p1,
		P2Points:    p2,
		PointsRatio: aggregate.PointsRatio(p1, p2),
		Categories:  aggregate.CategoryBreakdown(expenses),
		Savings:     savings,
	})
}
