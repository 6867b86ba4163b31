// Package server wires the engines, persistence, and HTTP surface together.
package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/mverdier/foyer/internal/advice"
	"github.com/mverdier/foyer/internal/backup"
	"github.com/mverdier/foyer/internal/calendar"
	"github.com/mverdier/foyer/internal/gamify"
	"github.com/mverdier/foyer/internal/handler"
	"github.com/mverdier/foyer/internal/ledger"
	"github.com/mverdier/foyer/internal/middleware"
	"github.com/mverdier/foyer/internal/prefs"
	"github.com/mverdier/foyer/internal/seed"
	"github.com/mverdier/foyer/internal/snapshot"
	ws "github.com/mverdier/foyer/internal/websocket"
)

type Server struct {
	db        *sql.DB
	hub       *ws.Hub
	ledger    *ledger.Engine
	calendar  *calendar.Store
	gamify    *gamify.Engine
	prefs     *prefs.Store
	persister *snapshot.Persister

	expenseH  *handler.ExpenseHandler
	debtH     *handler.DebtHandler
	savingH   *handler.SavingHandler
	groceryH  *handler.GroceryHandler
	eventH    *handler.CalendarEventHandler
	gamifyH   *handler.GamifyHandler
	settingsH *handler.SettingsHandler
	summaryH  *handler.SummaryHandler
	adviceH   *handler.AdviceHandler
	backupH   *handler.BackupHandler

	backupManager *backup.Manager
	rateLimiter   *middleware.RateLimiter
	logger        *slog.Logger
}

// New builds the server. Engines start from the first-run defaults; any
// snapshot present in the database then replaces them collection by
// collection.
func New(db *sql.DB, adviceSvc *advice.Service, backupCfg backup.Config, logger *slog.Logger) (*Server, error) {
	hub := ws.NewHub(logger.With("component", "websocket"))

	// The persister does not exist yet when the engines are built, so the
	// notifier closes over a variable assigned below.
	var persister *snapshot.Persister
	notify := func(collection, action, id string) {
		if persister != nil {
			persister.CollectionChanged(collection)
		}
		hub.Notify(collection, action, id)
	}

	led := ledger.NewEngine(notify)
	cal := calendar.NewStore(notify)
	pr := prefs.NewStore(seed.Preferences(), notify)
	game := gamify.NewEngine(pr.Name, notify, time.Now())
	seed.Apply(led, game, time.Now())

	store := snapshot.NewSQLiteStore(db)
	loader := snapshot.NewPersister(store, led, cal, game, pr, logger.With("component", "snapshot"))
	if err := loader.LoadAll(); err != nil {
		return nil, err
	}
	persister = loader

	backupMgr := backup.NewManager(backupCfg, db, logger.With("component", "backup"), func(st backup.Status) {
		hub.Broadcast(ws.Message{
			Type:       "backup_status",
			Collection: "backup",
			Action:     string(st.State),
		})
	})

	return &Server{
		db:            db,
		hub:           hub,
		ledger:        led,
		calendar:      cal,
		gamify:        game,
		prefs:         pr,
		persister:     persister,
		expenseH:      handler.NewExpenseHandler(led, logger.With("component", "expense")),
		debtH:         handler.NewDebtHandler(led, logger.With("component", "debt")),
		savingH:       handler.NewSavingHandler(led, logger.With("component", "saving")),
		groceryH:      handler.NewGroceryHandler(led, logger.With("component", "grocery")),
		eventH:        handler.NewCalendarEventHandler(cal, logger.With("component", "calendar")),
		gamifyH:       handler.NewGamifyHandler(game, logger.With("component", "gamify")),
		settingsH:     handler.NewSettingsHandler(pr, logger.With("component", "settings")),
		summaryH:      handler.NewSummaryHandler(led, game, pr, logger.With("component", "summary")),
		adviceH:       handler.NewAdviceHandler(adviceSvc, logger.With("component", "advice")),
		backupH:       handler.NewBackupHandler(backupMgr, logger.With("component", "backup")),
		backupManager: backupMgr,
		rateLimiter:   middleware.NewRateLimiter(),
		logger:        logger,
	}, nil
}

// BackupManager returns the backup manager so main can run its schedule.
func (s *Server) BackupManager() *backup.Manager {
	return s.backupManager
}

// Shutdown flushes pending snapshot writes.
func (s *Server) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.persister.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return s.persister.SaveAll()
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.healthHandler)
	mux.HandleFunc("GET /ws", ws.Handler(s.hub))

	// Expenses
	mux.HandleFunc("GET /api/expenses", s.expenseH.List)
	mux.HandleFunc("POST /api/expenses", s.expenseH.Create)
	mux.HandleFunc("PUT /api/expenses/{id}", s.expenseH.Update)
	mux.HandleFunc("DELETE /api/expenses/{id}", s.expenseH.Delete)

	// Debts
	mux.HandleFunc("GET /api/debts", s.debtH.List)
	mux.HandleFunc("POST /api/debts", s.debtH.Create)
	mux.HandleFunc("DELETE /api/debts/{id}", s.debtH.Delete)

	// Savings goals
	mux.HandleFunc("GET /api/savings", s.savingH.List)
	mux.HandleFunc("POST /api/savings", s.savingH.Create)
	mux.HandleFunc("POST /api/savings/{id}/adjust", s.savingH.Adjust)
	mux.HandleFunc("DELETE /api/savings/{id}", s.savingH.Delete)

	// Groceries and their lists
	mux.HandleFunc("GET /api/groceries", s.groceryH.ListItems)
	mux.HandleFunc("POST /api/groceries", s.groceryH.CreateItem)
	mux.HandleFunc("PUT /api/groceries/{id}", s.groceryH.UpdateItem)
	mux.HandleFunc("POST /api/groceries/{id}/toggle", s.groceryH.ToggleBought)
	mux.HandleFunc("DELETE /api/groceries/{id}", s.groceryH.DeleteItem)
	mux.HandleFunc("GET /api/grocery-lists", s.groceryH.Lists)
	mux.HandleFunc("POST /api/grocery-lists", s.groceryH.CreateList)
	mux.HandleFunc("DELETE /api/grocery-lists/{name}", s.groceryH.DeleteList)
	mux.HandleFunc("GET /api/grocery-lists/{name}/total", s.groceryH.ListTotal)

	// Calendar
	mux.HandleFunc("GET /api/events", s.eventH.List)
	mux.HandleFunc("GET /api/events/next", s.eventH.Next)
	mux.HandleFunc("POST /api/events", s.eventH.Create)
	mux.HandleFunc("PUT /api/events/{id}", s.eventH.Update)
	mux.HandleFunc("DELETE /api/events/{id}", s.eventH.Delete)

	// Chore cycle
	mux.HandleFunc("GET /api/gamification", s.gamifyH.State)
	mux.HandleFunc("POST /api/gamification/reset", s.gamifyH.Reset)
	mux.HandleFunc("GET /api/chores", s.gamifyH.ListChores)
	mux.HandleFunc("POST /api/chores", s.gamifyH.CreateChore)
	mux.HandleFunc("DELETE /api/chores/{id}", s.gamifyH.DeleteChore)
	mux.HandleFunc("POST /api/chores/{id}/complete", s.gamifyH.CompleteChore)
	mux.HandleFunc("GET /api/rewards", s.gamifyH.ListRewards)
	mux.HandleFunc("POST /api/rewards", s.gamifyH.CreateReward)
	mux.HandleFunc("DELETE /api/rewards/{id}", s.gamifyH.DeleteReward)
	mux.HandleFunc("POST /api/rewards/{id}/claim", s.gamifyH.ClaimReward)
	mux.HandleFunc("POST /api/achievements/{id}/dismiss", s.gamifyH.DismissAchievement)

	// Settings and dashboard
	mux.HandleFunc("GET /api/settings", s.settingsH.Get)
	mux.HandleFunc("PUT /api/settings", s.settingsH.Update)
	mux.HandleFunc("GET /api/summary", s.summaryH.Get)
	mux.HandleFunc("GET /api/advice", s.rateLimitedHandler(s.adviceH.Get))

	// Backups
	mux.HandleFunc("GET /api/backup/status", s.backupH.Status)
	mux.HandleFunc("POST /api/backup/run", s.backupH.Run)
	mux.HandleFunc("GET /api/backup/list", s.backupH.List)
	mux.HandleFunc("POST /api/backup/restore", s.backupH.Restore)
	mux.HandleFunc("GET /api/backup/download", s.backupH.Download)

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// rateLimitedHandler caps a route at ten requests per client per minute.
// Only the advice route needs it, it proxies a paid external API.
func (s *Server) rateLimitedHandler(h http.HandlerFunc) http.HandlerFunc {
	keyFunc := func(r *http.Request) string {
		return middleware.RealIP(r)
	}
	rl := middleware.RateLimit(s.rateLimiter, keyFunc, 10, time.Minute)
	return func(w http.ResponseWriter, r *http.Request) {
		rl(http.HandlerFunc(h)).ServeHTTP(w, r)
	}
}
