package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mverdier/foyer/internal/advice"
	"github.com/mverdier/foyer/internal/backup"
	"github.com/mverdier/foyer/internal/database"
	"github.com/mverdier/foyer/internal/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T, dbPath string) *Server {
	t.Helper()
	db, err := database.Open(dbPath)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	srv, err := New(db, advice.NewService(advice.Config{}), backup.Config{}, testLogger())
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return srv
}

func do(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestServerSeedsDefaults(t *testing.T) {
	srv := newTestServer(t, filepath.Join(t.TempDir(), "foyer.db"))
	router := srv.Router()

	rec := do(t, router, "GET", "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d", rec.Code)
	}

	rec = do(t, router, "GET", "/api/expenses", "")
	var expenses []model.Expense
	json.Unmarshal(rec.Body.Bytes(), &expenses)
	if len(expenses) != 2 {
		t.Errorf("seeded expenses = %d, want 2", len(expenses))
	}

	rec = do(t, router, "GET", "/api/chores", "")
	var chores []model.Chore
	json.Unmarshal(rec.Body.Bytes(), &chores)
	if len(chores) != 6 {
		t.Errorf("seeded chores = %d, want 6", len(chores))
	}

	rec = do(t, router, "GET", "/api/settings", "")
	var p model.Preferences
	json.Unmarshal(rec.Body.Bytes(), &p)
	if p.P1Name != "Jean" || p.P2Name != "Monique" {
		t.Errorf("seeded names = %q/%q", p.P1Name, p.P2Name)
	}
}

func TestServerPersistsAcrossRestart(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "foyer.db")

	srv := newTestServer(t, dbPath)
	router := srv.Router()

	rec := do(t, router, "POST", "/api/expenses", `{"name":"Internet","amountP1":"30","amountP2":"0","category":"Foyer"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create expense status = %d: %s", rec.Code, rec.Body)
	}

	rec = do(t, router, "POST", "/api/grocery-lists", `{"name":"Jardin"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("create list status = %d: %s", rec.Code, rec.Body)
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}

	srv2 := newTestServer(t, dbPath)
	router2 := srv2.Router()

	rec = do(t, router2, "GET", "/api/expenses", "")
	var expenses []model.Expense
	json.Unmarshal(rec.Body.Bytes(), &expenses)
	if len(expenses) != 3 {
		t.Fatalf("expenses after restart = %d, want 3", len(expenses))
	}
	found := false
	for _, e := range expenses {
		if e.Name == "Internet" {
			found = true
		}
	}
	if !found {
		t.Error("expense added before restart is missing")
	}

	rec = do(t, router2, "GET", "/api/grocery-lists", "")
	var lists struct {
		Lists []string `json:"lists"`
	}
	json.Unmarshal(rec.Body.Bytes(), &lists)
	hasJardin := false
	for _, l := range lists.Lists {
		if l == "Jardin" {
			hasJardin = true
		}
	}
	if !hasJardin {
		t.Errorf("lists after restart = %v, want Jardin present", lists.Lists)
	}
}

func TestServerChoreCycle(t *testing.T) {
	srv := newTestServer(t, filepath.Join(t.TempDir(), "foyer.db"))
	router := srv.Router()

	rec := do(t, router, "GET", "/api/chores", "")
	var chores []model.Chore
	json.Unmarshal(rec.Body.Bytes(), &chores)
	if len(chores) == 0 {
		t.Fatal("no seeded chores")
	}

	rec = do(t, router, "POST", "/api/chores/"+chores[0].ID+"/complete", `{"actor":"p1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("complete status = %d: %s", rec.Code, rec.Body)
	}

	rec = do(t, router, "GET", "/api/gamification", "")
	var state model.GamificationState
	json.Unmarshal(rec.Body.Bytes(), &state)
	if len(state.ChoreHistory) != 1 {
		t.Errorf("history = %d entries, want 1", len(state.ChoreHistory))
	}
	if state.Points[model.ActorP1] != 45+chores[0].Points {
		t.Errorf("p1 points = %d, want %d", state.Points[model.ActorP1], 45+chores[0].Points)
	}

	rec = do(t, router, "POST", "/api/gamification/reset", `{"confirm":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("reset status = %d: %s", rec.Code, rec.Body)
	}
	rec = do(t, router, "GET", "/api/gamification", "")
	json.Unmarshal(rec.Body.Bytes(), &state)
	if state.Points[model.ActorP1] != 0 || state.Points[model.ActorP2] != 0 {
		t.Errorf("points after reset = %v, want zeroes", state.Points)
	}
}

func TestServerBackupDisabled(t *testing.T) {
	srv := newTestServer(t, filepath.Join(t.TempDir(), "foyer.db"))
	router := srv.Router()

	rec := do(t, router, "GET", "/api/backup/status", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var st backup.Status
	json.Unmarshal(rec.Body.Bytes(), &st)
	if st.State != backup.StateDisabled {
		t.Errorf("backup state = %q, want %q", st.State, backup.StateDisabled)
	}

	rec = do(t, router, "POST", "/api/backup/run", "")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("run status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}
