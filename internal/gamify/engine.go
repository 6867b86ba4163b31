// Package gamify implements the chore-points-reward cycle. All commands are
// serialized under one mutex so the precondition check and the effect of
// CompleteChore and ClaimReward can never interleave.
package gamify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mverdier/foyer/internal/command"
	"github.com/mverdier/foyer/internal/dateutil"
	"github.com/mverdier/foyer/internal/model"
)

// Collection is the snapshot key whose blob carries the gamification state.
const Collection = "settings"

// NameResolver returns the current display name for an actor slot. History
// entries copy the resolved name at append time, so later renames never
// rewrite what was recorded.
type NameResolver func(model.Actor) string

// Notifier matches ledger.Notifier.
type Notifier func(collection, action, id string)

// Engine holds the gamification state and the chore/reward catalogs.
type Engine struct {
	mu      sync.Mutex
	state   model.GamificationState
	chores  []model.Chore
	rewards []model.Reward
	names   NameResolver
	notify  Notifier
}

// NewEngine creates an engine with zero points and the current week's Monday
// as the reset date.
func NewEngine(names NameResolver, notify Notifier, now time.Time) *Engine {
	if names == nil {
		names = func(a model.Actor) string { return string(a) }
	}
	if notify == nil {
		notify = func(string, string, string) {}
	}
	return &Engine{
		state: model.GamificationState{
			Points:        map[model.Actor]int{model.ActorP1: 0, model.ActorP2: 0},
			LastResetDate: dateutil.FormatDate(dateutil.StartOfWeek(now)),
		},
		names:  names,
		notify: notify,
	}
}

// Restore replaces state and catalogs, typically from a loaded snapshot.
// Missing or negative point entries normalize to zero.
func (e *Engine) Restore(state model.GamificationState, chores []model.Chore, rewards []model.Reward) {
	e.mu.Lock()
	defer e.mu.Unlock()

	points := map[model.Actor]int{model.ActorP1: 0, model.ActorP2: 0}
	for _, a := range model.Actors {
		if v, ok := state.Points[a]; ok && v > 0 {
			points[a] = v
		}
	}
	state.Points = points
	state.AchievedRewards = append([]model.AchievedReward(nil), state.AchievedRewards...)
	state.ChoreHistory = append([]model.ChoreHistoryEntry(nil), state.ChoreHistory...)

	e.state = state
	e.chores = append([]model.Chore(nil), chores...)
	e.rewards = append([]model.Reward(nil), rewards...)
}

// State returns a deep copy of the gamification state.
func (e *Engine) State() model.GamificationState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked()
}

func (e *Engine) stateLocked() model.GamificationState {
	points := make(map[model.Actor]int, len(e.state.Points))
	for a, v := range e.state.Points {
		points[a] = v
	}
	return model.GamificationState{
		Points:          points,
		LastResetDate:   e.state.LastResetDate,
		AchievedRewards: append([]model.AchievedReward(nil), e.state.AchievedRewards...),
		ChoreHistory:    append([]model.ChoreHistoryEntry(nil), e.state.ChoreHistory...),
	}
}

// Points returns an actor's balance.
func (e *Engine) Points(actor model.Actor) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Points[actor]
}

// CompleteChore awards a chore's points to an actor and prepends a history
// entry. Each actor may complete a given chore once per calendar day; a
// repeat on the same day is rejected with no state change.
func (e *Engine) CompleteChore(choreID string, actor model.Actor, now time.Time) (model.ChoreHistoryEntry, command.Result) {
	if !validActor(actor) {
		return model.ChoreHistoryEntry{}, command.Rejected(command.ReasonUnknownActor)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	var chore *model.Chore
	for i := range e.chores {
		if e.chores[i].ID == choreID {
			chore = &e.chores[i]
			break
		}
	}
	if chore == nil {
		return model.ChoreHistoryEntry{}, command.Rejected(command.ReasonNotFound)
	}

	actorName := e.names(actor)
	for _, h := range e.state.ChoreHistory {
		if h.ChoreID == choreID && h.ActorName == actorName && dateutil.SameDay(h.Timestamp, now) {
			return model.ChoreHistoryEntry{}, command.Rejected(command.ReasonAlreadyDoneToday)
		}
	}

	entry := model.ChoreHistoryEntry{
		ID:         uuid.NewString(),
		ChoreID:    chore.ID,
		ChoreTitle: chore.Title,
		ActorName:  actorName,
		Points:     chore.Points,
		Timestamp:  now,
	}
	e.state.Points[actor] += chore.Points
	e.state.ChoreHistory = append([]model.ChoreHistoryEntry{entry}, e.state.ChoreHistory...)

	e.notify(Collection, "updated", "chore_completed")
	return entry, command.Applied
}

// ClaimReward spends exactly the reward's threshold from the actor's balance
// and prepends an achievement record. Insufficient points is a no-op.
func (e *Engine) ClaimReward(rewardID string, actor model.Actor, now time.Time) (model.AchievedReward, command.Result) {
	if !validActor(actor) {
		return model.AchievedReward{}, command.Rejected(command.ReasonUnknownActor)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	var reward *model.Reward
	for i := range e.rewards {
		if e.rewards[i].ID == rewardID {
			reward = &e.rewards[i]
			break
		}
	}
	if reward == nil {
		return model.AchievedReward{}, command.Rejected(command.ReasonNotFound)
	}

	if e.state.Points[actor] < reward.Threshold {
		return model.AchievedReward{}, command.Rejected(command.ReasonInsufficientPoints)
	}

	achievement := model.AchievedReward{
		ID:          uuid.NewString(),
		RewardTitle: reward.Title,
		WinnerName:  e.names(actor),
		Timestamp:   now,
	}
	e.state.Points[actor] -= reward.Threshold
	e.state.AchievedRewards = append([]model.AchievedReward{achievement}, e.state.AchievedRewards...)

	e.notify(Collection, "updated", "reward_claimed")
	return achievement, command.Applied
}

// DismissAchievement removes an achievement record without touching points.
// Dismissing an absent id is a harmless no-op.
func (e *Engine) DismissAchievement(id string) command.Result {
	e.mu.Lock()
	removed := false
	for i := range e.state.AchievedRewards {
		if e.state.AchievedRewards[i].ID == id {
			e.state.AchievedRewards = append(e.state.AchievedRewards[:i], e.state.AchievedRewards[i+1:]...)
			removed = true
			break
		}
	}
	e.mu.Unlock()

	if removed {
		e.notify(Collection, "updated", "achievement_dismissed")
	}
	return command.Applied
}

// ResetCycle starts a new week: both balances to zero, both history lists
// cleared, reset date set to the Monday of now's week. All four effects
// happen under one lock or not at all; the confirm flag is the caller's
// explicit acknowledgement that this is irreversible.
func (e *Engine) ResetCycle(now time.Time, confirm bool) command.Result {
	if !confirm {
		return command.Rejected(command.ReasonConfirmationRequired)
	}

	e.mu.Lock()
	e.state.Points[model.ActorP1] = 0
	e.state.Points[model.ActorP2] = 0
	e.state.AchievedRewards = nil
	e.state.ChoreHistory = nil
	e.state.LastResetDate = dateutil.FormatDate(dateutil.StartOfWeek(now))
	e.mu.Unlock()

	e.notify(Collection, "updated", "cycle_reset")
	return command.Applied
}

func validActor(a model.Actor) bool {
	return a == model.ActorP1 || a == model.ActorP2
}
