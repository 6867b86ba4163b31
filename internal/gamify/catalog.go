package gamify

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mverdier/foyer/internal/command"
	"github.com/mverdier/foyer/internal/model"
)

// Catalog edits are plain collection operations. Removing a chore or reward
// never refunds points and never rewrites history: completions and
// achievements carry value copies of everything they need.

func (e *Engine) Chores() []model.Chore {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]model.Chore(nil), e.chores...)
}

func (e *Engine) Rewards() []model.Reward {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]model.Reward(nil), e.rewards...)
}

func (e *Engine) AddChore(title string, points int) (model.Chore, command.Result) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Chore{}, command.Rejected(command.ReasonEmptyTitle)
	}
	if points <= 0 {
		return model.Chore{}, command.Rejected(command.ReasonNonPositiveValue)
	}

	c := model.Chore{ID: uuid.NewString(), Title: title, Points: points}

	e.mu.Lock()
	e.chores = append(e.chores, c)
	e.mu.Unlock()

	e.notify(Collection, "updated", "chores")
	return c, command.Applied
}

func (e *Engine) RemoveChore(id string) command.Result {
	e.mu.Lock()
	removed := false
	for i := range e.chores {
		if e.chores[i].ID == id {
			e.chores = append(e.chores[:i], e.chores[i+1:]...)
			removed = true
			break
		}
	}
	e.mu.Unlock()

	if !removed {
		return command.Rejected(command.ReasonNotFound)
	}
	e.notify(Collection, "updated", "chores")
	return command.Applied
}

func (e *Engine) AddReward(title string, threshold int) (model.Reward, command.Result) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Reward{}, command.Rejected(command.ReasonEmptyTitle)
	}
	if threshold <= 0 {
		return model.Reward{}, command.Rejected(command.ReasonNonPositiveValue)
	}

	r := model.Reward{ID: uuid.NewString(), Title: title, Threshold: threshold}

	e.mu.Lock()
	e.rewards = append(e.rewards, r)
	e.mu.Unlock()

	e.notify(Collection, "updated", "rewards")
	return r, command.Applied
}

func (e *Engine) RemoveReward(id string) command.Result {
	e.mu.Lock()
	removed := false
	for i := range e.rewards {
		if e.rewards[i].ID == id {
			e.rewards = append(e.rewards[:i], e.rewards[i+1:]...)
			removed = true
			break
		}
	}
	e.mu.Unlock()

	if !removed {
		return command.Rejected(command.ReasonNotFound)
	}
	e.notify(Collection, "updated", "rewards")
	return command.Applied
}
