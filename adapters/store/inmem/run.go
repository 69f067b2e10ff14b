package inmem

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/kompox/groceryops/domain/model"
)

// RunRepository is a thread-safe in-memory implementation.
type RunRepository struct {
	mu    sync.RWMutex
	items map[string]*model.Run
	seq   int64
}

func NewRunRepository() *RunRepository {
	return &RunRepository{items: make(map[string]*model.Run)}
}

func (r *RunRepository) nextID() string {
	r.seq++
	return fmt.Sprintf("run-%d-%d", time.Now().UnixNano(), r.seq)
}

func copyRun(v *model.Run) *model.Run {
	cp := *v
	cp.Summary = maps.Clone(v.Summary)
	return &cp
}

func (r *RunRepository) Create(_ context.Context, run *model.Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if run.ID == "" {
		run.ID = r.nextID()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}
	r.items[run.ID] = copyRun(run)
	return nil
}

func (r *RunRepository) Get(_ context.Context, id string) (*model.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.items[id]
	if !ok {
		return nil, model.ErrRunNotFound
	}
	return copyRun(v), nil
}

func (r *RunRepository) List(_ context.Context, stack string, limit int) ([]*model.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Run, 0, len(r.items))
	for _, v := range r.items {
		if stack != "" && v.Stack != stack {
			continue
		}
		out = append(out, copyRun(v))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].StartedAt.After(out[j].StartedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *RunRepository) Update(_ context.Context, run *model.Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[run.ID]; !ok {
		return model.ErrRunNotFound
	}
	r.items[run.ID] = copyRun(run)
	return nil
}
