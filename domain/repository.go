package domain

import (
	"context"

	"github.com/kompox/groceryops/domain/model"
)

// RunRepository stores and retrieves Run records.
type RunRepository interface {
	Create(ctx context.Context, r *model.Run) error
	Get(ctx context.Context, id string) (*model.Run, error)
	// List returns runs of the given stack, newest first. An empty stack
	// matches all stacks, and limit <= 0 means no limit.
	List(ctx context.Context, stack string, limit int) ([]*model.Run, error)
	Update(ctx context.Context, r *model.Run) error
}

// Repositories groups repository interfaces.
type Repositories struct {
	Run RunRepository
}
