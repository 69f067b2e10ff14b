package stack

import (
	"context"
	"fmt"

	"github.com/kompox/groceryops/domain/model"
)

// HistoryInput filters recorded runs.
type HistoryInput struct {
	// Stack limits the history to one stack; empty lists all stacks.
	Stack string `json:"stack"`
	// Limit caps the number of runs; zero lists all.
	Limit int `json:"limit"`
}

// HistoryOutput lists runs newest first.
type HistoryOutput struct {
	Runs []*model.Run `json:"runs"`
}

// History lists recorded engine runs.
func (u *UseCase) History(ctx context.Context, in *HistoryInput) (*HistoryOutput, error) {
	if u.Repos == nil || u.Repos.Run == nil {
		return nil, fmt.Errorf("%w: run history is not configured", model.ErrRunInvalid)
	}
	if in == nil {
		in = &HistoryInput{}
	}
	if in.Limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", model.ErrRunInvalid)
	}
	runs, err := u.Repos.Run.List(ctx, in.Stack, in.Limit)
	if err != nil {
		return nil, err
	}
	return &HistoryOutput{Runs: runs}, nil
}
