package rdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kompox/groceryops/domain"
	"github.com/kompox/groceryops/domain/model"
)

type RunRepository struct{ db *gorm.DB }

func NewRunRepository(db *gorm.DB) *RunRepository { return &RunRepository{db: db} }

func runToRecord(r *model.Run) (*RunRecord, error) {
	rec := &RunRecord{
		ID:        r.ID,
		Operation: string(r.Operation),
		Project:   r.Project,
		Stack:     r.Stack,
		Result:    string(r.Result),
		LiveURL:   r.LiveURL,
		Error:     r.Error,
		StartedAt: r.StartedAt,
	}
	if len(r.Summary) > 0 {
		b, err := json.Marshal(r.Summary)
		if err != nil {
			return nil, fmt.Errorf("encoding run summary: %w", err)
		}
		rec.Summary = string(b)
	}
	if !r.FinishedAt.IsZero() {
		t := r.FinishedAt
		rec.FinishedAt = &t
	}
	return rec, nil
}

func runToModel(rec *RunRecord) (*model.Run, error) {
	r := &model.Run{
		ID:        rec.ID,
		Operation: model.StackOperation(rec.Operation),
		Project:   rec.Project,
		Stack:     rec.Stack,
		Result:    model.RunResult(rec.Result),
		LiveURL:   rec.LiveURL,
		Error:     rec.Error,
		StartedAt: rec.StartedAt,
	}
	if rec.Summary != "" {
		if err := json.Unmarshal([]byte(rec.Summary), &r.Summary); err != nil {
			return nil, fmt.Errorf("decoding summary of run %s: %w", rec.ID, err)
		}
	}
	if rec.FinishedAt != nil {
		r.FinishedAt = *rec.FinishedAt
	}
	return r, nil
}

func (r *RunRepository) Create(ctx context.Context, run *model.Run) error {
	if run.ID == "" {
		run.ID = "run-" + uuid.NewString()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}
	rec, err := runToRecord(run)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *RunRepository) Get(ctx context.Context, id string) (*model.Run, error) {
	var rec RunRecord
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrRunNotFound
		}
		return nil, err
	}
	return runToModel(&rec)
}

func (r *RunRepository) List(ctx context.Context, stack string, limit int) ([]*model.Run, error) {
	q := r.db.WithContext(ctx).Order("started_at DESC").Order("id DESC")
	if stack != "" {
		q = q.Where("stack = ?", stack)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var recs []RunRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*model.Run, 0, len(recs))
	for i := range recs {
		m, err := runToModel(&recs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// Update saves all fields of run, including zero values.
func (r *RunRepository) Update(ctx context.Context, run *model.Run) error {
	rec, err := runToRecord(run)
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Model(&RunRecord{}).Where("id = ?", rec.ID).Select("*").Updates(rec)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrRunNotFound
	}
	return nil
}

var _ domain.RunRepository = (*RunRepository)(nil)
