package rdb

import "time"

// RunRecord is the RDB persistence model for domain Run.
// Table name: runs
type RunRecord struct {
	ID         string    `gorm:"primaryKey;type:text;not null"`
	Operation  string    `gorm:"type:text;not null"`
	Project    string    `gorm:"type:text;not null"`
	Stack      string    `gorm:"type:text;not null;index"`
	Result     string    `gorm:"type:text;not null"`
	Summary    string    `gorm:"type:text"` // JSON encoded map[string]int
	LiveURL    string    `gorm:"type:text"`
	Error      string    `gorm:"type:text"`
	StartedAt  time.Time `gorm:"not null;index"`
	FinishedAt *time.Time
}

func (RunRecord) TableName() string { return "runs" }
