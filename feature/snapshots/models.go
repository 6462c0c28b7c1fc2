package snapshots

import (
	"encoding/json"
	"fmt"
	"time"

	"token-bridge/core/reconcile"
)

// Record is one stored snapshot.
type Record struct {
	ID            uint      `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	Ref           string    `gorm:"column:ref;type:varchar(36);uniqueIndex" json:"ref"`
	Name          string    `gorm:"column:name;type:varchar(191);index" json:"name"`
	Checksum      string    `gorm:"column:checksum;type:varchar(64)" json:"checksum"`
	VariableCount int       `gorm:"column:variable_count;type:int" json:"variable_count"`
	Payload       string    `gorm:"column:payload;type:longtext" json:"-"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the table name used by Record.
func (Record) TableName() string {
	return "variable_snapshots"
}

// Snapshot decodes the stored payload.
func (r Record) Snapshot() (*reconcile.Snapshot, error) {
	var snapshot reconcile.Snapshot
	if err := json.Unmarshal([]byte(r.Payload), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", r.Ref, err)
	}
	return &snapshot, nil
}
