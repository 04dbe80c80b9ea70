package rdb

import "time"

// WorkspaceRecord is the RDB persistence model for domain Workspace.
// Table name: workspaces
type WorkspaceRecord struct {
	ID        string    `gorm:"primaryKey;type:text;not null"`
	Name      string    `gorm:"uniqueIndex;type:text;not null"`
	Apps      string    `gorm:"type:text"` // JSON encoded []model.App
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (WorkspaceRecord) TableName() string { return "workspaces" }
