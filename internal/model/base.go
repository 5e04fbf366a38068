package model

import (
	"time"
)

// BaseModel is embedded by every CMS entity. Deletes are real row removals
// (the admin panel contract treats delete-then-read as not found), so there
// is no soft-delete column.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
