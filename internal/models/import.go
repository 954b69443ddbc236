package models

import (
	"time"
)

// ImportRun records one catalog import into the store
type ImportRun struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	ItemCount int       `json:"item_count"`
	CreatedAt time.Time `json:"created_at"`
}
