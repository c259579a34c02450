package store

import (
	"time"
)

// Seed records the executions of a named seeder
type Seed struct {
	ID         string `gorm:"primarykey"`
	ExecutedAt time.Time
	Executions int `gorm:"not null;default:1"`
}
