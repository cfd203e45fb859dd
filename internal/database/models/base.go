package models

import (
	"time"
)

// BaseModel provides audit timestamps for all models. Every table in this
// schema is keyed by its natural key, so primary keys live on the models.
type BaseModel struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
