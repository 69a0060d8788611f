package entity

import (
	"time"
)

// Base holds the columns every table shares. Rows are never updated or deleted.
type Base struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
