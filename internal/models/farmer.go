package models

import (
	"database/sql"
	"time"
)

// Farmer mirrors a row of the farmers table.
type Farmer struct {
	FarmerID      int64          `db:"farmer_id"`
	Name          string         `db:"name"`
	ContactNumber sql.NullString `db:"contact_number"`
	Location      sql.NullString `db:"location"`
	CreatedAt     time.Time      `db:"created_at"`
}
