package models

import (
	"time"

	"gorm.io/datatypes"
)

// Visit is one tracked page load. Rows are append-only.
type Visit struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	IPAddress string         `gorm:"column:ip_address;size:64;not null" json:"ip_address"`
	VisitDate datatypes.Date `gorm:"column:visit_date;not null;index" json:"visit_date"`
}

// VisitDay normalizes t to its calendar day at midnight UTC so stored dates
// compare the same way on every dialect.
func VisitDay(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// VisitStats is the analytics snapshot shown on the dashboard and pushed
// over the stats stream.
type VisitStats struct {
	Total int64 `json:"total"`
	Today int64 `json:"today"`
	Week  int64 `json:"week"`
	Month int64 `json:"month"`
}
