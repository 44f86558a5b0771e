package testdata

import (
	"database/sql"
	"time"
)

// CrossPackage tests types from other packages
type CrossPackage struct {
	Name      string         `debugmap:"visible"`
	Timestamp time.Time      `debugmap:"visible-format"`
	Duration  time.Duration  `debugmap:"visible"`
	DSN       sql.NullString `debugmap:"sensitive"`
}
