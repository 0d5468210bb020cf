package models

import (
    "time"
)

type Vaccine struct {
    ID            string    `json:"id" db:"id"`
    Name          string    `json:"name" db:"name"`
    AgeGroup      string    `json:"age_group" db:"age_group"`
    DosesRequired int       `json:"doses_required" db:"doses_required"`
    IntervalDays  int       `json:"interval_days" db:"interval_days"`
    Description   *string   `json:"description" db:"description"`
    IsActive      bool      `json:"is_active" db:"is_active"`
    CreatedAt     time.Time `json:"created_at" db:"created_at"`
    UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
