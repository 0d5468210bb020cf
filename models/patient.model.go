package models

import (
    "time"
)

// Age groups driving vaccination schedules.
const (
    AgeGroupInfant   = "infant"
    AgeGroupChild    = "child"
    AgeGroupPregnant = "pregnant"
    AgeGroupElderly  = "elderly"
    AgeGroupAdult    = "adult"
)

type Patient struct {
    ID          string     `json:"id" db:"id"`
    PatientID   string     `json:"patient_id" db:"patient_id"`
    Name        string     `json:"name" db:"name"`
    DateOfBirth *time.Time `json:"date_of_birth" db:"date_of_birth"`
    Gender      *string    `json:"gender" db:"gender"`
    AgeGroup    *string    `json:"age_group" db:"age_group"`
    Phone       *string    `json:"phone" db:"phone"`
    Address     *string    `json:"address" db:"address"`
    QRCode      string     `json:"qr_code" db:"qr_code"`
    CreatedBy   *string    `json:"created_by" db:"created_by"`
    CreatedAt   time.Time  `json:"created_at" db:"created_at"`
    UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}
