package models

import (
    "time"
)

const (
    VaccinationScheduled = "scheduled"
    VaccinationCompleted = "completed"
    VaccinationMissed    = "missed"
    VaccinationOverdue   = "overdue"
)

type Vaccination struct {
    ID               string     `json:"id" db:"id"`
    PatientID        string     `json:"patient_id" db:"patient_id"`
    VaccineID        string     `json:"vaccine_id" db:"vaccine_id"`
    DoseNumber       int        `json:"dose_number" db:"dose_number"`
    ScheduledDate    *time.Time `json:"scheduled_date" db:"scheduled_date"`
    AdministeredDate *time.Time `json:"administered_date" db:"administered_date"`
    AdministeredBy   *string    `json:"administered_by" db:"administered_by"`
    Status           string     `json:"status" db:"status"`
    Notes            *string    `json:"notes" db:"notes"`
    CreatedAt        time.Time  `json:"created_at" db:"created_at"`
    UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}

// Extended model with related data
type VaccinationWithDetails struct {
    Vaccination
    PatientName   string `json:"patient_name"`
    PatientCode   string `json:"patient_code"`
    VaccineName   string `json:"vaccine_name"`
    VaccineDoses  int    `json:"vaccine_doses"`
}

type VaccinationStats struct {
    Completed int `json:"completed"`
    Due       int `json:"due"`
    Overdue   int `json:"overdue"`
}
