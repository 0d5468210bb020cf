package models

import (
    "time"
)

const (
    AppointmentScheduled   = "scheduled"
    AppointmentCompleted   = "completed"
    AppointmentCancelled   = "cancelled"
    AppointmentRescheduled = "rescheduled"
)

type Appointment struct {
    ID              string    `json:"id" db:"id"`
    PatientID       string    `json:"patient_id" db:"patient_id"`
    VaccinationID   *string   `json:"vaccination_id" db:"vaccination_id"`
    AppointmentDate time.Time `json:"appointment_date" db:"appointment_date"`
    AppointmentTime string    `json:"appointment_time" db:"appointment_time"`
    Status          string    `json:"status" db:"status"`
    Type            string    `json:"type" db:"type"`
    Notes           *string   `json:"notes" db:"notes"`
    CreatedBy       *string   `json:"created_by" db:"created_by"`
    CreatedAt       time.Time `json:"created_at" db:"created_at"`
    UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// Extended model with patient info for listings
type AppointmentWithPatient struct {
    Appointment
    PatientName string `json:"patient_name"`
    PatientCode string `json:"patient_code"`
}
