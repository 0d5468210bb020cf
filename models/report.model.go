package models

import (
    "time"
)

type DashboardStats struct {
    TotalPatients int              `json:"total_patients"`
    Vaccinations  VaccinationStats `json:"vaccinations"`
}

type DemographicsReport struct {
    ByAgeGroup map[string]int `json:"by_age_group"`
    ByGender   map[string]int `json:"by_gender"`
    Total      int            `json:"total"`
}

type MonthlySummary struct {
    Year              int    `json:"year"`
    Month             int    `json:"month"`
    NewPatients       int    `json:"new_patients"`
    VaccinationsGiven int    `json:"vaccinations_given"`
    TotalPatients     int    `json:"total_patients"`
    CompletionRate    string `json:"completion_rate"`
}

type OverdueItem struct {
    PatientID     string    `json:"patient_id"`
    PatientCode   string    `json:"patient_code"`
    PatientName   string    `json:"patient_name"`
    Phone         *string   `json:"phone"`
    VaccineName   string    `json:"vaccine_name"`
    DoseNumber    int       `json:"dose_number"`
    ScheduledDate time.Time `json:"scheduled_date"`
    DaysOverdue   int       `json:"days_overdue"`
}
