package controllers

import (
    "net/http"
    "time"

    "github.com/gin-gonic/gin"

    "github.com/PriyanshiVerma98/Rural-Health-Tracker/security"
    "github.com/PriyanshiVerma98/Rural-Health-Tracker/store"
)

// Appointment Controllers

type CreateAppointmentInput struct {
    PatientID       string  `json:"patient_id" binding:"required,uuid"`
    VaccinationID   *string `json:"vaccination_id" binding:"omitempty,uuid"`
    AppointmentDate string  `json:"appointment_date" binding:"required"`
    AppointmentTime string  `json:"appointment_time" binding:"required"`
    Type            string  `json:"type" binding:"omitempty,oneof=routine followup new"`
    Notes           *string `json:"notes"`
}

type UpdateAppointmentInput struct {
    AppointmentDate *string `json:"appointment_date"`
    AppointmentTime *string `json:"appointment_time"`
    Status          *string `json:"status" binding:"omitempty,oneof=scheduled completed cancelled rescheduled"`
    Type            *string `json:"type" binding:"omitempty,oneof=routine followup new"`
    Notes           *string `json:"notes"`
}

// normalizeClockTime validates an HH:MM string and re-renders it
// zero-padded, so "9:30" is stored as "09:30" and string ordering by
// appointment_time stays chronological.
func normalizeClockTime(value string) (string, error) {
    t, err := time.Parse("15:04", value)
    if err != nil {
        return "", err
    }
    return t.Format("15:04"), nil
}

func CreateAppointment(c *gin.Context) {
    var input CreateAppointmentInput
    if err := c.ShouldBindJSON(&input); err != nil {
        security.SendValidationError(c, "Invalid input data", err.Error())
        return
    }

    appointmentDate, err := time.Parse("2006-01-02", input.AppointmentDate)
    if err != nil {
        security.SendValidationError(c, "Invalid appointment_date format", "Use YYYY-MM-DD format")
        return
    }

    appointmentTime, err := normalizeClockTime(input.AppointmentTime)
    if err != nil {
        security.SendValidationError(c, "Invalid appointment_time format", "Use HH:MM format")
        return
    }

    patient, err := Store.GetPatientByID(input.PatientID)
    if err != nil {
        security.SendDatabaseError(c, "Failed to verify patient")
        return
    }
    if patient == nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "Patient not found"})
        return
    }

    userID := c.GetString("user_id")
    appointment, err := Store.CreateAppointment(store.CreateAppointmentParams{
        PatientID:       input.PatientID,
        VaccinationID:   input.VaccinationID,
        AppointmentDate: appointmentDate,
        AppointmentTime: appointmentTime,
        Type:            input.Type,
        Notes:           input.Notes,
        CreatedBy:       &userID,
    })
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create appointment"})
        return
    }

    c.JSON(http.StatusCreated, appointment)
}

func GetAppointments(c *gin.Context) {
    if dateStr := c.Query("date"); dateStr != "" {
        date, err := time.Parse("2006-01-02", dateStr)
        if err != nil {
            security.SendValidationError(c, "Invalid date format", "Use YYYY-MM-DD format")
            return
        }
        appointments, err := Store.GetAppointmentsByDate(date)
        if err != nil {
            security.SendDatabaseError(c, "Failed to fetch appointments")
            return
        }
        c.JSON(http.StatusOK, gin.H{"appointments": appointments, "count": len(appointments), "date": dateStr})
        return
    }

    appointments, err := Store.ListAppointments()
    if err != nil {
        security.SendDatabaseError(c, "Failed to fetch appointments")
        return
    }
    c.JSON(http.StatusOK, gin.H{"appointments": appointments, "count": len(appointments)})
}

func GetTodaysAppointments(c *gin.Context) {
    appointments, err := Store.GetTodaysAppointments()
    if err != nil {
        security.SendDatabaseError(c, "Failed to fetch appointments")
        return
    }
    c.JSON(http.StatusOK, gin.H{"appointments": appointments, "count": len(appointments)})
}

func GetAppointment(c *gin.Context) {
    appointment, err := Store.GetAppointmentByID(c.Param("id"))
    if err != nil {
        security.SendDatabaseError(c, "Failed to fetch appointment")
        return
    }
    if appointment == nil {
        security.SendNotFoundError(c, "appointment")
        return
    }
    c.JSON(http.StatusOK, appointment)
}

func UpdateAppointment(c *gin.Context) {
    var input UpdateAppointmentInput
    if err := c.ShouldBindJSON(&input); err != nil {
        security.SendValidationError(c, "Invalid input data", err.Error())
        return
    }

    date, ok := parseDate(input.AppointmentDate)
    if !ok {
        security.SendValidationError(c, "Invalid appointment_date format", "Use YYYY-MM-DD format")
        return
    }

    if input.AppointmentTime != nil {
        normalized, err := normalizeClockTime(*input.AppointmentTime)
        if err != nil {
            security.SendValidationError(c, "Invalid appointment_time format", "Use HH:MM format")
            return
        }
        input.AppointmentTime = &normalized
    }

    if date == nil && input.AppointmentTime == nil && input.Status == nil && input.Type == nil && input.Notes == nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
        return
    }

    updated, err := Store.UpdateAppointment(c.Param("id"), store.AppointmentUpdate{
        AppointmentDate: date,
        AppointmentTime: input.AppointmentTime,
        Status:          input.Status,
        Type:            input.Type,
        Notes:           input.Notes,
    })
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update appointment"})
        return
    }
    if !updated {
        security.SendNotFoundError(c, "appointment")
        return
    }

    c.JSON(http.StatusOK, gin.H{"message": "Appointment updated successfully"})
}
