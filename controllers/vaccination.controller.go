package controllers

import (
    "net/http"
    "time"

    "github.com/gin-gonic/gin"

    "github.com/PriyanshiVerma98/Rural-Health-Tracker/models"
    "github.com/PriyanshiVerma98/Rural-Health-Tracker/security"
    "github.com/PriyanshiVerma98/Rural-Health-Tracker/store"
)

// Vaccination Controllers

type CreateVaccinationInput struct {
    PatientID     string  `json:"patient_id" binding:"required,uuid"`
    VaccineID     string  `json:"vaccine_id" binding:"required,uuid"`
    DoseNumber    int     `json:"dose_number" binding:"omitempty,min=1"`
    ScheduledDate *string `json:"scheduled_date" binding:"omitempty"`
    Notes         *string `json:"notes"`
}

func CreateVaccination(c *gin.Context) {
    var input CreateVaccinationInput
    if err := c.ShouldBindJSON(&input); err != nil {
        security.SendValidationError(c, "Invalid input data", err.Error())
        return
    }

    scheduled, ok := parseDate(input.ScheduledDate)
    if !ok {
        security.SendValidationError(c, "Invalid scheduled_date format", "Use YYYY-MM-DD format")
        return
    }

    // Verify patient and vaccine exist
    patient, err := Store.GetPatientByID(input.PatientID)
    if err != nil {
        security.SendDatabaseError(c, "Failed to verify patient")
        return
    }
    if patient == nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "Patient not found"})
        return
    }

    vaccine, err := Store.GetVaccineByID(input.VaccineID)
    if err != nil {
        security.SendDatabaseError(c, "Failed to verify vaccine")
        return
    }
    if vaccine == nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "Vaccine not found"})
        return
    }

    vaccination, err := Store.CreateVaccination(store.CreateVaccinationParams{
        PatientID:     input.PatientID,
        VaccineID:     input.VaccineID,
        DoseNumber:    input.DoseNumber,
        ScheduledDate: scheduled,
        Notes:         input.Notes,
    })
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vaccination"})
        return
    }

    c.JSON(http.StatusCreated, vaccination)
}

func GetVaccinations(c *gin.Context) {
    if patientID := c.Query("patient_id"); patientID != "" {
        vaccinations, err := Store.GetVaccinationsByPatient(patientID)
        if err != nil {
            security.SendDatabaseError(c, "Failed to fetch vaccinations")
            return
        }
        c.JSON(http.StatusOK, gin.H{"vaccinations": vaccinations, "count": len(vaccinations)})
        return
    }

    vaccinations, err := Store.ListVaccinations()
    if err != nil {
        security.SendDatabaseError(c, "Failed to fetch vaccinations")
        return
    }
    c.JSON(http.StatusOK, gin.H{"vaccinations": vaccinations, "count": len(vaccinations)})
}

func GetVaccination(c *gin.Context) {
    vaccination, err := Store.GetVaccinationByID(c.Param("id"))
    if err != nil {
        security.SendDatabaseError(c, "Failed to fetch vaccination")
        return
    }
    if vaccination == nil {
        security.SendNotFoundError(c, "vaccination")
        return
    }
    c.JSON(http.StatusOK, vaccination)
}

type UpdateVaccinationInput struct {
    Status        *string `json:"status" binding:"omitempty,oneof=scheduled completed missed overdue"`
    ScheduledDate *string `json:"scheduled_date" binding:"omitempty"`
    Notes         *string `json:"notes"`
}

func UpdateVaccination(c *gin.Context) {
    var input UpdateVaccinationInput
    if err := c.ShouldBindJSON(&input); err != nil {
        security.SendValidationError(c, "Invalid input data", err.Error())
        return
    }

    scheduled, ok := parseDate(input.ScheduledDate)
    if !ok {
        security.SendValidationError(c, "Invalid scheduled_date format", "Use YYYY-MM-DD format")
        return
    }

    if input.Status == nil && scheduled == nil && input.Notes == nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
        return
    }

    update := store.VaccinationUpdate{
        Status:        input.Status,
        ScheduledDate: scheduled,
        Notes:         input.Notes,
    }

    // Marking completed stamps the administering user and date
    if input.Status != nil && *input.Status == models.VaccinationCompleted {
        userID := c.GetString("user_id")
        now := time.Now()
        update.AdministeredBy = &userID
        update.AdministeredDate = &now
    }

    updated, err := Store.UpdateVaccination(c.Param("id"), update)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vaccination"})
        return
    }
    if !updated {
        security.SendNotFoundError(c, "vaccination")
        return
    }

    c.JSON(http.StatusOK, gin.H{"message": "Vaccination updated successfully"})
}

// GetVaccinationStats returns completed/due/overdue counts.
func GetVaccinationStats(c *gin.Context) {
    stats, err := Store.GetVaccinationStats()
    if err != nil {
        security.SendDatabaseError(c, "Failed to compute vaccination stats")
        return
    }
    c.JSON(http.StatusOK, stats)
}
