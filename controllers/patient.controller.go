package controllers

import (
    "net/http"
    "strconv"
    "time"

    "github.com/gin-gonic/gin"

    "github.com/PriyanshiVerma98/Rural-Health-Tracker/security"
    "github.com/PriyanshiVerma98/Rural-Health-Tracker/store"
)

// Patient Controllers

type CreatePatientInput struct {
    Name        string  `json:"name" binding:"required,min=2,max=100"`
    DateOfBirth *string `json:"date_of_birth" binding:"omitempty"`
    Gender      *string `json:"gender" binding:"omitempty,oneof=male female other"`
    AgeGroup    *string `json:"age_group" binding:"omitempty,oneof=infant child pregnant elderly adult"`
    Phone       *string `json:"phone" binding:"omitempty,max=20"`
    Address     *string `json:"address"`
}

type UpdatePatientInput struct {
    Name        *string `json:"name" binding:"omitempty,min=2,max=100"`
    DateOfBirth *string `json:"date_of_birth" binding:"omitempty"`
    Gender      *string `json:"gender" binding:"omitempty,oneof=male female other"`
    AgeGroup    *string `json:"age_group" binding:"omitempty,oneof=infant child pregnant elderly adult"`
    Phone       *string `json:"phone" binding:"omitempty,max=20"`
    Address     *string `json:"address"`
}

func parseDate(value *string) (*time.Time, bool) {
    if value == nil || *value == "" {
        return nil, true
    }
    t, err := time.Parse("2006-01-02", *value)
    if err != nil {
        return nil, false
    }
    return &t, true
}

func CreatePatient(c *gin.Context) {
    var input CreatePatientInput
    if err := c.ShouldBindJSON(&input); err != nil {
        security.SendValidationError(c, "Invalid input data", err.Error())
        return
    }

    dob, ok := parseDate(input.DateOfBirth)
    if !ok {
        security.SendValidationError(c, "Invalid date_of_birth format", "Use YYYY-MM-DD format")
        return
    }

    userID := c.GetString("user_id")
    patient, err := Store.CreatePatient(store.CreatePatientParams{
        Name:        input.Name,
        DateOfBirth: dob,
        Gender:      input.Gender,
        AgeGroup:    input.AgeGroup,
        Phone:       input.Phone,
        Address:     input.Address,
        CreatedBy:   &userID,
    })
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create patient"})
        return
    }

    c.JSON(http.StatusCreated, patient)
}

func GetPatients(c *gin.Context) {
    limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
    if err != nil || limit <= 0 {
        limit = 50
    }
    offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
    if err != nil || offset < 0 {
        offset = 0
    }

    patients, err := Store.ListPatients(limit, offset)
    if err != nil {
        security.SendDatabaseError(c, "Failed to fetch patients")
        return
    }

    total, err := Store.CountPatients()
    if err != nil {
        security.SendDatabaseError(c, "Failed to count patients")
        return
    }

    c.JSON(http.StatusOK, gin.H{
        "patients": patients,
        "count":    len(patients),
        "total":    total,
        "limit":    limit,
        "offset":   offset,
    })
}

func SearchPatients(c *gin.Context) {
    query := c.Query("q")
    if query == "" {
        security.SendValidationError(c, "Missing search query", "Provide a q query parameter")
        return
    }

    patients, err := Store.SearchPatients(query)
    if err != nil {
        security.SendDatabaseError(c, "Failed to search patients")
        return
    }

    c.JSON(http.StatusOK, gin.H{
        "patients": patients,
        "count":    len(patients),
    })
}

func GetPatient(c *gin.Context) {
    patient, err := Store.GetPatientByID(c.Param("id"))
    if err != nil {
        security.SendDatabaseError(c, "Failed to fetch patient")
        return
    }
    if patient == nil {
        security.SendNotFoundError(c, "patient")
        return
    }
    c.JSON(http.StatusOK, patient)
}

// GetPatientByCode looks up by the human-readable identifier (RH######).
func GetPatientByCode(c *gin.Context) {
    patient, err := Store.GetPatientByPatientID(c.Param("patient_id"))
    if err != nil {
        security.SendDatabaseError(c, "Failed to fetch patient")
        return
    }
    if patient == nil {
        security.SendNotFoundError(c, "patient")
        return
    }
    c.JSON(http.StatusOK, patient)
}

// GetPatientByQR resolves a scanned QR payload to its patient.
func GetPatientByQR(c *gin.Context) {
    qrCode := c.Query("code")
    if qrCode == "" {
        security.SendValidationError(c, "Missing QR code", "Provide a code query parameter")
        return
    }

    patient, err := Store.GetPatientByQRCode(qrCode)
    if err != nil {
        security.SendDatabaseError(c, "Failed to fetch patient")
        return
    }
    if patient == nil {
        security.SendNotFoundError(c, "patient")
        return
    }
    c.JSON(http.StatusOK, patient)
}

func UpdatePatient(c *gin.Context) {
    var input UpdatePatientInput
    if err := c.ShouldBindJSON(&input); err != nil {
        security.SendValidationError(c, "Invalid input data", err.Error())
        return
    }

    dob, ok := parseDate(input.DateOfBirth)
    if !ok {
        security.SendValidationError(c, "Invalid date_of_birth format", "Use YYYY-MM-DD format")
        return
    }

    if input.Name == nil && dob == nil && input.Gender == nil && input.AgeGroup == nil && input.Phone == nil && input.Address == nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
        return
    }

    updated, err := Store.UpdatePatient(c.Param("id"), store.PatientUpdate{
        Name:        input.Name,
        DateOfBirth: dob,
        Gender:      input.Gender,
        AgeGroup:    input.AgeGroup,
        Phone:       input.Phone,
        Address:     input.Address,
    })
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update patient"})
        return
    }
    if !updated {
        security.SendNotFoundError(c, "patient")
        return
    }

    c.JSON(http.StatusOK, gin.H{"message": "Patient updated successfully"})
}
