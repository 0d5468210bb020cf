package controllers

import (
    "net/http"

    "github.com/gin-gonic/gin"

    "github.com/PriyanshiVerma98/Rural-Health-Tracker/security"
    "github.com/PriyanshiVerma98/Rural-Health-Tracker/store"
)

// Vaccine catalog (create/update admin only)

type CreateVaccineInput struct {
    Name          string  `json:"name" binding:"required,min=2,max=100"`
    AgeGroup      string  `json:"age_group" binding:"required,oneof=infant child pregnant elderly adult"`
    DosesRequired int     `json:"doses_required" binding:"omitempty,min=1"`
    IntervalDays  int     `json:"interval_days" binding:"omitempty,min=0"`
    Description   *string `json:"description"`
}

type UpdateVaccineInput struct {
    Name          *string `json:"name" binding:"omitempty,min=2,max=100"`
    AgeGroup      *string `json:"age_group" binding:"omitempty,oneof=infant child pregnant elderly adult"`
    DosesRequired *int    `json:"doses_required" binding:"omitempty,min=1"`
    IntervalDays  *int    `json:"interval_days" binding:"omitempty,min=0"`
    Description   *string `json:"description"`
    IsActive      *bool   `json:"is_active"`
}

func CreateVaccine(c *gin.Context) {
    var input CreateVaccineInput
    if err := c.ShouldBindJSON(&input); err != nil {
        security.SendValidationError(c, "Invalid input data", err.Error())
        return
    }

    vaccine, err := Store.CreateVaccine(store.CreateVaccineParams{
        Name:          input.Name,
        AgeGroup:      input.AgeGroup,
        DosesRequired: input.DosesRequired,
        IntervalDays:  input.IntervalDays,
        Description:   input.Description,
    })
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vaccine"})
        return
    }

    c.JSON(http.StatusCreated, vaccine)
}

func GetVaccines(c *gin.Context) {
    vaccines, err := Store.ListActiveVaccines()
    if err != nil {
        security.SendDatabaseError(c, "Failed to fetch vaccines")
        return
    }
    c.JSON(http.StatusOK, vaccines)
}

func GetVaccine(c *gin.Context) {
    vaccine, err := Store.GetVaccineByID(c.Param("id"))
    if err != nil {
        security.SendDatabaseError(c, "Failed to fetch vaccine")
        return
    }
    if vaccine == nil {
        security.SendNotFoundError(c, "vaccine")
        return
    }
    c.JSON(http.StatusOK, vaccine)
}

func UpdateVaccine(c *gin.Context) {
    var input UpdateVaccineInput
    if err := c.ShouldBindJSON(&input); err != nil {
        security.SendValidationError(c, "Invalid input data", err.Error())
        return
    }

    if input.Name == nil && input.AgeGroup == nil && input.DosesRequired == nil &&
        input.IntervalDays == nil && input.Description == nil && input.IsActive == nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
        return
    }

    updated, err := Store.UpdateVaccine(c.Param("id"), store.VaccineUpdate{
        Name:          input.Name,
        AgeGroup:      input.AgeGroup,
        DosesRequired: input.DosesRequired,
        IntervalDays:  input.IntervalDays,
        Description:   input.Description,
        IsActive:      input.IsActive,
    })
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vaccine"})
        return
    }
    if !updated {
        security.SendNotFoundError(c, "vaccine")
        return
    }

    c.JSON(http.StatusOK, gin.H{"message": "Vaccine updated successfully"})
}
