package controllers

import (
    "net/http"

    "github.com/gin-gonic/gin"

    "github.com/PriyanshiVerma98/Rural-Health-Tracker/security"
    "github.com/PriyanshiVerma98/Rural-Health-Tracker/store"
)

// User management (admin only)

func GetUsers(c *gin.Context) {
    users, err := Store.ListUsers()
    if err != nil {
        security.SendDatabaseError(c, "Failed to fetch users")
        return
    }
    c.JSON(http.StatusOK, users)
}

func GetUser(c *gin.Context) {
    user, err := Store.GetUserByID(c.Param("id"))
    if err != nil {
        security.SendDatabaseError(c, "Failed to fetch user")
        return
    }
    if user == nil {
        security.SendNotFoundError(c, "user")
        return
    }
    c.JSON(http.StatusOK, user)
}

type UpdateUserInput struct {
    Name     *string `json:"name" binding:"omitempty,min=2,max=100"`
    Password *string `json:"password" binding:"omitempty,min=6"`
    Role     *string `json:"role" binding:"omitempty,oneof=admin health_worker"`
    IsActive *bool   `json:"is_active"`
}

func UpdateUser(c *gin.Context) {
    var input UpdateUserInput
    if err := c.ShouldBindJSON(&input); err != nil {
        security.SendValidationError(c, "Invalid input data", err.Error())
        return
    }

    if input.Name == nil && input.Password == nil && input.Role == nil && input.IsActive == nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
        return
    }

    updated, err := Store.UpdateUser(c.Param("id"), store.UserUpdate{
        Name:     input.Name,
        Password: input.Password,
        Role:     input.Role,
        IsActive: input.IsActive,
    })
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
        return
    }
    if !updated {
        security.SendNotFoundError(c, "user")
        return
    }

    c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}
