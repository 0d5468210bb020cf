package controllers

import (
    "net/http"
    "time"

    "github.com/gin-gonic/gin"
    "github.com/golang-jwt/jwt/v5"

    "github.com/PriyanshiVerma98/Rural-Health-Tracker/config"
    "github.com/PriyanshiVerma98/Rural-Health-Tracker/security"
    "github.com/PriyanshiVerma98/Rural-Health-Tracker/store"
)

// HealthCheck endpoint
func HealthCheck(c *gin.Context) {
    // Test database connection
    err := config.DB.Ping()
    if err != nil {
        c.JSON(http.StatusServiceUnavailable, gin.H{
            "status": "unhealthy",
            "error":  "Database connection failed",
        })
        return
    }

    c.JSON(http.StatusOK, gin.H{
        "status":    "healthy",
        "service":   "rural-health-tracker",
        "timestamp": time.Now().Unix(),
    })
}

// Registration never accepts the admin role: the first account is
// promoted automatically and later admins are promoted through user
// management.
type RegisterInput struct {
    Username string `json:"username" binding:"required,min=3,max=30"`
    Password string `json:"password" binding:"required,min=6"`
    Name     string `json:"name" binding:"required,min=2,max=100"`
    Role     string `json:"role" binding:"omitempty,oneof=health_worker"`
}

func Register(c *gin.Context) {
    var input RegisterInput
    if err := c.ShouldBindJSON(&input); err != nil {
        security.SendValidationError(c, "Invalid input data", err.Error())
        return
    }

    // Check if username already exists
    existing, err := Store.GetUserByUsername(input.Username)
    if err != nil {
        security.SendDatabaseError(c, "Failed to check username")
        return
    }
    if existing != nil {
        c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
        return
    }

    user, err := Store.CreateUser(store.CreateUserParams{
        Username: input.Username,
        Password: input.Password,
        Name:     input.Name,
    })
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
        return
    }

    accessToken, err := security.SignAccessToken(user.ID)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate access token"})
        return
    }

    refreshToken, err := security.SignRefreshToken(user.ID)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate refresh token"})
        return
    }

    expiresAt := time.Now().Add(7 * 24 * time.Hour)
    if err := Store.StoreRefreshToken(user.ID, refreshToken, expiresAt); err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store refresh token"})
        return
    }

    c.JSON(http.StatusCreated, gin.H{
        "user":         user,
        "accessToken":  accessToken,
        "refreshToken": refreshToken,
    })
}

type LoginInput struct {
    Username string `json:"username" binding:"required"`
    Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
    var input LoginInput
    if err := c.ShouldBindJSON(&input); err != nil {
        security.SendValidationError(c, "Invalid input data", err.Error())
        return
    }

    user, err := Store.GetUserByUsername(input.Username)
    if err != nil {
        security.SendDatabaseError(c, "Failed to fetch user")
        return
    }
    if user == nil || !user.IsActive || !store.VerifyPassword(user, input.Password) {
        c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
        return
    }

    if err := Store.TouchLastLogin(user.ID); err != nil {
        // Log error but don't fail login
        c.Header("X-Warning", "Failed to update last login timestamp")
    }

    accessToken, err := security.SignAccessToken(user.ID)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate access token"})
        return
    }

    refreshToken, err := security.SignRefreshToken(user.ID)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate refresh token"})
        return
    }

    expiresAt := time.Now().Add(7 * 24 * time.Hour)
    if err := Store.StoreRefreshToken(user.ID, refreshToken, expiresAt); err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store refresh token"})
        return
    }

    c.JSON(http.StatusOK, gin.H{
        "id":           user.ID,
        "username":     user.Username,
        "name":         user.Name,
        "role":         user.Role,
        "accessToken":  accessToken,
        "refreshToken": refreshToken,
        "tokenType":    "Bearer",
        "expiresIn":    900, // 15 minutes for access token
    })
}

type RefreshInput struct {
    RefreshToken string `json:"refresh_token" binding:"required"`
}

func Refresh(c *gin.Context) {
    var input RefreshInput
    if err := c.ShouldBindJSON(&input); err != nil {
        security.SendValidationError(c, "Invalid input data", err.Error())
        return
    }

    token, err := security.VerifyRefreshToken(input.RefreshToken)
    if err != nil || !token.Valid {
        c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
        return
    }

    claims := token.Claims.(jwt.MapClaims)
    userID := claims["sub"].(string)

    stored, err := Store.GetActiveRefreshToken(userID, input.RefreshToken)
    if err != nil {
        security.SendDatabaseError(c, "Failed to verify refresh token")
        return
    }
    if stored == nil {
        c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
        return
    }

    // Rotate: revoke old token before issuing a new pair
    if _, err := Store.RevokeRefreshToken(input.RefreshToken); err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke old token"})
        return
    }

    newAccessToken, err := security.SignAccessToken(userID)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate access token"})
        return
    }

    newRefreshToken, err := security.SignRefreshToken(userID)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate refresh token"})
        return
    }

    expiresAt := time.Now().Add(7 * 24 * time.Hour)
    if err := Store.StoreRefreshToken(userID, newRefreshToken, expiresAt); err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store refresh token"})
        return
    }

    user, err := Store.GetUserByID(userID)
    if err != nil {
        security.SendDatabaseError(c, "Failed to fetch user")
        return
    }
    if user == nil || !user.IsActive {
        c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
        return
    }

    c.JSON(http.StatusOK, gin.H{
        "id":           user.ID,
        "username":     user.Username,
        "name":         user.Name,
        "role":         user.Role,
        "accessToken":  newAccessToken,
        "refreshToken": newRefreshToken,
        "tokenType":    "Bearer",
        "expiresIn":    900,
    })
}

type LogoutInput struct {
    RefreshToken string `json:"refresh_token" binding:"required"`
}

func Logout(c *gin.Context) {
    var input LogoutInput
    if err := c.ShouldBindJSON(&input); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
        return
    }

    revoked, err := Store.RevokeRefreshToken(input.RefreshToken)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to logout"})
        return
    }
    if !revoked {
        c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid refresh token"})
        return
    }

    c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Profile management endpoints
func GetProfile(c *gin.Context) {
    userID := c.GetString("user_id")

    user, err := Store.GetUserByID(userID)
    if err != nil {
        security.SendDatabaseError(c, "Failed to fetch user")
        return
    }
    if user == nil {
        c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
        return
    }

    c.JSON(http.StatusOK, user)
}

type UpdateProfileInput struct {
    Name *string `json:"name" binding:"omitempty,min=2,max=100"`
}

func UpdateProfile(c *gin.Context) {
    userID := c.GetString("user_id")
    var input UpdateProfileInput
    if err := c.ShouldBindJSON(&input); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
        return
    }

    if input.Name == nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
        return
    }

    updated, err := Store.UpdateUser(userID, store.UserUpdate{Name: input.Name})
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
        return
    }
    if !updated {
        c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
        return
    }

    c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

type ChangePasswordInput struct {
    CurrentPassword string `json:"current_password" binding:"required"`
    NewPassword     string `json:"new_password" binding:"required,min=6"`
}

func ChangePassword(c *gin.Context) {
    userID := c.GetString("user_id")
    var input ChangePasswordInput
    if err := c.ShouldBindJSON(&input); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
        return
    }

    user, err := Store.GetUserByID(userID)
    if err != nil {
        security.SendDatabaseError(c, "Failed to fetch user")
        return
    }
    if user == nil {
        c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
        return
    }

    if !store.VerifyPassword(user, input.CurrentPassword) {
        c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
        return
    }

    if _, err := Store.UpdateUser(userID, store.UserUpdate{Password: &input.NewPassword}); err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
        return
    }

    c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
