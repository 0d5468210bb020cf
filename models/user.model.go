package models

import (
    "time"
)

const (
    RoleAdmin        = "admin"
    RoleHealthWorker = "health_worker"
)

type User struct {
    ID           string     `json:"id" db:"id"`
    Username     string     `json:"username" db:"username"`
    PasswordHash string     `json:"-" db:"password_hash"`
    Name         string     `json:"name" db:"name"`
    Role         string     `json:"role" db:"role"`
    IsActive     bool       `json:"is_active" db:"is_active"`
    LastLogin    *time.Time `json:"last_login" db:"last_login"`
    CreatedAt    time.Time  `json:"created_at" db:"created_at"`
    UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

type RefreshToken struct {
    ID        string     `json:"id" db:"id"`
    UserID    string     `json:"user_id" db:"user_id"`
    Token     string     `json:"token" db:"token"`
    ExpiresAt time.Time  `json:"expires_at" db:"expires_at"`
    CreatedAt time.Time  `json:"created_at" db:"created_at"`
    RevokedAt *time.Time `json:"revoked_at" db:"revoked_at"`
}
