package controllers

import (
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"

    "github.com/gin-gonic/gin"
)

func registerTestRouter() *gin.Engine {
    gin.SetMode(gin.TestMode)
    r := gin.New()
    r.POST("/api/auth/register", Register)
    return r
}

func TestRegisterRejectsAdminRole(t *testing.T) {
    r := registerTestRouter()

    // An anonymous caller must not be able to register an admin
    // account. Validation rejects the payload before any user is
    // created.
    body := `{"username":"attacker","password":"secret1","name":"Attacker","role":"admin"}`
    req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
    req.Header.Set("Content-Type", "application/json")
    rec := httptest.NewRecorder()
    r.ServeHTTP(rec, req)

    if rec.Code != http.StatusBadRequest {
        t.Errorf("expected 400 for admin role in registration, got %d", rec.Code)
    }
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
    r := registerTestRouter()

    body := `{"username":"someone","password":"secret1","name":"Someone","role":"superuser"}`
    req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
    req.Header.Set("Content-Type", "application/json")
    rec := httptest.NewRecorder()
    r.ServeHTTP(rec, req)

    if rec.Code != http.StatusBadRequest {
        t.Errorf("expected 400 for unknown role, got %d", rec.Code)
    }
}

func TestRegisterRejectsShortPassword(t *testing.T) {
    r := registerTestRouter()

    body := `{"username":"worker","password":"abc","name":"Worker"}`
    req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
    req.Header.Set("Content-Type", "application/json")
    rec := httptest.NewRecorder()
    r.ServeHTTP(rec, req)

    if rec.Code != http.StatusBadRequest {
        t.Errorf("expected 400 for short password, got %d", rec.Code)
    }
}
