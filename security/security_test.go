package security

import (
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/gin-gonic/gin"
    "github.com/golang-jwt/jwt/v5"
)

func TestSignAndVerifyRefreshToken(t *testing.T) {
    t.Setenv("JWT_REFRESH_SECRET", "test-refresh-secret")

    token, err := SignRefreshToken("user-123")
    if err != nil {
        t.Fatalf("failed to sign refresh token: %v", err)
    }

    parsed, err := VerifyRefreshToken(token)
    if err != nil {
        t.Fatalf("failed to verify refresh token: %v", err)
    }

    claims := parsed.Claims.(jwt.MapClaims)
    if claims["sub"] != "user-123" {
        t.Errorf("expected sub user-123, got %v", claims["sub"])
    }
    if claims["type"] != "refresh" {
        t.Errorf("expected type refresh, got %v", claims["type"])
    }
}

func TestVerifyRefreshTokenRejectsAccessToken(t *testing.T) {
    t.Setenv("JWT_ACCESS_SECRET", "same-secret")
    t.Setenv("JWT_REFRESH_SECRET", "same-secret")

    // Even with identical secrets the type claim must not pass
    accessToken, err := SignAccessToken("user-123")
    if err != nil {
        t.Fatalf("failed to sign access token: %v", err)
    }

    if _, err := VerifyRefreshToken(accessToken); err == nil {
        t.Fatal("expected access token to be rejected as refresh token")
    }
}

func TestSignAccessTokenRequiresSecret(t *testing.T) {
    t.Setenv("JWT_ACCESS_SECRET", "")

    if _, err := SignAccessToken("user-123"); err == nil {
        t.Fatal("expected error when secret is not set")
    }
}

func authTestRouter() *gin.Engine {
    gin.SetMode(gin.TestMode)
    r := gin.New()
    r.Use(AuthMiddleware(nil))
    r.GET("/protected", func(c *gin.Context) {
        c.JSON(http.StatusOK, gin.H{"ok": true})
    })
    return r
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
    r := authTestRouter()

    req := httptest.NewRequest(http.MethodGet, "/protected", nil)
    rec := httptest.NewRecorder()
    r.ServeHTTP(rec, req)

    if rec.Code != http.StatusUnauthorized {
        t.Errorf("expected 401, got %d", rec.Code)
    }
}

func TestAuthMiddlewareMalformedToken(t *testing.T) {
    t.Setenv("JWT_ACCESS_SECRET", "test-access-secret")
    r := authTestRouter()

    req := httptest.NewRequest(http.MethodGet, "/protected", nil)
    req.Header.Set("Authorization", "Bearer not-a-jwt")
    rec := httptest.NewRecorder()
    r.ServeHTTP(rec, req)

    if rec.Code != http.StatusUnauthorized {
        t.Errorf("expected 401, got %d", rec.Code)
    }
}

func TestRequireRoleAdminBypass(t *testing.T) {
    gin.SetMode(gin.TestMode)
    r := gin.New()
    r.Use(func(c *gin.Context) {
        c.Set("user_id", "u1")
        c.Set("user_role", "admin")
    })
    r.GET("/admin-or-worker", RequireRole("health_worker"), func(c *gin.Context) {
        c.JSON(http.StatusOK, gin.H{"ok": true})
    })

    req := httptest.NewRequest(http.MethodGet, "/admin-or-worker", nil)
    rec := httptest.NewRecorder()
    r.ServeHTTP(rec, req)

    if rec.Code != http.StatusOK {
        t.Errorf("expected admin to pass role check, got %d", rec.Code)
    }
}

func TestRequireRoleRejectsWrongRole(t *testing.T) {
    gin.SetMode(gin.TestMode)
    r := gin.New()
    r.Use(func(c *gin.Context) {
        c.Set("user_id", "u1")
        c.Set("user_role", "health_worker")
    })
    r.GET("/admin-only", RequireRole("admin"), func(c *gin.Context) {
        c.JSON(http.StatusOK, gin.H{"ok": true})
    })

    req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
    rec := httptest.NewRecorder()
    r.ServeHTTP(rec, req)

    if rec.Code != http.StatusForbidden {
        t.Errorf("expected 403, got %d", rec.Code)
    }
}
