package routes

import (
    "github.com/gin-gonic/gin"

    "github.com/PriyanshiVerma98/Rural-Health-Tracker/config"
    "github.com/PriyanshiVerma98/Rural-Health-Tracker/controllers"
    "github.com/PriyanshiVerma98/Rural-Health-Tracker/security"
)

func RegisterRoutes(rg *gin.RouterGroup) {
    // Health check endpoint (no auth required)
    rg.GET("/health", controllers.HealthCheck)

    // Public auth endpoints
    auth := rg.Group("/auth")
    {
        auth.POST("/register", controllers.Register)
        auth.POST("/login", controllers.Login)
        auth.POST("/refresh", controllers.Refresh)
        auth.POST("/logout", controllers.Logout)
    }

    // Everything below requires a valid access token
    protected := rg.Group("")
    protected.Use(security.AuthMiddleware(config.DB))

    profile := protected.Group("/auth")
    {
        profile.GET("/profile", controllers.GetProfile)
        profile.PUT("/profile", controllers.UpdateProfile)
        profile.POST("/change-password", controllers.ChangePassword)
    }

    // User management (admin only)
    users := protected.Group("/users")
    users.Use(security.RequireRole("admin"))
    {
        users.GET("", controllers.GetUsers)
        users.GET("/:id", controllers.GetUser)
        users.PUT("/:id", controllers.UpdateUser)
    }

    // Patients
    patients := protected.Group("/patients")
    {
        patients.POST("", security.RequireRole("health_worker"), controllers.CreatePatient)
        patients.GET("", security.RequireRole("health_worker"), controllers.GetPatients)
        patients.GET("/search", security.RequireRole("health_worker"), controllers.SearchPatients)
        patients.GET("/qr", security.RequireRole("health_worker"), controllers.GetPatientByQR)
        patients.GET("/code/:patient_id", security.RequireRole("health_worker"), controllers.GetPatientByCode)
        patients.GET("/:id", security.RequireRole("health_worker"), controllers.GetPatient)
        patients.PUT("/:id", security.RequireRole("health_worker"), controllers.UpdatePatient)
    }

    // Vaccine catalog
    vaccines := protected.Group("/vaccines")
    {
        vaccines.POST("", security.RequireRole("admin"), controllers.CreateVaccine)
        vaccines.GET("", security.RequireRole("health_worker"), controllers.GetVaccines)
        vaccines.GET("/:id", security.RequireRole("health_worker"), controllers.GetVaccine)
        vaccines.PUT("/:id", security.RequireRole("admin"), controllers.UpdateVaccine)
    }

    // Vaccinations
    vaccinations := protected.Group("/vaccinations")
    {
        vaccinations.POST("", security.RequireRole("health_worker"), controllers.CreateVaccination)
        vaccinations.GET("", security.RequireRole("health_worker"), controllers.GetVaccinations)
        vaccinations.GET("/stats", security.RequireRole("health_worker"), controllers.GetVaccinationStats)
        vaccinations.GET("/:id", security.RequireRole("health_worker"), controllers.GetVaccination)
        vaccinations.PUT("/:id", security.RequireRole("health_worker"), controllers.UpdateVaccination)
    }

    // Appointments
    appointments := protected.Group("/appointments")
    {
        appointments.POST("", security.RequireRole("health_worker"), controllers.CreateAppointment)
        appointments.GET("", security.RequireRole("health_worker"), controllers.GetAppointments)
        appointments.GET("/today", security.RequireRole("health_worker"), controllers.GetTodaysAppointments)
        appointments.GET("/:id", security.RequireRole("health_worker"), controllers.GetAppointment)
        appointments.PUT("/:id", security.RequireRole("health_worker"), controllers.UpdateAppointment)
    }

    // Reports
    reports := protected.Group("/reports")
    {
        reports.GET("/dashboard", security.RequireRole("health_worker"), controllers.GetDashboardStats)
        reports.GET("/demographics", security.RequireRole("health_worker"), controllers.GetDemographicsReport)
        reports.GET("/monthly", security.RequireRole("health_worker"), controllers.GetMonthlyReport)
        reports.GET("/overdue", security.RequireRole("health_worker"), controllers.GetOverdueReport)
        reports.GET("/patients", security.RequireRole("health_worker"), controllers.ExportPatients)
        reports.GET("/vaccinations", security.RequireRole("health_worker"), controllers.ExportVaccinations)
    }
}
