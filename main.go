package main

import (
    "context"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/gin-gonic/gin"

    "github.com/PriyanshiVerma98/Rural-Health-Tracker/config"
    "github.com/PriyanshiVerma98/Rural-Health-Tracker/controllers"
    "github.com/PriyanshiVerma98/Rural-Health-Tracker/logger"
    "github.com/PriyanshiVerma98/Rural-Health-Tracker/routes"
    "github.com/PriyanshiVerma98/Rural-Health-Tracker/security"
    "github.com/PriyanshiVerma98/Rural-Health-Tracker/store"
)

func main() {
    logger.Init()
    config.ConnectDB()
    controllers.Init(store.New(config.DB))

    r := gin.Default()
    r.Use(security.CORSMiddleware())

    api := r.Group("/api")
    routes.RegisterRoutes(api)

    port := os.Getenv("PORT")
    if port == "" {
        port = "8080"
    }

    srv := &http.Server{
        Addr:    ":" + port,
        Handler: r,
    }

    // Start server in a goroutine
    go func() {
        logger.WithField("port", port).Info("Rural health tracker starting")
        if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            logger.Log.WithError(err).Fatal("Failed to start server")
        }
    }()

    // Wait for interrupt signal to gracefully shutdown the server
    quit := make(chan os.Signal, 1)
    signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
    <-quit
    logger.Log.Info("Shutting down server...")

    // Give outstanding requests 30 seconds to complete
    ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()

    if err := srv.Shutdown(ctx); err != nil {
        logger.Log.WithError(err).Fatal("Server forced to shutdown")
    }

    logger.Log.Info("Server exited")
}
