package config

import (
    "database/sql"
    "fmt"
    _ "github.com/lib/pq"
    "os"
    "time"

    "github.com/PriyanshiVerma98/Rural-Health-Tracker/logger"
)

var DB *sql.DB

func ConnectDB() {
    dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
        os.Getenv("DB_HOST"),
        os.Getenv("DB_PORT"),
        os.Getenv("DB_USER"),
        os.Getenv("DB_PASSWORD"),
        os.Getenv("DB_NAME"),
    )

    db, err := sql.Open("postgres", dsn)
    if err != nil {
        logger.Log.WithError(err).Fatal("DB connection error")
    }

    // Configure connection pool
    db.SetMaxOpenConns(25)
    db.SetMaxIdleConns(5)
    db.SetConnMaxLifetime(5 * time.Minute)

    err = db.Ping()
    if err != nil {
        logger.Log.WithError(err).Fatal("DB ping error")
    }

    DB = db
    logger.Log.Info("Connected to Postgres with connection pooling")
}
