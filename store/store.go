package store

import (
    "database/sql"
    "time"
)

// Store is the data access facade. Every method issues a single query
// (or one small fixed join) against Postgres. Absence of a row is a
// normal outcome and is returned as nil, not as an error.
type Store struct {
    DB *sql.DB
}

func New(db *sql.DB) *Store {
    return &Store{DB: db}
}

// TodayUTC returns the current date truncated to UTC midnight. Due and
// overdue classification compare scheduled dates against this value.
func TodayUTC() time.Time {
    now := time.Now().UTC()
    return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// DateParam renders a time as the YYYY-MM-DD literal used when
// comparing against DATE columns. Binding a timestamp parameter
// instead would resolve through the session TimeZone and could shift
// the day boundary on a non-UTC server.
func DateParam(t time.Time) string {
    return t.Format("2006-01-02")
}
