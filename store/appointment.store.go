package store

import (
    "database/sql"
    "strconv"
    "time"

    "github.com/google/uuid"

    "github.com/PriyanshiVerma98/Rural-Health-Tracker/models"
)

const appointmentJoin = `
    SELECT a.id, a.patient_id, a.vaccination_id, a.appointment_date, a.appointment_time,
           a.status, a.type, a.notes, a.created_by, a.created_at, a.updated_at,
           p.name, p.patient_id
    FROM appointments a
    JOIN patients p ON p.id = a.patient_id
`

func scanAppointments(rows *sql.Rows) ([]models.AppointmentWithPatient, error) {
    defer rows.Close()
    var appointments []models.AppointmentWithPatient
    for rows.Next() {
        var a models.AppointmentWithPatient
        err := rows.Scan(
            &a.ID, &a.PatientID, &a.VaccinationID, &a.AppointmentDate, &a.AppointmentTime,
            &a.Status, &a.Type, &a.Notes, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt,
            &a.PatientName, &a.PatientCode,
        )
        if err != nil {
            return nil, err
        }
        appointments = append(appointments, a)
    }
    return appointments, rows.Err()
}

type CreateAppointmentParams struct {
    PatientID       string
    VaccinationID   *string
    AppointmentDate time.Time
    AppointmentTime string
    Type            string
    Notes           *string
    CreatedBy       *string
}

func (s *Store) CreateAppointment(params CreateAppointmentParams) (*models.Appointment, error) {
    now := time.Now()
    a := models.Appointment{
        ID:              uuid.NewString(),
        PatientID:       params.PatientID,
        VaccinationID:   params.VaccinationID,
        AppointmentDate: params.AppointmentDate,
        AppointmentTime: params.AppointmentTime,
        Status:          models.AppointmentScheduled,
        Type:            params.Type,
        Notes:           params.Notes,
        CreatedBy:       params.CreatedBy,
        CreatedAt:       now,
        UpdatedAt:       now,
    }
    if a.Type == "" {
        a.Type = "routine"
    }

    _, err := s.DB.Exec(`
        INSERT INTO appointments (id, patient_id, vaccination_id, appointment_date, appointment_time, status, type, notes, created_by, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `, a.ID, a.PatientID, a.VaccinationID, a.AppointmentDate, a.AppointmentTime, a.Status, a.Type, a.Notes, a.CreatedBy, a.CreatedAt, a.UpdatedAt)
    if err != nil {
        return nil, err
    }

    return &a, nil
}

func (s *Store) GetAppointmentByID(id string) (*models.Appointment, error) {
    var a models.Appointment
    err := s.DB.QueryRow(`
        SELECT id, patient_id, vaccination_id, appointment_date, appointment_time,
               status, type, notes, created_by, created_at, updated_at
        FROM appointments WHERE id = $1
    `, id).Scan(
        &a.ID, &a.PatientID, &a.VaccinationID, &a.AppointmentDate, &a.AppointmentTime,
        &a.Status, &a.Type, &a.Notes, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt,
    )
    if err == sql.ErrNoRows {
        return nil, nil
    }
    if err != nil {
        return nil, err
    }
    return &a, nil
}

func (s *Store) ListAppointments() ([]models.AppointmentWithPatient, error) {
    rows, err := s.DB.Query(appointmentJoin + ` ORDER BY a.appointment_date DESC, a.appointment_time ASC`)
    if err != nil {
        return nil, err
    }
    return scanAppointments(rows)
}

// GetAppointmentsByDate matches appointments on the target date,
// ordered by appointment time ascending. The date crosses the wire as
// a YYYY-MM-DD literal so the session time zone cannot move it.
func (s *Store) GetAppointmentsByDate(date time.Time) ([]models.AppointmentWithPatient, error) {
    rows, err := s.DB.Query(appointmentJoin+` WHERE a.appointment_date = $1::date ORDER BY a.appointment_time ASC`, DateParam(date))
    if err != nil {
        return nil, err
    }
    return scanAppointments(rows)
}

func (s *Store) GetTodaysAppointments() ([]models.AppointmentWithPatient, error) {
    return s.GetAppointmentsByDate(TodayUTC())
}

type AppointmentUpdate struct {
    AppointmentDate *time.Time
    AppointmentTime *string
    Status          *string
    Type            *string
    Notes           *string
}

func (s *Store) UpdateAppointment(id string, update AppointmentUpdate) (bool, error) {
    query := "UPDATE appointments SET updated_at = $1"
    args := []interface{}{time.Now()}
    argIndex := 2

    if update.AppointmentDate != nil {
        query += ", appointment_date = $" + strconv.Itoa(argIndex)
        args = append(args, *update.AppointmentDate)
        argIndex++
    }
    if update.AppointmentTime != nil {
        query += ", appointment_time = $" + strconv.Itoa(argIndex)
        args = append(args, *update.AppointmentTime)
        argIndex++
    }
    if update.Status != nil {
        query += ", status = $" + strconv.Itoa(argIndex)
        args = append(args, *update.Status)
        argIndex++
    }
    if update.Type != nil {
        query += ", type = $" + strconv.Itoa(argIndex)
        args = append(args, *update.Type)
        argIndex++
    }
    if update.Notes != nil {
        query += ", notes = $" + strconv.Itoa(argIndex)
        args = append(args, *update.Notes)
        argIndex++
    }

    query += " WHERE id = $" + strconv.Itoa(argIndex)
    args = append(args, id)

    result, err := s.DB.Exec(query, args...)
    if err != nil {
        return false, err
    }
    rowsAffected, err := result.RowsAffected()
    if err != nil {
        return false, err
    }
    return rowsAffected > 0, nil
}
