package store

import (
    "database/sql"
    "strconv"
    "time"

    "github.com/google/uuid"

    "github.com/PriyanshiVerma98/Rural-Health-Tracker/models"
)

const vaccinationJoin = `
    SELECT v.id, v.patient_id, v.vaccine_id, v.dose_number, v.scheduled_date, v.administered_date,
           v.administered_by, v.status, v.notes, v.created_at, v.updated_at,
           p.name, p.patient_id, vc.name, vc.doses_required
    FROM vaccinations v
    JOIN patients p ON p.id = v.patient_id
    JOIN vaccines vc ON vc.id = v.vaccine_id
`

func scanVaccinationDetails(rows *sql.Rows) ([]models.VaccinationWithDetails, error) {
    defer rows.Close()
    var vaccinations []models.VaccinationWithDetails
    for rows.Next() {
        var v models.VaccinationWithDetails
        err := rows.Scan(
            &v.ID, &v.PatientID, &v.VaccineID, &v.DoseNumber, &v.ScheduledDate, &v.AdministeredDate,
            &v.AdministeredBy, &v.Status, &v.Notes, &v.CreatedAt, &v.UpdatedAt,
            &v.PatientName, &v.PatientCode, &v.VaccineName, &v.VaccineDoses,
        )
        if err != nil {
            return nil, err
        }
        vaccinations = append(vaccinations, v)
    }
    return vaccinations, rows.Err()
}

type CreateVaccinationParams struct {
    PatientID     string
    VaccineID     string
    DoseNumber    int
    ScheduledDate *time.Time
    Notes         *string
}

func (s *Store) CreateVaccination(params CreateVaccinationParams) (*models.Vaccination, error) {
    now := time.Now()
    v := models.Vaccination{
        ID:            uuid.NewString(),
        PatientID:     params.PatientID,
        VaccineID:     params.VaccineID,
        DoseNumber:    params.DoseNumber,
        ScheduledDate: params.ScheduledDate,
        Status:        models.VaccinationScheduled,
        Notes:         params.Notes,
        CreatedAt:     now,
        UpdatedAt:     now,
    }
    if v.DoseNumber <= 0 {
        v.DoseNumber = 1
    }

    _, err := s.DB.Exec(`
        INSERT INTO vaccinations (id, patient_id, vaccine_id, dose_number, scheduled_date, status, notes, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `, v.ID, v.PatientID, v.VaccineID, v.DoseNumber, v.ScheduledDate, v.Status, v.Notes, v.CreatedAt, v.UpdatedAt)
    if err != nil {
        return nil, err
    }

    return &v, nil
}

func (s *Store) GetVaccinationByID(id string) (*models.Vaccination, error) {
    var v models.Vaccination
    err := s.DB.QueryRow(`
        SELECT id, patient_id, vaccine_id, dose_number, scheduled_date, administered_date,
               administered_by, status, notes, created_at, updated_at
        FROM vaccinations WHERE id = $1
    `, id).Scan(
        &v.ID, &v.PatientID, &v.VaccineID, &v.DoseNumber, &v.ScheduledDate, &v.AdministeredDate,
        &v.AdministeredBy, &v.Status, &v.Notes, &v.CreatedAt, &v.UpdatedAt,
    )
    if err == sql.ErrNoRows {
        return nil, nil
    }
    if err != nil {
        return nil, err
    }
    return &v, nil
}

// ListVaccinations returns all vaccinations with patient and vaccine
// details joined, newest-first.
func (s *Store) ListVaccinations() ([]models.VaccinationWithDetails, error) {
    rows, err := s.DB.Query(vaccinationJoin + ` ORDER BY v.created_at DESC`)
    if err != nil {
        return nil, err
    }
    return scanVaccinationDetails(rows)
}

func (s *Store) GetVaccinationsByPatient(patientID string) ([]models.VaccinationWithDetails, error) {
    rows, err := s.DB.Query(vaccinationJoin+` WHERE v.patient_id = $1 ORDER BY v.created_at DESC`, patientID)
    if err != nil {
        return nil, err
    }
    return scanVaccinationDetails(rows)
}

// VaccinationUpdate is a field mask. Completing a vaccination sets
// status, administered_date and administered_by together.
type VaccinationUpdate struct {
    Status           *string
    ScheduledDate    *time.Time
    AdministeredDate *time.Time
    AdministeredBy   *string
    Notes            *string
}

func (s *Store) UpdateVaccination(id string, update VaccinationUpdate) (bool, error) {
    query := "UPDATE vaccinations SET updated_at = $1"
    args := []interface{}{time.Now()}
    argIndex := 2

    if update.Status != nil {
        query += ", status = $" + strconv.Itoa(argIndex)
        args = append(args, *update.Status)
        argIndex++
    }
    if update.ScheduledDate != nil {
        query += ", scheduled_date = $" + strconv.Itoa(argIndex)
        args = append(args, *update.ScheduledDate)
        argIndex++
    }
    if update.AdministeredDate != nil {
        query += ", administered_date = $" + strconv.Itoa(argIndex)
        args = append(args, *update.AdministeredDate)
        argIndex++
    }
    if update.AdministeredBy != nil {
        query += ", administered_by = $" + strconv.Itoa(argIndex)
        args = append(args, *update.AdministeredBy)
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

// GetVaccinationStats counts completed (all time), due (scheduled today
// or later) and overdue (scheduled strictly before today) vaccinations.
// Today is the current date at UTC midnight; rows with no scheduled
// date never count as due or overdue.
func (s *Store) GetVaccinationStats() (models.VaccinationStats, error) {
    today := DateParam(TodayUTC())

    var stats models.VaccinationStats
    err := s.DB.QueryRow(`
        SELECT
            COUNT(CASE WHEN status = 'completed' THEN 1 END) as completed,
            COUNT(CASE WHEN status = 'scheduled' AND scheduled_date >= $1::date THEN 1 END) as due,
            COUNT(CASE WHEN status = 'scheduled' AND scheduled_date < $1::date THEN 1 END) as overdue
        FROM vaccinations
    `, today).Scan(&stats.Completed, &stats.Due, &stats.Overdue)
    if err != nil {
        return models.VaccinationStats{}, err
    }
    return stats, nil
}
