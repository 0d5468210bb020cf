package store

import (
    "database/sql"
    "strconv"
    "time"

    "github.com/google/uuid"

    "github.com/PriyanshiVerma98/Rural-Health-Tracker/models"
)

const vaccineColumns = `id, name, age_group, doses_required, interval_days, description, is_active, created_at, updated_at`

func scanVaccineRow(row *sql.Row) (*models.Vaccine, error) {
    var v models.Vaccine
    err := row.Scan(
        &v.ID, &v.Name, &v.AgeGroup, &v.DosesRequired, &v.IntervalDays,
        &v.Description, &v.IsActive, &v.CreatedAt, &v.UpdatedAt,
    )
    if err == sql.ErrNoRows {
        return nil, nil
    }
    if err != nil {
        return nil, err
    }
    return &v, nil
}

type CreateVaccineParams struct {
    Name          string
    AgeGroup      string
    DosesRequired int
    IntervalDays  int
    Description   *string
}

func (s *Store) CreateVaccine(params CreateVaccineParams) (*models.Vaccine, error) {
    now := time.Now()
    v := models.Vaccine{
        ID:            uuid.NewString(),
        Name:          params.Name,
        AgeGroup:      params.AgeGroup,
        DosesRequired: params.DosesRequired,
        IntervalDays:  params.IntervalDays,
        Description:   params.Description,
        IsActive:      true,
        CreatedAt:     now,
        UpdatedAt:     now,
    }
    if v.DosesRequired <= 0 {
        v.DosesRequired = 1
    }

    _, err := s.DB.Exec(`
        INSERT INTO vaccines (id, name, age_group, doses_required, interval_days, description, is_active, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `, v.ID, v.Name, v.AgeGroup, v.DosesRequired, v.IntervalDays, v.Description, v.IsActive, v.CreatedAt, v.UpdatedAt)
    if err != nil {
        return nil, err
    }

    return &v, nil
}

func (s *Store) GetVaccineByID(id string) (*models.Vaccine, error) {
    return scanVaccineRow(s.DB.QueryRow(`SELECT `+vaccineColumns+` FROM vaccines WHERE id = $1`, id))
}

// ListActiveVaccines returns the active vaccine catalog, name ascending.
func (s *Store) ListActiveVaccines() ([]models.Vaccine, error) {
    rows, err := s.DB.Query(`SELECT ` + vaccineColumns + ` FROM vaccines WHERE is_active = true ORDER BY name ASC`)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var vaccines []models.Vaccine
    for rows.Next() {
        var v models.Vaccine
        err := rows.Scan(
            &v.ID, &v.Name, &v.AgeGroup, &v.DosesRequired, &v.IntervalDays,
            &v.Description, &v.IsActive, &v.CreatedAt, &v.UpdatedAt,
        )
        if err != nil {
            return nil, err
        }
        vaccines = append(vaccines, v)
    }
    return vaccines, rows.Err()
}

type VaccineUpdate struct {
    Name          *string
    AgeGroup      *string
    DosesRequired *int
    IntervalDays  *int
    Description   *string
    IsActive      *bool
}

func (s *Store) UpdateVaccine(id string, update VaccineUpdate) (bool, error) {
    query := "UPDATE vaccines SET updated_at = $1"
    args := []interface{}{time.Now()}
    argIndex := 2

    if update.Name != nil {
        query += ", name = $" + strconv.Itoa(argIndex)
        args = append(args, *update.Name)
        argIndex++
    }
    if update.AgeGroup != nil {
        query += ", age_group = $" + strconv.Itoa(argIndex)
        args = append(args, *update.AgeGroup)
        argIndex++
    }
    if update.DosesRequired != nil {
        query += ", doses_required = $" + strconv.Itoa(argIndex)
        args = append(args, *update.DosesRequired)
        argIndex++
    }
    if update.IntervalDays != nil {
        query += ", interval_days = $" + strconv.Itoa(argIndex)
        args = append(args, *update.IntervalDays)
        argIndex++
    }
    if update.Description != nil {
        query += ", description = $" + strconv.Itoa(argIndex)
        args = append(args, *update.Description)
        argIndex++
    }
    if update.IsActive != nil {
        query += ", is_active = $" + strconv.Itoa(argIndex)
        args = append(args, *update.IsActive)
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
