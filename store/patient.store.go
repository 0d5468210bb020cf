package store

import (
    "database/sql"
    "fmt"
    "strconv"
    "time"

    "github.com/google/uuid"

    "github.com/PriyanshiVerma98/Rural-Health-Tracker/models"
)

// PatientIDPrefix is the fixed prefix of the human-readable patient identifier.
const PatientIDPrefix = "RH"

const patientColumns = `id, patient_id, name, date_of_birth, gender, age_group, phone, address, qr_code, created_by, created_at, updated_at`

// FormatPatientID renders a sequence number as the human-readable
// identifier, e.g. 1 -> "RH000001".
func FormatPatientID(seq int64) string {
    return fmt.Sprintf("%s%06d", PatientIDPrefix, seq)
}

// BuildQRCode builds the QR payload for a patient identifier. The epoch
// millisecond suffix keeps payloads unique even if an identifier were
// ever reissued.
func BuildQRCode(patientID string, createdAt time.Time) string {
    return fmt.Sprintf("%s_%s_%d", PatientIDPrefix, patientID, createdAt.UnixMilli())
}

func scanPatientRow(row *sql.Row) (*models.Patient, error) {
    var p models.Patient
    err := row.Scan(
        &p.ID, &p.PatientID, &p.Name, &p.DateOfBirth, &p.Gender, &p.AgeGroup,
        &p.Phone, &p.Address, &p.QRCode, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
    )
    if err == sql.ErrNoRows {
        return nil, nil
    }
    if err != nil {
        return nil, err
    }
    return &p, nil
}

func scanPatients(rows *sql.Rows) ([]models.Patient, error) {
    defer rows.Close()
    var patients []models.Patient
    for rows.Next() {
        var p models.Patient
        err := rows.Scan(
            &p.ID, &p.PatientID, &p.Name, &p.DateOfBirth, &p.Gender, &p.AgeGroup,
            &p.Phone, &p.Address, &p.QRCode, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
        )
        if err != nil {
            return nil, err
        }
        patients = append(patients, p)
    }
    return patients, rows.Err()
}

type CreatePatientParams struct {
    Name        string
    DateOfBirth *time.Time
    Gender      *string
    AgeGroup    *string
    Phone       *string
    Address     *string
    CreatedBy   *string
}

// CreatePatient assigns the server-generated identifiers: a sequential
// human-readable patient_id drawn from the patient_seq sequence (atomic,
// so concurrent creations cannot collide) and the QR payload derived
// from it. Both are immutable afterwards.
func (s *Store) CreatePatient(params CreatePatientParams) (*models.Patient, error) {
    var seq int64
    if err := s.DB.QueryRow(`SELECT nextval('patient_seq')`).Scan(&seq); err != nil {
        return nil, err
    }

    now := time.Now()
    p := models.Patient{
        ID:          uuid.NewString(),
        PatientID:   FormatPatientID(seq),
        Name:        params.Name,
        DateOfBirth: params.DateOfBirth,
        Gender:      params.Gender,
        AgeGroup:    params.AgeGroup,
        Phone:       params.Phone,
        Address:     params.Address,
        CreatedBy:   params.CreatedBy,
        CreatedAt:   now,
        UpdatedAt:   now,
    }
    p.QRCode = BuildQRCode(p.PatientID, now)

    _, err := s.DB.Exec(`
        INSERT INTO patients (id, patient_id, name, date_of_birth, gender, age_group, phone, address, qr_code, created_by, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    `, p.ID, p.PatientID, p.Name, p.DateOfBirth, p.Gender, p.AgeGroup, p.Phone, p.Address, p.QRCode, p.CreatedBy, p.CreatedAt, p.UpdatedAt)
    if err != nil {
        return nil, err
    }

    return &p, nil
}

func (s *Store) GetPatientByID(id string) (*models.Patient, error) {
    return scanPatientRow(s.DB.QueryRow(`SELECT `+patientColumns+` FROM patients WHERE id = $1`, id))
}

func (s *Store) GetPatientByPatientID(patientID string) (*models.Patient, error) {
    return scanPatientRow(s.DB.QueryRow(`SELECT `+patientColumns+` FROM patients WHERE patient_id = $1`, patientID))
}

func (s *Store) GetPatientByQRCode(qrCode string) (*models.Patient, error) {
    return scanPatientRow(s.DB.QueryRow(`SELECT `+patientColumns+` FROM patients WHERE qr_code = $1`, qrCode))
}

// SearchPatients does a case-insensitive partial match across name,
// phone and patient_id. Results are capped at 20 rows, name ascending.
func (s *Store) SearchPatients(query string) ([]models.Patient, error) {
    pattern := "%" + query + "%"
    rows, err := s.DB.Query(`
        SELECT `+patientColumns+` FROM patients
        WHERE name ILIKE $1 OR phone ILIKE $1 OR patient_id ILIKE $1
        ORDER BY name ASC
        LIMIT 20
    `, pattern)
    if err != nil {
        return nil, err
    }
    return scanPatients(rows)
}

// ListPatients returns patients newest-first. Non-positive limit falls
// back to 50, negative offset to 0.
func (s *Store) ListPatients(limit, offset int) ([]models.Patient, error) {
    if limit <= 0 {
        limit = 50
    }
    if offset < 0 {
        offset = 0
    }
    rows, err := s.DB.Query(`
        SELECT `+patientColumns+` FROM patients
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2
    `, limit, offset)
    if err != nil {
        return nil, err
    }
    return scanPatients(rows)
}

func (s *Store) CountPatients() (int, error) {
    var count int
    err := s.DB.QueryRow(`SELECT COUNT(*) FROM patients`).Scan(&count)
    return count, err
}

// PatientUpdate is a field mask. patient_id and qr_code are generated
// fields and can never be updated.
type PatientUpdate struct {
    Name        *string
    DateOfBirth *time.Time
    Gender      *string
    AgeGroup    *string
    Phone       *string
    Address     *string
}

func (s *Store) UpdatePatient(id string, update PatientUpdate) (bool, error) {
    query := "UPDATE patients SET updated_at = $1"
    args := []interface{}{time.Now()}
    argIndex := 2

    if update.Name != nil {
        query += ", name = $" + strconv.Itoa(argIndex)
        args = append(args, *update.Name)
        argIndex++
    }
    if update.DateOfBirth != nil {
        query += ", date_of_birth = $" + strconv.Itoa(argIndex)
        args = append(args, *update.DateOfBirth)
        argIndex++
    }
    if update.Gender != nil {
        query += ", gender = $" + strconv.Itoa(argIndex)
        args = append(args, *update.Gender)
        argIndex++
    }
    if update.AgeGroup != nil {
        query += ", age_group = $" + strconv.Itoa(argIndex)
        args = append(args, *update.AgeGroup)
        argIndex++
    }
    if update.Phone != nil {
        query += ", phone = $" + strconv.Itoa(argIndex)
        args = append(args, *update.Phone)
        argIndex++
    }
    if update.Address != nil {
        query += ", address = $" + strconv.Itoa(argIndex)
        args = append(args, *update.Address)
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
