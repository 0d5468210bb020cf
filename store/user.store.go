package store

import (
    "database/sql"
    "strconv"
    "time"

    "github.com/google/uuid"
    "golang.org/x/crypto/bcrypt"

    "github.com/PriyanshiVerma98/Rural-Health-Tracker/models"
)

const userColumns = `id, username, password_hash, name, role, is_active, last_login, created_at, updated_at`

func scanUser(row *sql.Row) (*models.User, error) {
    var user models.User
    err := row.Scan(
        &user.ID, &user.Username, &user.PasswordHash, &user.Name, &user.Role,
        &user.IsActive, &user.LastLogin, &user.CreatedAt, &user.UpdatedAt,
    )
    if err == sql.ErrNoRows {
        return nil, nil
    }
    if err != nil {
        return nil, err
    }
    return &user, nil
}

type CreateUserParams struct {
    Username string
    Password string
    Name     string
}

// NewUserRole decides the role a freshly created account receives:
// health_worker always, except that the very first account becomes
// admin. Admin is never grantable at creation time; existing admins
// promote accounts through UpdateUser.
func NewUserRole(existingUsers int) string {
    if existingUsers == 0 {
        return models.RoleAdmin
    }
    return models.RoleHealthWorker
}

// CreateUser hashes the password with bcrypt (cost 10) before persistence.
// The role is assigned by NewUserRole, never by the caller.
func (s *Store) CreateUser(params CreateUserParams) (*models.User, error) {
    passHash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
    if err != nil {
        return nil, err
    }

    count, err := s.CountUsers()
    if err != nil {
        return nil, err
    }

    role := NewUserRole(count)

    now := time.Now()
    user := models.User{
        ID:           uuid.NewString(),
        Username:     params.Username,
        PasswordHash: string(passHash),
        Name:         params.Name,
        Role:         role,
        IsActive:     true,
        CreatedAt:    now,
        UpdatedAt:    now,
    }

    _, err = s.DB.Exec(`
        INSERT INTO users (id, username, password_hash, name, role, is_active, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, user.ID, user.Username, user.PasswordHash, user.Name, user.Role, user.IsActive, user.CreatedAt, user.UpdatedAt)
    if err != nil {
        return nil, err
    }

    return &user, nil
}

func (s *Store) GetUserByID(id string) (*models.User, error) {
    return scanUser(s.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (s *Store) GetUserByUsername(username string) (*models.User, error) {
    return scanUser(s.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE username = $1`, username))
}

func (s *Store) ListUsers() ([]models.User, error) {
    rows, err := s.DB.Query(`SELECT ` + userColumns + ` FROM users ORDER BY name ASC`)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var users []models.User
    for rows.Next() {
        var user models.User
        err := rows.Scan(
            &user.ID, &user.Username, &user.PasswordHash, &user.Name, &user.Role,
            &user.IsActive, &user.LastLogin, &user.CreatedAt, &user.UpdatedAt,
        )
        if err != nil {
            return nil, err
        }
        users = append(users, user)
    }
    return users, rows.Err()
}

func (s *Store) CountUsers() (int, error) {
    var count int
    err := s.DB.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count)
    return count, err
}

// UserUpdate is a field mask: only non-nil fields are written.
type UserUpdate struct {
    Name     *string
    Password *string
    Role     *string
    IsActive *bool
}

// UpdateUser applies the mask and refreshes updated_at. A new password is
// re-hashed before storage. Returns false when no row matched.
func (s *Store) UpdateUser(id string, update UserUpdate) (bool, error) {
    query := "UPDATE users SET updated_at = $1"
    args := []interface{}{time.Now()}
    argIndex := 2

    if update.Name != nil {
        query += ", name = $" + strconv.Itoa(argIndex)
        args = append(args, *update.Name)
        argIndex++
    }
    if update.Password != nil {
        passHash, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
        if err != nil {
            return false, err
        }
        query += ", password_hash = $" + strconv.Itoa(argIndex)
        args = append(args, string(passHash))
        argIndex++
    }
    if update.Role != nil {
        query += ", role = $" + strconv.Itoa(argIndex)
        args = append(args, *update.Role)
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

// TouchLastLogin stamps last_login; failures are reported but non-fatal
// for callers.
func (s *Store) TouchLastLogin(id string) error {
    _, err := s.DB.Exec(`UPDATE users SET last_login = CURRENT_TIMESTAMP WHERE id = $1`, id)
    return err
}

// VerifyPassword checks a plaintext password against the stored hash.
func VerifyPassword(user *models.User, password string) bool {
    return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}
