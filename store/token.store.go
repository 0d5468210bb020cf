package store

import (
    "database/sql"
    "time"

    "github.com/google/uuid"

    "github.com/PriyanshiVerma98/Rural-Health-Tracker/models"
)

func (s *Store) StoreRefreshToken(userID, token string, expiresAt time.Time) error {
    _, err := s.DB.Exec(`
        INSERT INTO refresh_tokens (id, user_id, token, expires_at, created_at)
        VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
    `, uuid.NewString(), userID, token, expiresAt)
    return err
}

// GetActiveRefreshToken returns the unexpired, unrevoked token row for
// the user/token pair, or nil.
func (s *Store) GetActiveRefreshToken(userID, token string) (*models.RefreshToken, error) {
    var rt models.RefreshToken
    err := s.DB.QueryRow(`
        SELECT id, user_id, token, expires_at, created_at, revoked_at
        FROM refresh_tokens
        WHERE user_id = $1 AND token = $2 AND expires_at > CURRENT_TIMESTAMP AND revoked_at IS NULL
    `, userID, token).Scan(&rt.ID, &rt.UserID, &rt.Token, &rt.ExpiresAt, &rt.CreatedAt, &rt.RevokedAt)
    if err == sql.ErrNoRows {
        return nil, nil
    }
    if err != nil {
        return nil, err
    }
    return &rt, nil
}

// RevokeRefreshToken marks the token revoked. Returns false when the
// token was not found.
func (s *Store) RevokeRefreshToken(token string) (bool, error) {
    result, err := s.DB.Exec(`UPDATE refresh_tokens SET revoked_at = CURRENT_TIMESTAMP WHERE token = $1 AND revoked_at IS NULL`, token)
    if err != nil {
        return false, err
    }
    rowsAffected, err := result.RowsAffected()
    if err != nil {
        return false, err
    }
    return rowsAffected > 0, nil
}
