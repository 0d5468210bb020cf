package store

import (
    "testing"

    "github.com/PriyanshiVerma98/Rural-Health-Tracker/models"
)

func TestNewUserRoleFirstUserIsAdmin(t *testing.T) {
    if role := NewUserRole(0); role != models.RoleAdmin {
        t.Errorf("expected first user to be %s, got %s", models.RoleAdmin, role)
    }
}

func TestNewUserRoleNeverAdminAfterFirst(t *testing.T) {
    for _, existing := range []int{1, 2, 10, 500} {
        if role := NewUserRole(existing); role != models.RoleHealthWorker {
            t.Errorf("NewUserRole(%d) = %s, want %s", existing, role, models.RoleHealthWorker)
        }
    }
}
