//go:build unit || e2e

package authtest

import (
	"testing"

	"travel-booking/internal/domain/user"
	"travel-booking/tests/common/dbtest"

	"github.com/google/uuid"
)

// CreateAndAuthorize mirrors an account into users and returns a bearer token for it.
func CreateAndAuthorize(t *testing.T, db dbtest.DBLike, h *JWTHelper, email string, role user.Role) (uuid.UUID, string) {
	t.Helper()
	userID := dbtest.CreateTestUser(t, db, email, role.String())
	return userID, h.GenerateToken(t, userID, role)
}
