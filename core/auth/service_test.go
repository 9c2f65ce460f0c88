package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iecliberdade/ebdconectada/core/auth"
	"github.com/iecliberdade/ebdconectada/core/user"
	"github.com/iecliberdade/ebdconectada/storage/kvstore"
	"github.com/iecliberdade/ebdconectada/tests"
)

func newService(t *testing.T) (*auth.Service, *kvstore.DB) {
	t.Helper()

	db := testutil.NewDB(t)
	svc := auth.NewService(kvstore.NewUserRepository(db), kvstore.NewSessionRepository(db))
	return svc, db
}

func TestAuthenticateAdmin(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
	}{
		{name: "short login", identifier: "admin"},
		{name: "email login", identifier: "admin@iecl.com"},
		{name: "identifier is trimmed and lowercased", identifier: "  ADMIN  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t)

			usr, err := svc.Authenticate(tt.identifier, "Rebegio05@")
			require.NoError(t, err)
			assert.Equal(t, user.RoleAdmin, usr.Role)
			assert.Equal(t, "Administrador", usr.Name)

			current, err := svc.Current()
			require.NoError(t, err)
			assert.Equal(t, usr, current)
		})
	}
}

func TestAuthenticateAdminWrongSecret(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Authenticate("admin", "rebegio05@")
	assert.Equal(t, auth.ErrInvalidCredentials, err)

	_, err = svc.Current()
	assert.Equal(t, auth.ErrNoSession, err)
}

func TestAuthenticateUser(t *testing.T) {
	svc, _ := newService(t)

	// email match is case-insensitive; the password is not
	usr, err := svc.Authenticate("ALUNO@teste.com", "123")
	require.NoError(t, err)
	assert.Equal(t, "u1", usr.ID)

	_, err = svc.Authenticate("aluno@teste.com", "1234")
	assert.Equal(t, auth.ErrInvalidCredentials, err)
}

func TestAuthenticatePendingUser(t *testing.T) {
	svc, _ := newService(t)

	// pending accounts may still log in; only inactive ones are blocked
	usr, err := svc.Authenticate("maria@teste.com", "123")
	require.NoError(t, err)
	assert.Equal(t, user.StatusPending, usr.Status)
}

func TestAuthenticateInactiveUser(t *testing.T) {
	db := testutil.NewDB(t)
	users := kvstore.NewUserRepository(db)
	testutil.CreateUser(t, users, "Carlos", "carlos@teste.com", "abc", user.RoleTeacher, user.StatusInactive)
	svc := auth.NewService(users, kvstore.NewSessionRepository(db))

	_, err := svc.Authenticate("carlos@teste.com", "abc")
	assert.Equal(t, auth.ErrAccountDisabled, err)
}

func TestAuthenticatePasswordlessUserNeverMatches(t *testing.T) {
	db := testutil.NewDB(t)
	users := kvstore.NewUserRepository(db)
	testutil.CreateUser(t, users, "Sem Senha", "semsenha@teste.com", "", user.RoleStudent, user.StatusActive)
	svc := auth.NewService(users, kvstore.NewSessionRepository(db))

	_, err := svc.Authenticate("semsenha@teste.com", "")
	assert.Equal(t, auth.ErrInvalidCredentials, err)
}

func TestSessionSurvivesRestart(t *testing.T) {
	svc, db := newService(t)

	usr, err := svc.Authenticate("aluno@teste.com", "123")
	require.NoError(t, err)

	restarted := auth.NewService(kvstore.NewUserRepository(db), kvstore.NewSessionRepository(db))
	current, err := restarted.Current()
	require.NoError(t, err)
	assert.Equal(t, usr, current)
}

func TestLogout(t *testing.T) {
	svc, db := newService(t)

	_, err := svc.Authenticate("admin", "Rebegio05@")
	require.NoError(t, err)
	require.NoError(t, svc.Logout())

	_, err = svc.Current()
	assert.Equal(t, auth.ErrNoSession, err)

	// the stored session entry is gone too
	_, err = kvstore.NewSessionRepository(db).Get()
	assert.Equal(t, auth.ErrNoSession, err)
}
