// Package auth gates the admin view: it checks credentials against the
// fixed administrator identity and the users collection, and keeps the
// authenticated actor in the session store.
//
// Credentials are stored and compared as plain text. This reproduces the
// legacy site's behavior and is a known security gap; hashing would change
// the persisted storage format.
package auth

import (
	"errors"
	"strings"

	"github.com/iecliberdade/ebdconectada/core"
	"github.com/iecliberdade/ebdconectada/core/user"
)

var (
	// errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrNoSession          = errors.New("no authenticated actor")
)

type (
	// SessionRepository persists the currently authenticated actor,
	// separately from the users collection.
	SessionRepository interface {
		Get() (user.User, error)
		Save(usr user.User) error
		Clear() error
	}

	Service struct {
		users    user.Repository
		sessions SessionRepository
	}
)

func NewService(users user.Repository, sessions SessionRepository) *Service {
	return &Service{users: users, sessions: sessions}
}

// Authenticate evaluates a single login attempt. The fixed administrator
// credential is checked first and never consults the users collection;
// otherwise the identifier must match a user's email case-insensitively
// and the secret must match that user's password exactly. Inactive
// accounts cannot log in. On success the actor is persisted as the
// current session.
func (svc *Service) Authenticate(identifier, secret string) (user.User, error) {
	id := core.CleanString(identifier, true /* lower */)

	if isAdminLogin(id) && secret == core.Conf.GetString("adminSecret") {
		admin := adminUser()
		if err := svc.sessions.Save(admin); err != nil {
			return user.User{}, err
		}
		return admin, nil
	}

	users, err := svc.users.QueryAll()
	if err != nil {
		return user.User{}, err
	}
	for _, u := range users {
		if strings.ToLower(u.Email) != id {
			continue
		}
		if !u.Password.Valid || u.Password.String != secret {
			continue
		}
		if u.Status == user.StatusInactive {
			return user.User{}, ErrAccountDisabled
		}
		if err := svc.sessions.Save(u); err != nil {
			return user.User{}, err
		}
		return u, nil
	}
	return user.User{}, ErrInvalidCredentials
}

// Current returns the persisted actor, or ErrNoSession.
func (svc *Service) Current() (user.User, error) {
	return svc.sessions.Get()
}

// Logout clears the in-memory actor and its storage entry.
func (svc *Service) Logout() error {
	return svc.sessions.Clear()
}

func isAdminLogin(id string) bool {
	for _, login := range core.Conf.GetStringSlice("adminLogins") {
		if id == login {
			return true
		}
	}
	return false
}

// adminUser builds the configuration-time administrator identity.
func adminUser() user.User {
	return user.User{
		ID:     "admin",
		Name:   core.Conf.GetString("adminName"),
		Email:  core.Conf.GetString("adminEmail"),
		Role:   user.RoleAdmin,
		Status: user.StatusActive,
	}
}
