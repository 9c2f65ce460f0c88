package kvstore

import (
	"sync"

	"github.com/iecliberdade/ebdconectada/core/auth"
	"github.com/iecliberdade/ebdconectada/core/user"
)

type sessionRepository struct {
	db      *DB
	mu      sync.RWMutex
	current *user.User
}

func NewSessionRepository(db *DB) auth.SessionRepository {
	repo := &sessionRepository{db: db}
	var stored user.User
	if db.Load(keySession, &stored) {
		repo.current = &stored
	}
	return repo
}

func (repo *sessionRepository) Get() (user.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if repo.current == nil {
		return user.User{}, auth.ErrNoSession
	}
	return *repo.current, nil
}

func (repo *sessionRepository) Save(usr user.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.current = &usr
	repo.db.Save(keySession, usr)
	return nil
}

func (repo *sessionRepository) Clear() error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.current = nil
	repo.db.Delete(keySession)
	return nil
}
