package kvstore

import (
	"sync"

	"github.com/iecliberdade/ebdconectada/core/user"
)

type userRepository struct {
	db    *DB
	mu    sync.RWMutex
	users []user.User
}

func NewUserRepository(db *DB) user.Repository {
	repo := &userRepository{db: db}
	var stored []user.User
	if db.Load(keyUsers, &stored) {
		repo.users = stored
	} else {
		repo.users = user.Defaults()
	}
	return repo
}

func (repo *userRepository) persist() {
	repo.db.Save(keyUsers, repo.users)
}

func (repo *userRepository) QueryAll() ([]user.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	users := make([]user.User, len(repo.users))
	copy(users, repo.users)
	return users, nil
}

func (repo *userRepository) GetByID(id string) (user.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, usr := range repo.users {
		if usr.ID == id {
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) Create(usr user.User) (user.User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.users = append(repo.users, usr)
	repo.persist()
	return usr, nil
}

func (repo *userRepository) Update(usr user.User) (user.User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i := range repo.users {
		if repo.users[i].ID == usr.ID {
			repo.users[i] = usr
			repo.persist()
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) Delete(id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	kept := make([]user.User, 0, len(repo.users))
	for _, usr := range repo.users {
		if usr.ID != id {
			kept = append(kept, usr)
		}
	}
	repo.users = kept
	repo.persist()
	return nil
}
