package kvstore

import (
	"sync"

	"github.com/iecliberdade/ebdconectada/core/schedule"
)

type scheduleRepository struct {
	db    *DB
	mu    sync.RWMutex
	items []schedule.Item
}

func NewScheduleRepository(db *DB) schedule.Repository {
	repo := &scheduleRepository{db: db}
	var stored []schedule.Item
	if db.Load(keySchedules, &stored) {
		repo.items = stored
	} else {
		repo.items = schedule.Defaults()
	}
	return repo
}

func (repo *scheduleRepository) persist() {
	repo.db.Save(keySchedules, repo.items)
}

func (repo *scheduleRepository) QueryAll() ([]schedule.Item, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	items := make([]schedule.Item, len(repo.items))
	copy(items, repo.items)
	return items, nil
}

func (repo *scheduleRepository) GetByID(id string) (schedule.Item, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, item := range repo.items {
		if item.ID == id {
			return item, nil
		}
	}
	return schedule.Item{}, schedule.ErrNotFound
}

func (repo *scheduleRepository) Create(item schedule.Item) (schedule.Item, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.items = append(repo.items, item)
	repo.persist()
	return item, nil
}

func (repo *scheduleRepository) Update(item schedule.Item) (schedule.Item, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i := range repo.items {
		if repo.items[i].ID == item.ID {
			repo.items[i] = item
			repo.persist()
			return item, nil
		}
	}
	return schedule.Item{}, schedule.ErrNotFound
}

func (repo *scheduleRepository) Delete(id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	kept := make([]schedule.Item, 0, len(repo.items))
	for _, item := range repo.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	repo.items = kept
	repo.persist()
	return nil
}
