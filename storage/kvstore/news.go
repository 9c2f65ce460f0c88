package kvstore

import (
	"sync"

	"github.com/iecliberdade/ebdconectada/core/news"
)

type newsRepository struct {
	db    *DB
	mu    sync.RWMutex
	items []news.Item
}

func NewNewsRepository(db *DB) news.Repository {
	repo := &newsRepository{db: db}
	var stored []news.Item
	if db.Load(keyNews, &stored) {
		repo.items = stored
	} else {
		repo.items = news.Defaults()
	}
	return repo
}

func (repo *newsRepository) persist() {
	repo.db.Save(keyNews, repo.items)
}

func (repo *newsRepository) QueryAll() ([]news.Item, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	items := make([]news.Item, len(repo.items))
	copy(items, repo.items)
	return items, nil
}

func (repo *newsRepository) GetByID(id string) (news.Item, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, item := range repo.items {
		if item.ID == id {
			return item, nil
		}
	}
	return news.Item{}, news.ErrNotFound
}

func (repo *newsRepository) Create(item news.Item) (news.Item, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.items = append([]news.Item{item}, repo.items...)
	repo.persist()
	return item, nil
}

func (repo *newsRepository) Update(item news.Item) (news.Item, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i := range repo.items {
		if repo.items[i].ID == item.ID {
			repo.items[i] = item
			repo.persist()
			return item, nil
		}
	}
	return news.Item{}, news.ErrNotFound
}

func (repo *newsRepository) Delete(id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	kept := make([]news.Item, 0, len(repo.items))
	for _, item := range repo.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	repo.items = kept
	repo.persist()
	return nil
}
