package kvstore

import (
	"sync"

	"github.com/iecliberdade/ebdconectada/core/contact"
)

type contactRepository struct {
	db       *DB
	mu       sync.RWMutex
	messages []contact.Message
}

func NewContactRepository(db *DB) contact.Repository {
	repo := &contactRepository{db: db}
	var stored []contact.Message
	if db.Load(keyMessages, &stored) {
		repo.messages = stored
	} else {
		repo.messages = contact.Defaults()
	}
	return repo
}

func (repo *contactRepository) persist() {
	repo.db.Save(keyMessages, repo.messages)
}

func (repo *contactRepository) QueryAll() ([]contact.Message, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	messages := make([]contact.Message, len(repo.messages))
	copy(messages, repo.messages)
	return messages, nil
}

func (repo *contactRepository) Create(msg contact.Message) (contact.Message, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.messages = append(repo.messages, msg)
	repo.persist()
	return msg, nil
}

func (repo *contactRepository) Delete(id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	kept := make([]contact.Message, 0, len(repo.messages))
	for _, msg := range repo.messages {
		if msg.ID != id {
			kept = append(kept, msg)
		}
	}
	repo.messages = kept
	repo.persist()
	return nil
}
