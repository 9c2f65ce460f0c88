package kvstore

import (
	"sync"

	"github.com/iecliberdade/ebdconectada/core/classroom"
)

type classroomRepository struct {
	db         *DB
	mu         sync.RWMutex
	classrooms []classroom.Classroom
}

func NewClassroomRepository(db *DB) classroom.Repository {
	repo := &classroomRepository{db: db}
	var stored []classroom.Classroom
	if db.Load(keyClassrooms, &stored) {
		repo.classrooms = stored
	} else {
		repo.classrooms = classroom.Defaults()
	}
	return repo
}

func (repo *classroomRepository) persist() {
	repo.db.Save(keyClassrooms, repo.classrooms)
}

func (repo *classroomRepository) QueryAll() ([]classroom.Classroom, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	classrooms := make([]classroom.Classroom, len(repo.classrooms))
	copy(classrooms, repo.classrooms)
	return classrooms, nil
}

func (repo *classroomRepository) GetByID(id string) (classroom.Classroom, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, cls := range repo.classrooms {
		if cls.ID == id {
			return cls, nil
		}
	}
	return classroom.Classroom{}, classroom.ErrNotFound
}

func (repo *classroomRepository) Create(cls classroom.Classroom) (classroom.Classroom, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.classrooms = append(repo.classrooms, cls)
	repo.persist()
	return cls, nil
}

func (repo *classroomRepository) Update(cls classroom.Classroom) (classroom.Classroom, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i := range repo.classrooms {
		if repo.classrooms[i].ID == cls.ID {
			repo.classrooms[i] = cls
			repo.persist()
			return cls, nil
		}
	}
	return classroom.Classroom{}, classroom.ErrNotFound
}

func (repo *classroomRepository) Delete(id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	kept := make([]classroom.Classroom, 0, len(repo.classrooms))
	for _, cls := range repo.classrooms {
		if cls.ID != id {
			kept = append(kept, cls)
		}
	}
	repo.classrooms = kept
	repo.persist()
	return nil
}
