package classroom

import (
	"errors"

	"github.com/iecliberdade/ebdconectada/core"
)

var (
	// errors
	ErrNotFound = errors.New("classroom not found")
)

type (
	Repository interface {
		QueryAll() ([]Classroom, error)
		GetByID(id string) (Classroom, error)
		// Create appends to the end of the collection.
		Create(cls Classroom) (Classroom, error)
		// Update replaces the record with the matching id in place.
		Update(cls Classroom) (Classroom, error)
		Delete(id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Prepare returns a draft pre-populated from an existing classroom, or a
// blank one.
func (svc *Service) Prepare(existing *Classroom) Draft {
	if existing != nil {
		return Draft{
			Name:           existing.Name,
			TargetAudience: existing.TargetAudience,
			Description:    existing.Description,
			Image:          existing.Image,
		}
	}
	return Draft{}
}

// Save commits a draft. An edit inherits StudentsCount and Teachers from
// the stored record; a new classroom starts with zero students and an
// empty roster.
func (svc *Service) Save(d Draft, editingID string) (Classroom, error) {
	if err := d.Validate(); err != nil {
		return Classroom{}, err
	}

	cls := Classroom{
		ID:             editingID,
		Name:           d.Name,
		TargetAudience: d.TargetAudience,
		Image:          d.Image,
		Description:    d.Description,
		Teachers:       []string{},
	}
	if editingID != "" {
		if cur, err := svc.repo.GetByID(editingID); err == nil {
			cls.StudentsCount = cur.StudentsCount
			cls.Teachers = cur.Teachers
		}
		return svc.repo.Update(cls)
	}
	cls.ID = core.NewID()
	return svc.repo.Create(cls)
}

func (svc *Service) QueryAll() ([]Classroom, error) {
	return svc.repo.QueryAll()
}

func (svc *Service) GetByID(id string) (Classroom, error) {
	return svc.repo.GetByID(id)
}

// Delete removes the classroom with the matching id. Teacher records that
// reference it keep their dangling reference: lookups tolerate the miss.
func (svc *Service) Delete(id string) error {
	return svc.repo.Delete(id)
}
