package user

import (
	"errors"

	"github.com/iecliberdade/ebdconectada/core"
)

var (
	// errors
	ErrNotFound = errors.New("user not found")
)

type (
	Repository interface {
		QueryAll() ([]User, error)
		GetByID(id string) (User, error)
		// Create appends to the end of the collection.
		Create(usr User) (User, error)
		// Update replaces the record with the matching id in place.
		Update(usr User) (User, error)
		Delete(id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// PrepareTeacher returns a draft pre-populated from an existing record, or
// a blank one.
func (svc *Service) PrepareTeacher(existing *User) TeacherDraft {
	if existing != nil {
		return TeacherDraft{
			Name:                existing.Name,
			Email:               existing.Email,
			Phone:               existing.Phone,
			Status:              existing.Status,
			TeachingClassroomID: existing.TeachingClassroomID,
		}
	}
	return TeacherDraft{Status: StatusActive}
}

// SaveTeacher commits a teacher draft. The saved record always carries the
// teacher role, whatever the draft says: this form cannot escalate roles.
// Editing replaces the whole record with the draft's fields.
func (svc *Service) SaveTeacher(d TeacherDraft, editingID string) (User, error) {
	if err := d.Validate(); err != nil {
		return User{}, err
	}

	usr := User{
		ID:                  editingID,
		Name:                d.Name,
		Email:               d.Email,
		Phone:               d.Phone,
		Role:                RoleTeacher,
		Status:              d.Status,
		TeachingClassroomID: d.TeachingClassroomID,
	}
	if editingID != "" {
		return svc.repo.Update(usr)
	}
	usr.ID = core.NewID()
	return svc.repo.Create(usr)
}

func (svc *Service) QueryAll() ([]User, error) {
	return svc.repo.QueryAll()
}

func (svc *Service) GetByID(id string) (User, error) {
	return svc.repo.GetByID(id)
}

// Teachers returns the teaching staff, in collection order.
func (svc *Service) Teachers() ([]User, error) {
	return svc.filter(func(u User) bool { return u.IsTeacher() })
}

// Students returns the enrolled students, in collection order.
func (svc *Service) Students() ([]User, error) {
	return svc.filter(func(u User) bool { return u.IsStudent() })
}

// Delete removes the user with the matching id. The caller is responsible
// for confirming the deletion beforehand.
func (svc *Service) Delete(id string) error {
	return svc.repo.Delete(id)
}

func (svc *Service) filter(keep func(User) bool) ([]User, error) {
	users, err := svc.repo.QueryAll()
	if err != nil {
		return nil, err
	}
	sel := make([]User, 0, len(users))
	for _, u := range users {
		if keep(u) {
			sel = append(sel, u)
		}
	}
	return sel, nil
}
