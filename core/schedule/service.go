package schedule

import (
	"errors"

	"github.com/iecliberdade/ebdconectada/core"
)

var (
	// errors
	ErrNotFound = errors.New("schedule entry not found")
)

type (
	Repository interface {
		QueryAll() ([]Item, error)
		GetByID(id string) (Item, error)
		// Create appends to the end of the collection.
		Create(item Item) (Item, error)
		// Update replaces the record with the matching id in place.
		Update(item Item) (Item, error)
		Delete(id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Prepare returns a draft pre-populated from an existing entry, or a blank
// one.
func (svc *Service) Prepare(existing *Item) Draft {
	if existing != nil {
		return Draft{
			Day:   existing.Day,
			Time:  existing.Time,
			Title: existing.Title,
			Color: existing.Color,
		}
	}
	return Draft{Day: "Domingo", Color: ColorBlue}
}

// Save commits a draft: replace in place when editing, append otherwise.
func (svc *Service) Save(d Draft, editingID string) (Item, error) {
	if err := d.Validate(); err != nil {
		return Item{}, err
	}

	item := Item{
		ID:    editingID,
		Day:   d.Day,
		Time:  d.Time,
		Title: d.Title,
		Color: d.Color,
	}
	if editingID != "" {
		return svc.repo.Update(item)
	}
	item.ID = core.NewID()
	return svc.repo.Create(item)
}

func (svc *Service) QueryAll() ([]Item, error) {
	return svc.repo.QueryAll()
}

// Delete removes the entry with the matching id. The caller is responsible
// for confirming the deletion beforehand.
func (svc *Service) Delete(id string) error {
	return svc.repo.Delete(id)
}
