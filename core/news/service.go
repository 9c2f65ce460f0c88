package news

import (
	"errors"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/iecliberdade/ebdconectada/core"
)

const (
	// MaxItems caps the size of the news collection.
	MaxItems = 20
	// MaxFeatured caps how many items may be flagged for the home page.
	MaxFeatured = 3
	// DefaultActiveDays is the active window proposed on a blank draft.
	DefaultActiveDays = 30

	dateLayout = "02/01/2006"
)

var (
	// errors
	ErrNotFound              = errors.New("news item not found")
	ErrLimitExceeded         = errors.New("news limit reached")
	ErrFeaturedLimitExceeded = errors.New("featured news limit reached")
)

type (
	Repository interface {
		QueryAll() ([]Item, error)
		GetByID(id string) (Item, error)
		// Create prepends: the public listing is most-recent-first.
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

// Prepare returns a draft pre-populated from an existing item, or a blank
// draft for a new one.
func (svc *Service) Prepare(existing *Item) Draft {
	if existing != nil {
		return Draft{
			Title:      existing.Title,
			Excerpt:    existing.Excerpt,
			Content:    existing.Content,
			Category:   existing.Category,
			Image:      existing.Image,
			Featured:   existing.Featured,
			ActiveDays: DefaultActiveDays,
		}
	}
	return Draft{Category: CategoryNews, ActiveDays: DefaultActiveDays}
}

// Save commits a draft. An empty editingID creates a new item at the front
// of the collection; otherwise the matching record is replaced in place.
// On any failure the collection is left unchanged.
func (svc *Service) Save(d Draft, editingID string) (Item, error) {
	if err := d.Validate(); err != nil {
		return Item{}, err
	}

	items, err := svc.repo.QueryAll()
	if err != nil {
		return Item{}, err
	}
	if editingID == "" && len(items) >= MaxItems {
		return Item{}, ErrLimitExceeded
	}
	if d.Featured && countOtherFeatured(items, editingID) >= MaxFeatured {
		return Item{}, ErrFeaturedLimitExceeded
	}

	now := nowFunc()
	item := Item{
		ID:          editingID,
		Title:       d.Title,
		Excerpt:     d.Excerpt,
		Content:     d.Content,
		Date:        now.Format(dateLayout),
		Category:    d.Category,
		Image:       d.Image,
		ActiveUntil: null.TimeFrom(now.Add(time.Duration(d.ActiveDays) * 24 * time.Hour)),
		Featured:    d.Featured,
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

func (svc *Service) GetByID(id string) (Item, error) {
	return svc.repo.GetByID(id)
}

// Featured returns the home-page selection: the first MaxFeatured
// non-expired featured items, in collection order. Expired items stay in
// the full listing but never reach the home page.
func (svc *Service) Featured() ([]Item, error) {
	items, err := svc.repo.QueryAll()
	if err != nil {
		return nil, err
	}
	sel := make([]Item, 0, MaxFeatured)
	for _, item := range items {
		if item.Featured && !IsExpired(item.ActiveUntil) {
			sel = append(sel, item)
			if len(sel) == MaxFeatured {
				break
			}
		}
	}
	return sel, nil
}

// Delete removes the item with the matching id. The caller is responsible
// for confirming the deletion beforehand.
func (svc *Service) Delete(id string) error {
	return svc.repo.Delete(id)
}

// countOtherFeatured counts featured items other than the one being edited.
func countOtherFeatured(items []Item, editingID string) int {
	var n int
	for _, item := range items {
		if item.Featured && item.ID != editingID {
			n++
		}
	}
	return n
}
