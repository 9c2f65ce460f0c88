package news

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
)

// memRepo is a minimal in-memory Repository for exercising the service.
type memRepo struct {
	items []Item
}

func (repo *memRepo) QueryAll() ([]Item, error) {
	items := make([]Item, len(repo.items))
	copy(items, repo.items)
	return items, nil
}

func (repo *memRepo) GetByID(id string) (Item, error) {
	for _, item := range repo.items {
		if item.ID == id {
			return item, nil
		}
	}
	return Item{}, ErrNotFound
}

func (repo *memRepo) Create(item Item) (Item, error) {
	repo.items = append([]Item{item}, repo.items...)
	return item, nil
}

func (repo *memRepo) Update(item Item) (Item, error) {
	for i := range repo.items {
		if repo.items[i].ID == item.ID {
			repo.items[i] = item
			return item, nil
		}
	}
	return Item{}, ErrNotFound
}

func (repo *memRepo) Delete(id string) error {
	kept := make([]Item, 0, len(repo.items))
	for _, item := range repo.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	repo.items = kept
	return nil
}

func draft(title string, featured bool) Draft {
	return Draft{
		Title:      title,
		Excerpt:    "resumo",
		Content:    "conteúdo",
		Category:   CategoryNews,
		Featured:   featured,
		ActiveDays: DefaultActiveDays,
	}
}

func TestSaveComputesDateAndActiveWindow(t *testing.T) {
	at := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	nowFunc = func() time.Time { return at }
	defer func() { nowFunc = time.Now }()

	repo := &memRepo{}
	svc := NewService(repo)

	d := draft("Conferência de Jovens", false)
	d.ActiveDays = 7
	item, err := svc.Save(d, "")
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "15/03/2026", item.Date)
	require.True(t, item.ActiveUntil.Valid)
	assert.Equal(t, at.Add(7*24*time.Hour), item.ActiveUntil.Time)
}

func TestSavePrependsNewItems(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo)

	first, err := svc.Save(draft("primeiro", false), "")
	require.NoError(t, err)
	second, err := svc.Save(draft("segundo", false), "")
	require.NoError(t, err)

	items, err := svc.QueryAll()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID) // most-recent-first
	assert.Equal(t, first.ID, items[1].ID)
}

func TestSaveEditReplacesInPlace(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo)

	var ids []string
	for i := 0; i < 3; i++ {
		item, err := svc.Save(draft(fmt.Sprintf("aviso %d", i), false), "")
		require.NoError(t, err)
		ids = append([]string{item.ID}, ids...)
	}

	d := draft("aviso editado", false)
	edited, err := svc.Save(d, ids[1])
	require.NoError(t, err)
	assert.Equal(t, ids[1], edited.ID)

	items, err := svc.QueryAll()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, ids[0], items[0].ID)
	assert.Equal(t, "aviso editado", items[1].Title)
	assert.Equal(t, ids[2], items[2].ID)
}

func TestSaveEnforcesCollectionCap(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo)

	for i := 0; i < MaxItems; i++ {
		_, err := svc.Save(draft(fmt.Sprintf("aviso %d", i), false), "")
		require.NoError(t, err)
	}

	_, err := svc.Save(draft("um a mais", false), "")
	assert.Equal(t, ErrLimitExceeded, err)

	items, err := svc.QueryAll()
	require.NoError(t, err)
	assert.Len(t, items, MaxItems) // collection unchanged

	// editing is still allowed at the cap
	_, err = svc.Save(draft("editado no limite", false), items[0].ID)
	assert.NoError(t, err)
}

func TestSaveEnforcesFeaturedCap(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo)

	var featuredIDs []string
	for i := 0; i < MaxFeatured; i++ {
		item, err := svc.Save(draft(fmt.Sprintf("destaque %d", i), true), "")
		require.NoError(t, err)
		featuredIDs = append(featuredIDs, item.ID)
	}

	// a fourth featured item is rejected
	_, err := svc.Save(draft("destaque 4", true), "")
	assert.Equal(t, ErrFeaturedLimitExceeded, err)

	// a non-featured item still fits
	plain, err := svc.Save(draft("sem destaque", false), "")
	require.NoError(t, err)

	// promoting it while 3 others are featured is rejected
	d := draft("sem destaque", true)
	_, err = svc.Save(d, plain.ID)
	assert.Equal(t, ErrFeaturedLimitExceeded, err)

	// editing one of the 3 and keeping its flag succeeds
	d = draft("destaque editado", true)
	_, err = svc.Save(d, featuredIDs[0])
	assert.NoError(t, err)
}

func TestFeaturedSelection(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo)

	for i := 0; i < MaxFeatured; i++ {
		_ = mustSave(t, svc, draft(fmt.Sprintf("destaque %d", i), true))
	}
	_ = mustSave(t, svc, draft("comum", false))

	// expired featured items no longer hold a home-page slot; bypass the
	// service so the cap check does not apply
	expired := Item{
		ID:          "expirado",
		Title:       "expirado",
		Featured:    true,
		ActiveUntil: null.TimeFrom(time.Now().Add(-time.Hour)),
	}
	_, err := repo.Create(expired)
	require.NoError(t, err)

	sel, err := svc.Featured()
	require.NoError(t, err)
	require.Len(t, sel, MaxFeatured)
	for _, item := range sel {
		assert.True(t, item.Featured)
		assert.NotEqual(t, "expirado", item.ID)
	}

	// the expired item stays in the full listing
	items, err := svc.QueryAll()
	require.NoError(t, err)
	assert.Len(t, items, MaxFeatured+2)
}

func mustSave(t *testing.T, svc *Service, d Draft) Item {
	t.Helper()
	item, err := svc.Save(d, "")
	if err != nil {
		t.Fatalf("Save(%q) failed: %v", d.Title, err)
	}
	return item
}

func TestPrepare(t *testing.T) {
	svc := NewService(&memRepo{})

	blank := svc.Prepare(nil)
	assert.Equal(t, CategoryNews, blank.Category)
	assert.Equal(t, DefaultActiveDays, blank.ActiveDays)
	assert.Empty(t, blank.Title)

	existing := Item{
		ID:       "x",
		Title:    "Aviso",
		Excerpt:  "resumo",
		Content:  "conteúdo",
		Category: CategoryEvent,
		Image:    null.StringFrom("https://example.com/img.jpg"),
		Featured: true,
	}
	d := svc.Prepare(&existing)
	assert.Equal(t, existing.Title, d.Title)
	assert.Equal(t, existing.Category, d.Category)
	assert.Equal(t, existing.Image, d.Image)
	assert.True(t, d.Featured)
	assert.Equal(t, DefaultActiveDays, d.ActiveDays) // window always re-proposed
}

func TestSaveValidation(t *testing.T) {
	svc := NewService(&memRepo{})

	tests := []struct {
		name  string
		mutate func(*Draft)
	}{
		{name: "missing title", mutate: func(d *Draft) { d.Title = "  " }},
		{name: "missing excerpt", mutate: func(d *Draft) { d.Excerpt = "" }},
		{name: "missing content", mutate: func(d *Draft) { d.Content = "" }},
		{name: "bad category", mutate: func(d *Draft) { d.Category = "Fofoca" }},
		{name: "zero active days", mutate: func(d *Draft) { d.ActiveDays = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := draft("válido", false)
			tt.mutate(&d)
			_, err := svc.Save(d, "")
			assert.Error(t, err)

			items, qerr := svc.QueryAll()
			require.NoError(t, qerr)
			assert.Empty(t, items) // nothing mutated
		})
	}
}

func TestIsExpired(t *testing.T) {
	at := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	nowFunc = func() time.Time { return at }
	defer func() { nowFunc = time.Now }()

	tests := []struct {
		name  string
		until null.Time
		want  bool
	}{
		{name: "absent never expires", until: null.Time{}, want: false},
		{name: "one second in the past", until: null.TimeFrom(at.Add(-time.Second)), want: true},
		{name: "exactly now", until: null.TimeFrom(at), want: false},
		{name: "in the future", until: null.TimeFrom(at.Add(time.Second)), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsExpired(tt.until))
		})
	}
}
