package testutil

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/volatiletech/null/v8"

	"github.com/iecliberdade/ebdconectada/core/news"
	"github.com/iecliberdade/ebdconectada/core/user"
	logsvc "github.com/iecliberdade/ebdconectada/services/logger"
	"github.com/iecliberdade/ebdconectada/storage/kvstore"
)

// NewDB returns a store rooted in a fresh temp dir.
func NewDB(t *testing.T) *kvstore.DB {
	t.Helper()

	db, err := kvstore.Open(t.TempDir(), logsvc.NewStdLogger(nil))
	if err != nil {
		t.Fatalf("kvstore.Open() failed: %v", err)
	}
	return db
}

// EmptyCollections pre-persists empty snapshots so repositories opened on
// db start without the built-in default datasets.
func EmptyCollections(db *kvstore.DB) {
	for _, key := range []string{"news", "users", "classrooms", "schedules", "messages"} {
		db.Save(key, []interface{}{})
	}
}

// CreateNews saves a minimal news item through the service.
func CreateNews(t *testing.T, svc *news.Service, title string, featured bool) news.Item {
	t.Helper()

	item, err := svc.Save(news.Draft{
		Title:      title,
		Excerpt:    "resumo de " + title,
		Content:    "conteúdo de " + title,
		Category:   news.CategoryNews,
		Featured:   featured,
		ActiveDays: news.DefaultActiveDays,
	}, "")
	if err != nil {
		t.Fatalf("news.Save(%q) failed: %v", title, err)
	}
	return item
}

// CreateUser inserts a user record directly into the repository.
func CreateUser(t *testing.T, repo user.Repository, name, email, pwd, role, status string) user.User {
	t.Helper()

	usr := user.User{
		ID:     name,
		Name:   name,
		Email:  email,
		Role:   role,
		Status: status,
	}
	if pwd != "" {
		usr.Password = null.StringFrom(pwd)
	}
	usr, err := repo.Create(usr)
	if err != nil {
		t.Fatalf("CreateUser(%q) failed: %v", name, err)
	}
	return usr
}

// Diff returns a unified diff of two strings, for readable failures on
// long text comparisons.
func Diff(expected, actual string) string {
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  2,
	})
	return diff
}
