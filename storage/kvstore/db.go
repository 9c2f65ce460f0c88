// Package kvstore persists the domain collections as namespaced JSON
// blobs, one file per key, mirroring every in-memory mutation back to
// disk. Persistence is best-effort: a missing or corrupt entry falls back
// to the caller's defaults and a failed write is dropped; the next
// successful mutation re-persists the full snapshot.
package kvstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/iecliberdade/ebdconectada/core"
)

// storage keys; one disjoint key per entity collection plus the session actor
const (
	keyNews       = "news"
	keyUsers      = "users"
	keyClassrooms = "classrooms"
	keySchedules  = "schedules"
	keyMessages   = "messages"
	keySession    = "user"
)

type DB struct {
	dir       string
	namespace string
	log       core.Logger
	mu        sync.Mutex
}

// Open prepares a store rooted at dir, or at the configured storageDir
// when dir is empty.
func Open(dir string, log core.Logger) (*DB, error) {
	if dir == "" {
		dir = core.Conf.GetString("storageDir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating storage dir %s", dir)
	}
	return &DB{
		dir:       dir,
		namespace: core.Conf.GetString("storageNamespace"),
		log:       log,
	}, nil
}

func (db *DB) path(key string) string {
	return filepath.Join(db.dir, db.namespace+"_"+key+".json")
}

// Load decodes the entry at key into dst. It reports false on a missing or
// corrupt entry; dst may then hold a partial decode, so callers must keep
// their fallback value instead of dst.
func (db *DB) Load(key string, dst interface{}) bool {
	db.mu.Lock()
	defer db.mu.Unlock()

	data, err := os.ReadFile(db.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			db.log.Warn(errors.Wrapf(err, "reading %s", key).Error())
		}
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		db.log.Warn(errors.Wrapf(err, "decoding %s", key).Error())
		return false
	}
	return true
}

// Save serializes v into the entry at key. Failures are logged and
// swallowed; the in-memory state stays authoritative.
func (db *DB) Save(key string, v interface{}) {
	db.mu.Lock()
	defer db.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		db.log.Error(errors.Wrapf(err, "encoding %s", key).Error())
		return
	}
	if err := os.WriteFile(db.path(key), data, 0o644); err != nil {
		db.log.Error(errors.Wrapf(err, "writing %s", key).Error())
	}
}

// Delete removes the entry at key. A missing entry is not an error.
func (db *DB) Delete(key string) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if err := os.Remove(db.path(key)); err != nil && !os.IsNotExist(err) {
		db.log.Error(errors.Wrapf(err, "removing %s", key).Error())
	}
}
