package database

import (
	"sync"
	"todo_api/internal/domain/model"
)

// Tables holds every "table" of the in-memory database. It is only reachable
// through View and Update, which hold the database lock.
type Tables struct {
	Users      []*model.User
	Todos      []*model.Todo
	NextUserID int
	NextTodoID int
}

// MemoryDB is the process-local store. State is lost on restart.
type MemoryDB struct {
	mu sync.RWMutex
	t  Tables
}

func NewMemoryDB() *MemoryDB {
	return &MemoryDB{t: Tables{NextUserID: 1, NextTodoID: 1}}
}

// View runs fn under a shared lock. fn must not retain or mutate t.
func (db *MemoryDB) View(fn func(t *Tables)) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	fn(&db.t)
}

// Update runs fn under the exclusive lock.
func (db *MemoryDB) Update(fn func(t *Tables) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return fn(&db.t)
}

// Close drops all data.
func (db *MemoryDB) Close() {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.t = Tables{NextUserID: 1, NextTodoID: 1}
}
