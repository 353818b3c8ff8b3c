package table

import (
	"sync"

	"github.com/mcoot/kellypool/internal/model"
)

// tableLocks hands out one mutex per table so commands at a table run one at a time
type tableLocks struct {
	mu    sync.Mutex
	locks map[model.TableID]*sync.Mutex
}

func newTableLocks() *tableLocks {
	return &tableLocks{locks: make(map[model.TableID]*sync.Mutex)}
}

// lock acquires the table's mutex and returns its release function
func (l *tableLocks) lock(id model.TableID) func() {
	l.mu.Lock()
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

func (l *tableLocks) forget(id model.TableID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.locks, id)
}
