package repository

import (
	"slices"
	"sync"
)

// JoinStore keeps, per owner id, an ordered set of associated ids. It models a
// non-owning many-to-many link: dropping an owner's list never touches the
// records the ids point at.
type JoinStore struct {
	mu    sync.RWMutex
	links map[string][]string
}

func NewJoinStore() *JoinStore {
	return &JoinStore{links: make(map[string][]string)}
}

// Init registers an empty list for owner if it has none yet.
func (j *JoinStore) Init(owner string) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if _, ok := j.links[owner]; !ok {
		j.links[owner] = []string{}
	}
}

// Add appends target to owner's list unless it is already there. It reports
// whether the list changed.
func (j *JoinStore) Add(owner, target string) bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	if slices.Contains(j.links[owner], target) {
		return false
	}
	j.links[owner] = append(j.links[owner], target)
	return true
}

// Remove drops target from owner's list. Missing owners or targets are a no-op.
func (j *JoinStore) Remove(owner, target string) bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	ids, ok := j.links[owner]
	if !ok {
		return false
	}
	i := slices.Index(ids, target)
	if i < 0 {
		return false
	}
	j.links[owner] = slices.Delete(slices.Clone(ids), i, i+1)
	return true
}

// Targets returns a copy of owner's list, empty when owner has none.
func (j *JoinStore) Targets(owner string) []string {
	j.mu.RLock()
	defer j.mu.RUnlock()

	return append([]string{}, j.links[owner]...)
}

// Drop forgets owner's list entirely.
func (j *JoinStore) Drop(owner string) {
	j.mu.Lock()
	defer j.mu.Unlock()

	delete(j.links, owner)
}
