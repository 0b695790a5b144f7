// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ontology

import (
	"errors"
	"sync"
)

// ErrNoActiveStore is returned by Active before SetActive has been called.
var ErrNoActiveStore = errors.New("ontology: no active term store; load an ontology first")

var (
	activeMu    sync.RWMutex
	activeStore *Store
)

// Active returns the process-wide term store. Callers that accept an
// explicit store should prefer it and fall back to Active only when none
// was supplied.
func Active() (*Store, error) {
	activeMu.RLock()
	defer activeMu.RUnlock()
	if activeStore == nil {
		return nil, ErrNoActiveStore
	}
	return activeStore, nil
}

// SetActive installs the process-wide term store. The store must be fully
// built before installation; it is read-only thereafter.
func SetActive(s *Store) {
	activeMu.Lock()
	defer activeMu.Unlock()
	activeStore = s
}

// ResetActive clears the process-wide store. Tests only.
func ResetActive() {
	activeMu.Lock()
	defer activeMu.Unlock()
	activeStore = nil
}
